package repository

import (
	"gorm.io/gorm"

	"github.com/greapevine/collaborator-finder/internal/database"
	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/utils"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithContributors creates a project and its initial contributor rows
// atomically. The owner's seat is part of contributorIDs; the batch is taken
// as-is without a capacity check.
func (r *GormProjectRepository) CreateWithContributors(project *models.Project, contributorIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		contributors := make([]models.ProjectContributor, 0, len(contributorIDs))
		seen := make(map[uint64]bool, len(contributorIDs))
		for _, userID := range contributorIDs {
			if seen[userID] {
				continue
			}
			seen[userID] = true
			contributors = append(contributors, models.ProjectContributor{
				ProjectID: project.ID,
				UserID:    userID,
			})
		}

		if len(contributors) == 0 {
			return nil
		}
		return tx.Create(&contributors).Error
	})
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// List returns projects newest-first with pagination
func (r *GormProjectRepository) List(params utils.PaginationParams) ([]models.Project, int64, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Owner").
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// ListOpen returns projects with a free seat that are not completed. The
// seat check is computed from the contributor rows at query time; pending
// interests never affect it.
func (r *GormProjectRepository) ListOpen() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.
		Preload("Owner").
		Where("completed = ?", false).
		Where("(SELECT COUNT(*) FROM project_contributors pc WHERE pc.project_id = projects.id) < projects.maximum_collaborators").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project and all related data in a transaction
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectInterest{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectContributor{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}

// CountContributors counts the current contributor set of a project
func (r *GormProjectRepository) CountContributors(projectID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectContributor{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

// CountOwnedBy counts projects owned by a user
func (r *GormProjectRepository) CountOwnedBy(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("owner_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountContributedBy counts projects a user is a contributor of
func (r *GormProjectRepository) CountContributedBy(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectContributor{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
