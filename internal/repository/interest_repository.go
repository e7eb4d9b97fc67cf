package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/greapevine/collaborator-finder/internal/models"
)

var (
	// ErrNoSeatAvailable is returned when the contributor set already fills
	// the project's capacity at decision time.
	ErrNoSeatAvailable = errors.New("interest repository: no seat available")
	// ErrInterestNotPending is returned when an interest left the pending
	// state before the operation committed.
	ErrInterestNotPending = errors.New("interest repository: interest is not pending")
)

// GormInterestRepository is a GORM implementation of InterestRepository
type GormInterestRepository struct {
	db *gorm.DB
}

// NewInterestRepository creates a new InterestRepository
func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &GormInterestRepository{db: db}
}

// Create creates a pending interest
func (r *GormInterestRepository) Create(interest *models.ProjectInterest) error {
	return r.db.Create(interest).Error
}

// FindByID finds an interest belonging to the given project
func (r *GormInterestRepository) FindByID(projectID, interestID uint64) (*models.ProjectInterest, error) {
	var interest models.ProjectInterest
	if err := r.db.Where("project_id = ?", projectID).
		First(&interest, interestID).Error; err != nil {
		return nil, err
	}
	return &interest, nil
}

// Exists reports whether any interest links the user and project
func (r *GormInterestRepository) Exists(projectID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectInterest{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListPending lists pending interests with applicant and skills preloaded
func (r *GormInterestRepository) ListPending(projectID uint64) ([]models.ProjectInterest, error) {
	var interests []models.ProjectInterest
	err := r.db.
		Preload("User").
		Preload("User.Skills").
		Preload("User.Skills.Skill").
		Where("project_id = ? AND status = ?", projectID, models.InterestStatusPending).
		Order("expressed_at").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// Accept claims a seat and flips the interest to accepted as one unit. The
// project and interest rows are locked while the contributor count is read,
// so two accepts racing for the last seat serialize and only one commits a
// contributor row. The final status flip is guarded on the pending state;
// if a decline committed in between, the whole transaction rolls back and
// the terminal state stays untouched.
func (r *GormInterestRepository) Accept(projectID, interestID uint64) error {
	return withConflictRetry(func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			var project models.Project
			if err := lockForUpdate(tx).First(&project, projectID).Error; err != nil {
				return err
			}

			var interest models.ProjectInterest
			if err := lockForUpdate(tx).Where("project_id = ?", projectID).
				First(&interest, interestID).Error; err != nil {
				return err
			}
			if !interest.IsPending() {
				return ErrInterestNotPending
			}

			var count int64
			if err := tx.Model(&models.ProjectContributor{}).
				Where("project_id = ?", projectID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(project.MaximumCollaborators) {
				return ErrNoSeatAvailable
			}

			contributor := models.ProjectContributor{
				ProjectID: projectID,
				UserID:    interest.UserID,
			}
			if err := tx.Create(&contributor).Error; err != nil {
				return err
			}

			result := tx.Model(&models.ProjectInterest{}).
				Where("id = ? AND status = ?", interestID, models.InterestStatusPending).
				Update("status", models.InterestStatusAccepted)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrInterestNotPending
			}
			return nil
		})
	})
}

// Decline marks a pending interest declined. The guarded update keeps
// terminal states immutable even when a decline races an accept.
func (r *GormInterestRepository) Decline(projectID, interestID uint64) error {
	result := r.db.Model(&models.ProjectInterest{}).
		Where("id = ? AND project_id = ? AND status = ?",
			interestID, projectID, models.InterestStatusPending).
		Update("status", models.InterestStatusDeclined)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterestNotPending
	}
	return nil
}
