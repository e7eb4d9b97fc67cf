package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/repository"
	"github.com/greapevine/collaborator-finder/internal/utils"
)

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrNotProjectOwner         = errors.New("only the project owner can perform this action")
	ErrProjectAlreadyCompleted = errors.New("project is already completed")
	ErrInvalidProjectName      = errors.New("project name cannot be empty")
	ErrInvalidMaxCollaborators = errors.New("maximum collaborators must be a positive number")
)

// ProjectService provides business logic for project lifecycle operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name                  string
	Description           string
	OwnerID               uint64
	MaximumCollaborators  int
	CollaboratorUsernames []string
}

// CreateProject creates a project. The owner always becomes a contributor;
// that postcondition is part of the constructor, not a side effect. Initial
// collaborator usernames that do not resolve to a user are skipped silently,
// and the initial batch is not checked against the capacity limit. Callers
// must not rely on partial failure being reported.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidProjectName
	}
	if input.MaximumCollaborators < 1 {
		return nil, ErrInvalidMaxCollaborators
	}

	contributorIDs := []uint64{input.OwnerID}
	if len(input.CollaboratorUsernames) > 0 {
		users, err := s.userRepo.FindByUsernames(input.CollaboratorUsernames)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve collaborators: %w", err)
		}
		for _, user := range users {
			contributorIDs = append(contributorIDs, user.ID)
		}
	}

	project := &models.Project{
		Name:                 input.Name,
		Description:          input.Description,
		OwnerID:              input.OwnerID,
		MaximumCollaborators: input.MaximumCollaborators,
	}

	if err := s.projectRepo.CreateWithContributors(project, contributorIDs); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.projectRepo.FindByID(project.ID, "Owner")
}

// GetProject returns a project with its owner loaded.
func (s *ProjectService) GetProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "Owner")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// ListProjects returns all projects newest-first with pagination.
func (s *ProjectService) ListProjects(params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// ListOpenProjects returns projects that still have a free seat and are not
// completed.
func (s *ProjectService) ListOpenProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.ListOpen()
	if err != nil {
		return nil, fmt.Errorf("failed to list open projects: %w", err)
	}
	return projects, nil
}

// IsFull evaluates the capacity gate for a project against current committed
// state. Capacity derives from the contributor set only; pending interests
// never consume a seat.
func (s *ProjectService) IsFull(project *models.Project) (bool, error) {
	count, err := s.projectRepo.CountContributors(project.ID)
	if err != nil {
		return false, fmt.Errorf("failed to count contributors: %w", err)
	}
	return count >= int64(project.MaximumCollaborators), nil
}

// CompleteProject marks a project completed. Completion is one-way and never
// removes contributors or changes capacity.
func (s *ProjectService) CompleteProject(actorID, projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !project.IsOwner(actorID) {
		return nil, ErrNotProjectOwner
	}
	if project.Completed {
		return nil, ErrProjectAlreadyCompleted
	}

	project.Completed = true
	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject deletes a project and cascades its interest and contributor
// records.
func (s *ProjectService) DeleteProject(actorID, projectID uint64) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if !project.IsOwner(actorID) {
		return ErrNotProjectOwner
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}
