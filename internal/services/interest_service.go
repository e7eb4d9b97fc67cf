package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/repository"
)

var (
	ErrSelfInterestNotAllowed = errors.New("project owners cannot express interest in their own project")
	ErrProjectFull            = errors.New("no seats available for this project")
	ErrDuplicateInterest      = errors.New("interest has already been expressed for this project")
	ErrInterestAlreadyHandled = errors.New("this interest has already been handled")
	ErrInterestNotFound       = errors.New("interest not found")
)

// InterestService drives the request-to-join lifecycle: a user expresses
// interest, and the project owner accepts or declines it. Acceptance is the
// only operation that consumes a seat.
type InterestService struct {
	interestRepo repository.InterestRepository
	projectRepo  repository.ProjectRepository
}

// NewInterestService creates a new InterestService.
func NewInterestService(interestRepo repository.InterestRepository, projectRepo repository.ProjectRepository) *InterestService {
	return &InterestService{
		interestRepo: interestRepo,
		projectRepo:  projectRepo,
	}
}

// ExpressInterest registers a pending interest of the user in the project.
// The (user, project) unique index backs the duplicate check, so a second
// expression loses even when it races the first one past the lookup.
func (s *InterestService) ExpressInterest(userID, projectID uint64) (*models.ProjectInterest, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}

	if project.IsOwner(userID) {
		return nil, ErrSelfInterestNotAllowed
	}

	full, err := s.isFull(project)
	if err != nil {
		return nil, err
	}
	if full {
		return nil, ErrProjectFull
	}

	exists, err := s.interestRepo.Exists(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing interest: %w", err)
	}
	if exists {
		return nil, ErrDuplicateInterest
	}

	interest := &models.ProjectInterest{
		UserID:    userID,
		ProjectID: projectID,
		Status:    models.InterestStatusPending,
	}
	if err := s.interestRepo.Create(interest); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateInterest
		}
		return nil, fmt.Errorf("failed to create interest: %w", err)
	}

	return interest, nil
}

// AcceptInterest accepts a pending interest and adds the applicant to the
// contributor set. The capacity gate is evaluated again at acceptance time
// inside the repository transaction; the status flip and the contributor
// insert commit as one unit.
func (s *InterestService) AcceptInterest(actorID, projectID, interestID uint64) error {
	project, err := s.findProject(projectID)
	if err != nil {
		return err
	}
	if !project.IsOwner(actorID) {
		return ErrNotProjectOwner
	}

	interest, err := s.findInterest(projectID, interestID)
	if err != nil {
		return err
	}
	if !interest.IsPending() {
		return ErrInterestAlreadyHandled
	}

	if err := s.interestRepo.Accept(projectID, interestID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNoSeatAvailable):
			return ErrProjectFull
		case errors.Is(err, repository.ErrInterestNotPending):
			return ErrInterestAlreadyHandled
		default:
			return fmt.Errorf("failed to accept interest: %w", err)
		}
	}

	return nil
}

// DeclineInterest declines a pending interest. The contributor set is never
// touched.
func (s *InterestService) DeclineInterest(actorID, projectID, interestID uint64) error {
	project, err := s.findProject(projectID)
	if err != nil {
		return err
	}
	if !project.IsOwner(actorID) {
		return ErrNotProjectOwner
	}

	interest, err := s.findInterest(projectID, interestID)
	if err != nil {
		return err
	}
	if !interest.IsPending() {
		return ErrInterestAlreadyHandled
	}

	if err := s.interestRepo.Decline(projectID, interestID); err != nil {
		if errors.Is(err, repository.ErrInterestNotPending) {
			return ErrInterestAlreadyHandled
		}
		return fmt.Errorf("failed to decline interest: %w", err)
	}

	return nil
}

// ListPendingInterests returns the pending interests of a project with the
// applicants' skills loaded. Owner-only.
func (s *InterestService) ListPendingInterests(actorID, projectID uint64) ([]models.ProjectInterest, error) {
	project, err := s.findProject(projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsOwner(actorID) {
		return nil, ErrNotProjectOwner
	}

	interests, err := s.interestRepo.ListPending(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending interests: %w", err)
	}
	return interests, nil
}

func (s *InterestService) findProject(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

func (s *InterestService) findInterest(projectID, interestID uint64) (*models.ProjectInterest, error) {
	interest, err := s.interestRepo.FindByID(projectID, interestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, fmt.Errorf("failed to find interest: %w", err)
	}
	return interest, nil
}

func (s *InterestService) isFull(project *models.Project) (bool, error) {
	count, err := s.projectRepo.CountContributors(project.ID)
	if err != nil {
		return false, fmt.Errorf("failed to count contributors: %w", err)
	}
	return count >= int64(project.MaximumCollaborators), nil
}
