package services

import (
	"fmt"

	"github.com/greapevine/collaborator-finder/internal/repository"
)

// UserStats holds derived per-user project counts. Pending and declined
// interests never count; completed projects still do.
type UserStats struct {
	ProjectsCreated     int64 `json:"projects_created"`
	ProjectsContributed int64 `json:"projects_contributed"`
}

// StatsService derives read-only per-user statistics from the store.
type StatsService struct {
	projectRepo repository.ProjectRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(projectRepo repository.ProjectRepository) *StatsService {
	return &StatsService{
		projectRepo: projectRepo,
	}
}

// Stats returns the user's project counts.
func (s *StatsService) Stats(userID uint64) (*UserStats, error) {
	created, err := s.projectRepo.CountOwnedBy(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count owned projects: %w", err)
	}

	contributed, err := s.projectRepo.CountContributedBy(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contributed projects: %w", err)
	}

	return &UserStats{
		ProjectsCreated:     created,
		ProjectsContributed: contributed,
	}, nil
}
