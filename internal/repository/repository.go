package repository

import (
	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindFirstByEmail finds the first user with the given email, ordered by ID.
	// Emails are not unique; the lowest ID wins.
	FindFirstByEmail(email string) (*models.User, error)

	// FindByUsernames resolves a batch of usernames to users. Unknown
	// usernames are simply absent from the result.
	FindByUsernames(usernames []string) ([]models.User, error)

	// UpdatePassword replaces a user's password hash
	UpdatePassword(userID uint64, passwordHash string) error
}

// SkillRepository defines the interface for skill catalog and user-skill data access
type SkillRepository interface {
	// FindByName finds a catalog skill by name
	FindByName(name string) (*models.Skill, error)

	// AddUserSkill creates a user-skill record. The per-user count check and
	// the insert run in one transaction so the skill cap holds under
	// concurrent adds. Returns ErrSkillLimitReached when the user already
	// holds the maximum number of skills.
	AddUserSkill(userID, skillID uint64, level models.SkillLevel) (*models.UserSkill, error)

	// RemoveUserSkill deletes a user-skill record. Returns
	// gorm.ErrRecordNotFound when no such record exists.
	RemoveUserSkill(userID, skillID uint64) error

	// ListUserSkills lists a user's skills with the catalog entry preloaded
	ListUserSkills(userID uint64) ([]models.UserSkill, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithContributors creates a project and its initial contributor
	// rows in one transaction. The owner must be part of contributorIDs;
	// the batch is not checked against the capacity limit.
	CreateWithContributors(project *models.Project, contributorIDs []uint64) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// List returns projects newest-first with pagination
	List(params utils.PaginationParams) ([]models.Project, int64, error)

	// ListOpen returns projects that still have a free seat and are not
	// completed
	ListOpen() ([]models.Project, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project and cascades its interests and contributor rows
	Delete(id uint64) error

	// CountContributors counts the current contributor set of a project
	CountContributors(projectID uint64) (int64, error)

	// CountOwnedBy counts projects owned by a user
	CountOwnedBy(userID uint64) (int64, error)

	// CountContributedBy counts projects a user is a contributor of
	CountContributedBy(userID uint64) (int64, error)
}

// InterestRepository defines the interface for project interest data access
type InterestRepository interface {
	// Create creates a pending interest. The unique index on
	// (user, project) backs the duplicate check.
	Create(interest *models.ProjectInterest) error

	// FindByID finds an interest belonging to the given project
	FindByID(projectID, interestID uint64) (*models.ProjectInterest, error)

	// Exists reports whether any interest record links the user and project,
	// regardless of status
	Exists(projectID, userID uint64) (bool, error)

	// ListPending lists pending interests for a project with the applicant
	// and their skills preloaded
	ListPending(projectID uint64) ([]models.ProjectInterest, error)

	// Accept atomically re-checks capacity, adds the applicant as a
	// contributor and marks the interest accepted. Returns
	// ErrNoSeatAvailable when the project filled in the meantime and
	// ErrInterestNotPending when the interest left the pending state.
	Accept(projectID, interestID uint64) error

	// Decline marks a pending interest declined. Returns
	// ErrInterestNotPending when the interest is no longer pending.
	Decline(projectID, interestID uint64) error
}
