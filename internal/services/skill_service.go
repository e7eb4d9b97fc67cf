package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/repository"
)

var (
	ErrInvalidSkill       = errors.New("unsupported skill")
	ErrInvalidSkillLevel  = errors.New("invalid skill level")
	ErrDuplicateSkill     = errors.New("skill has already been added to the profile")
	ErrSkillLimitExceeded = errors.New("maximum of 3 skills allowed per user")
	ErrSkillNotFound      = errors.New("skill is not associated with the profile")
)

// SkillService enforces the per-user skill-set rules: the fixed language and
// level vocabularies, no duplicate skills, and the 3-skill cap.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
	}
}

// AddSkillInput represents parameters to add a skill to a profile.
type AddSkillInput struct {
	UserID    uint64
	SkillName string
	Level     models.SkillLevel
}

// AddSkill adds a skill to the user's profile. The cap and duplicate checks
// run against a consistent snapshot of the user's skill set inside the
// repository transaction.
func (s *SkillService) AddSkill(input AddSkillInput) (*models.UserSkill, error) {
	if !models.IsSupportedLanguage(input.SkillName) {
		return nil, ErrInvalidSkill
	}
	if !models.IsValidSkillLevel(input.Level) {
		return nil, ErrInvalidSkillLevel
	}

	skill, err := s.skillRepo.FindByName(input.SkillName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidSkill
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	userSkill, err := s.skillRepo.AddUserSkill(input.UserID, skill.ID, input.Level)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSkillLimitReached):
			return nil, ErrSkillLimitExceeded
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrDuplicateSkill
		default:
			return nil, fmt.Errorf("failed to add skill: %w", err)
		}
	}

	userSkill.Skill = *skill
	return userSkill, nil
}

// RemoveSkill removes a skill from the user's profile. Removing a skill the
// user does not hold fails with ErrSkillNotFound, repeatedly.
func (s *SkillService) RemoveSkill(userID uint64, skillName string) error {
	skill, err := s.skillRepo.FindByName(skillName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to find skill: %w", err)
	}

	if err := s.skillRepo.RemoveUserSkill(userID, skill.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to remove skill: %w", err)
	}

	return nil
}

// ListSkills lists the user's skills with the catalog entries attached.
func (s *SkillService) ListSkills(userID uint64) ([]models.UserSkill, error) {
	skills, err := s.skillRepo.ListUserSkills(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}
