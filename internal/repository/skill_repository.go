package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/greapevine/collaborator-finder/internal/constants"
	"github.com/greapevine/collaborator-finder/internal/models"
)

// ErrSkillLimitReached is returned when a user already holds the maximum
// number of skills.
var ErrSkillLimitReached = errors.New("skill repository: user skill limit reached")

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// FindByName finds a catalog skill by name
func (r *GormSkillRepository) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// AddUserSkill creates a user-skill record. The count check and the insert
// share one transaction with the user row locked, so two in-flight adds
// cannot both pass the cap. The composite primary key rejects duplicates
// independently of any application check.
func (r *GormSkillRepository) AddUserSkill(userID, skillID uint64, level models.SkillLevel) (*models.UserSkill, error) {
	userSkill := &models.UserSkill{
		UserID:  userID,
		SkillID: skillID,
		Level:   level,
	}

	err := withConflictRetry(func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			var user models.User
			if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
				return err
			}

			var count int64
			if err := tx.Model(&models.UserSkill{}).
				Where("user_id = ?", userID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= constants.MaxSkillsPerUser {
				return ErrSkillLimitReached
			}

			return tx.Create(userSkill).Error
		})
	})
	if err != nil {
		return nil, err
	}

	return userSkill, nil
}

// RemoveUserSkill deletes a user-skill record
func (r *GormSkillRepository) RemoveUserSkill(userID, skillID uint64) error {
	result := r.db.Where("user_id = ? AND skill_id = ?", userID, skillID).
		Delete(&models.UserSkill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListUserSkills lists a user's skills with the catalog entry preloaded
func (r *GormSkillRepository) ListUserSkills(userID uint64) ([]models.UserSkill, error) {
	var skills []models.UserSkill
	if err := r.db.Preload("Skill").
		Where("user_id = ?", userID).
		Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
