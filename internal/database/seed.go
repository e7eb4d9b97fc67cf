package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/greapevine/collaborator-finder/internal/models"
)

// SeedSkills populates the fixed skill catalog. It runs before the server
// starts serving traffic and is idempotent: rows that already exist are left
// untouched.
func SeedSkills(db *gorm.DB) error {
	skills := make([]models.Skill, len(models.SupportedLanguages))
	for i, name := range models.SupportedLanguages {
		skills[i] = models.Skill{Name: name}
	}

	err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&skills).Error
	if err != nil {
		return fmt.Errorf("failed to seed skill catalog: %w", err)
	}

	return nil
}
