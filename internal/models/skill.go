package models

// Skill is a fixed catalog entry for one supported programming language.
// The catalog is seeded once at startup and never mutated afterwards.
type Skill struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(20);uniqueIndex;not null" json:"name"`

	// Relations
	UserSkills []UserSkill `gorm:"foreignKey:SkillID" json:"-"`
}

// SupportedLanguages is the full skill catalog.
var SupportedLanguages = []string{"cpp", "js", "py", "java", "lua", "rust", "go", "julia"}

// IsSupportedLanguage reports whether name is part of the skill catalog.
func IsSupportedLanguage(name string) bool {
	for _, lang := range SupportedLanguages {
		if lang == name {
			return true
		}
	}
	return false
}
