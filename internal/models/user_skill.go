package models

type SkillLevel string

const (
	SkillLevelBeginner    SkillLevel = "beginner"
	SkillLevelExperienced SkillLevel = "experienced"
	SkillLevelExpert      SkillLevel = "expert"
)

// IsValidSkillLevel reports whether level is part of the proficiency vocabulary.
func IsValidSkillLevel(level SkillLevel) bool {
	switch level {
	case SkillLevelBeginner, SkillLevelExperienced, SkillLevelExpert:
		return true
	}
	return false
}

// UserSkill links a user to a catalog skill with a proficiency level.
// The composite primary key makes a (user, skill) pair unique. The level is
// fixed at creation; there is no update operation.
type UserSkill struct {
	UserID  uint64     `gorm:"primarykey" json:"user_id"`
	SkillID uint64     `gorm:"primarykey" json:"skill_id"`
	Level   SkillLevel `gorm:"type:varchar(20);not null" json:"level"`

	// Relations
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
