package dto

import (
	"github.com/greapevine/collaborator-finder/internal/models"
)

// UserDTO represents a user profile in API responses. The password hash is
// never part of any response shape.
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Age       *int   `json:"age,omitempty"`
	Country   string `json:"country,omitempty"`
	Residence string `json:"residence,omitempty"`
}

// UserSkillDTO represents one profile skill in API responses
type UserSkillDTO struct {
	Skill string            `json:"skill"`
	Level models.SkillLevel `json:"level"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Country:   user.Country,
		Residence: user.Residence,
	}
}

// ToUserSkillDTO converts a UserSkill model to UserSkillDTO
func ToUserSkillDTO(userSkill models.UserSkill) UserSkillDTO {
	return UserSkillDTO{
		Skill: userSkill.Skill.Name,
		Level: userSkill.Level,
	}
}

// ToUserSkillDTOs converts a slice of UserSkill models
func ToUserSkillDTOs(userSkills []models.UserSkill) []UserSkillDTO {
	dtos := make([]UserSkillDTO, len(userSkills))
	for i, userSkill := range userSkills {
		dtos[i] = ToUserSkillDTO(userSkill)
	}
	return dtos
}
