package dto

import (
	"time"

	"github.com/greapevine/collaborator-finder/internal/models"
)

// ApplicantDTO is the privacy-filtered view of an applicant shown to project
// owners: username, email and skills only. Other profile fields are excluded
// by the type itself, not filtered at call sites.
type ApplicantDTO struct {
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Skills   []UserSkillDTO `json:"skills"`
}

// ProjectInterestDTO represents a pending interest in owner-facing responses
type ProjectInterestDTO struct {
	ID          uint64                `json:"id"`
	Status      models.InterestStatus `json:"status"`
	ExpressedAt time.Time             `json:"expressed_at"`
	Applicant   ApplicantDTO          `json:"applicant"`
}

// ToProjectInterestDTO converts a ProjectInterest with preloaded applicant
// and skills to its owner-facing DTO
func ToProjectInterestDTO(interest models.ProjectInterest) ProjectInterestDTO {
	return ProjectInterestDTO{
		ID:          interest.ID,
		Status:      interest.Status,
		ExpressedAt: interest.ExpressedAt,
		Applicant: ApplicantDTO{
			Username: interest.User.Username,
			Email:    interest.User.Email,
			Skills:   ToUserSkillDTOs(interest.User.Skills),
		},
	}
}

// ToProjectInterestDTOs converts a slice of ProjectInterest models
func ToProjectInterestDTOs(interests []models.ProjectInterest) []ProjectInterestDTO {
	dtos := make([]ProjectInterestDTO, len(interests))
	for i, interest := range interests {
		dtos[i] = ToProjectInterestDTO(interest)
	}
	return dtos
}
