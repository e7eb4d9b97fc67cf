package dto

import (
	"time"

	"github.com/greapevine/collaborator-finder/internal/models"
	"github.com/greapevine/collaborator-finder/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID                   uint64    `json:"id"`
	ProjectName          string    `json:"project_name"`
	Description          string    `json:"description"`
	OwnerID              uint64    `json:"owner_id"`
	Owner                *UserDTO  `json:"owner,omitempty"`
	MaximumCollaborators int       `json:"maximum_collaborators"`
	Completed            bool      `json:"completed"`
	CreatedAt            time.Time `json:"created_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO             `json:"projects"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	dto := ProjectDTO{
		ID:                   project.ID,
		ProjectName:          project.Name,
		Description:          project.Description,
		OwnerID:              project.OwnerID,
		MaximumCollaborators: project.MaximumCollaborators,
		Completed:            project.Completed,
		CreatedAt:            project.CreatedAt,
	}

	// Include owner if preloaded
	if project.Owner.ID != 0 {
		owner := ToUserDTO(project.Owner)
		dto.Owner = &owner
	}

	return dto
}

// ToProjectDTOs converts a slice of Project models
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}
