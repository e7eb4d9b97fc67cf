package models

import "time"

type Project struct {
	ID                   uint64    `gorm:"primarykey" json:"id"`
	Name                 string    `gorm:"type:varchar(200);not null" json:"project_name"`
	Description          string    `gorm:"type:text" json:"description"`
	OwnerID              uint64    `gorm:"not null" json:"owner_id"`
	MaximumCollaborators int       `gorm:"not null;default:1" json:"maximum_collaborators"`
	Completed            bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Relations
	Owner        User                 `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Contributors []ProjectContributor `gorm:"foreignKey:ProjectID" json:"contributors,omitempty"`
	Interests    []ProjectInterest    `gorm:"foreignKey:ProjectID" json:"interests,omitempty"`
}

// IsOwner reports whether the given user owns the project. Ownership is
// immutable after creation.
func (p *Project) IsOwner(userID uint64) bool {
	return p.OwnerID == userID
}
