package models

import "time"

type InterestStatus string

const (
	InterestStatusPending  InterestStatus = "pending"
	InterestStatusAccepted InterestStatus = "accepted"
	InterestStatusDeclined InterestStatus = "declined"
)

// ProjectInterest is a user's request to join a project. It starts pending
// and moves exactly once to accepted or declined; both are terminal.
// The unique index on (user, project) holds regardless of status, so a
// declined applicant stays blocked for that project.
type ProjectInterest struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	UserID      uint64         `gorm:"not null;uniqueIndex:idx_interests_user_project" json:"user_id"`
	ProjectID   uint64         `gorm:"not null;uniqueIndex:idx_interests_user_project" json:"project_id"`
	Status      InterestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ExpressedAt time.Time      `gorm:"autoCreateTime" json:"expressed_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

// IsPending reports whether the interest can still be accepted or declined.
func (i *ProjectInterest) IsPending() bool {
	return i.Status == InterestStatusPending
}
