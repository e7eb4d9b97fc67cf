package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(150)" json:"last_name"`
	Age          *int      `json:"age"`
	Country      string    `gorm:"type:varchar(100)" json:"country"`
	Residence    string    `gorm:"type:varchar(100)" json:"residence"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Skills        []UserSkill          `gorm:"foreignKey:UserID" json:"-"`
	OwnedProjects []Project            `gorm:"foreignKey:OwnerID" json:"-"`
	Contributions []ProjectContributor `gorm:"foreignKey:UserID" json:"-"`
	Interests     []ProjectInterest    `gorm:"foreignKey:UserID" json:"-"`
}
