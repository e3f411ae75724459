package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
)

type Profile struct {
	Bio             string `gorm:"type:text" json:"bio"`
	Specialization  string `gorm:"size:120" json:"specialization"`
	Image           string `gorm:"size:512" json:"image"`
	Availability    string `gorm:"type:text" json:"availability"`
	Certificate     string `gorm:"size:512" json:"certificate"`
	AreaOfExpertise string `gorm:"size:120" json:"areaOfExpertise"`
}

type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string      `gorm:"size:100;not null" json:"name"`
	Email        string      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"size:255;not null" json:"-"`
	Role         access.Role `gorm:"size:20;not null;default:'user'" json:"role"`

	AreaOfExpertise string  `gorm:"size:120" json:"areaOfExpertise"`
	Certificate     string  `gorm:"size:512" json:"certificate"`
	Profile         Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) Principal() access.Principal {
	return access.Principal{ID: u.ID, Role: u.Role}
}
