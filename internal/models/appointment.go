package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_pair,priority:1" json:"userId"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	CosmetologistID uuid.UUID `gorm:"type:uuid;not null;index;index:idx_appointments_pair,priority:2" json:"cosmetologistId"`
	Cosmetologist   User      `gorm:"foreignKey:CosmetologistID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	SkinType    string   `gorm:"size:50;not null" json:"skinType"`
	Tone        string   `gorm:"size:50" json:"tone"`
	Weight      *float64 `json:"weight,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	HairColor   string   `gorm:"size:50" json:"hairColor"`
	HairType    string   `gorm:"size:50" json:"hairType"`
	Description string   `gorm:"type:text" json:"description"`
	Concern     string   `gorm:"type:text" json:"concern"`
	Age         *int     `json:"age,omitempty"`
	Gender      string   `gorm:"size:20;not null" json:"gender"`

	Date time.Time `gorm:"not null;index" json:"date"`
	Time string    `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
