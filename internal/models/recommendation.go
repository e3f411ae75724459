package models

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	GeneratedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"generatedById"`
	GeneratedBy   User      `gorm:"foreignKey:GeneratedByID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	SkinReportID *uuid.UUID `gorm:"type:uuid;index" json:"skinReportId,omitempty"`

	Products []string `gorm:"type:text;serializer:json" json:"products"`
	Routines []string `gorm:"type:text;serializer:json" json:"routines"`
	Notes    string   `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
