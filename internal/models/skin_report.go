package models

import (
	"time"

	"github.com/google/uuid"
)

// SkinAnalysis is the structured result of an image analysis. Every key is
// always present once defaults have been applied.
type SkinAnalysis struct {
	Tone                 string         `json:"tone"`
	SkinType             string         `json:"skinType"`
	Conditions           []string       `json:"conditions"`
	SkinAge              float64        `json:"skinAge"`
	SkinHealth           string         `json:"skinHealth"`
	PoreVisibility       string         `json:"poreVisibility"`
	Texture              string         `json:"texture"`
	OilLevel             string         `json:"oilLevel"`
	Precautions          []string       `json:"precautions"`
	OverallScore         *float64       `json:"overallScore,omitempty"`
	SkinSummary          string         `json:"skinSummary"`
	QuantitativeAnalysis map[string]any `json:"quantitativeAnalysis"`
}

type SkinReport struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	User   User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`

	ImageURL           string       `gorm:"size:512" json:"imageUrl"`
	Analysis           SkinAnalysis `gorm:"type:text;serializer:json" json:"analysis"`
	CosmetologistNotes string       `gorm:"type:text" json:"cosmetologistNotes"`

	Recommendations []Recommendation `gorm:"foreignKey:SkinReportID" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
