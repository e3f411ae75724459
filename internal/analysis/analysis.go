// Package analysis turns a face image into a structured skin analysis.
package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/kaagyebi/lumea-api/internal/models"
)

// Image is the picture to analyze. Data is the normalized JPEG; URL is where
// it was stored.
type Image struct {
	Data        []byte
	ContentType string
	URL         string
}

type Analyzer interface {
	Analyze(ctx context.Context, img Image) (models.SkinAnalysis, error)
}

// Fallback values for keys the model leaves out.
const (
	DefaultTone           = "Unknown"
	DefaultSkinType       = "Unknown"
	DefaultSkinAge        = 25.0
	DefaultSkinHealth     = "Fair"
	DefaultPoreVisibility = "Moderate"
	DefaultTexture        = "Normal"
	DefaultOilLevel       = "Moderate"
	DefaultSkinSummary    = "No summary available."
)

// WithDefaults fills every missing key so stored analyses always have the
// full shape.
func WithDefaults(a models.SkinAnalysis) models.SkinAnalysis {
	a.Tone = orDefault(a.Tone, DefaultTone)
	a.SkinType = orDefault(a.SkinType, DefaultSkinType)
	a.SkinHealth = orDefault(a.SkinHealth, DefaultSkinHealth)
	a.PoreVisibility = orDefault(a.PoreVisibility, DefaultPoreVisibility)
	a.Texture = orDefault(a.Texture, DefaultTexture)
	a.OilLevel = orDefault(a.OilLevel, DefaultOilLevel)
	a.SkinSummary = orDefault(a.SkinSummary, DefaultSkinSummary)

	if a.SkinAge <= 0 {
		a.SkinAge = DefaultSkinAge
	}
	if a.Conditions == nil {
		a.Conditions = []string{}
	}
	if a.Precautions == nil {
		a.Precautions = []string{}
	}
	if a.QuantitativeAnalysis == nil {
		a.QuantitativeAnalysis = map[string]any{}
	}
	return a
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// ErrNotConfigured is returned by Disabled.
var ErrNotConfigured = errors.New("analysis: no analyzer configured")

// Disabled rejects every request. Used when no model API key is set.
type Disabled struct{}

func (Disabled) Analyze(context.Context, Image) (models.SkinAnalysis, error) {
	return models.SkinAnalysis{}, ErrNotConfigured
}
