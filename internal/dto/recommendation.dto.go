package dto

import (
	"github.com/kaagyebi/lumea-api/internal/models"
)

type RecommendationDTO struct {
	models.Recommendation

	User        *UserSummaryDTO `json:"user,omitempty"`
	GeneratedBy *UserSummaryDTO `json:"generatedBy,omitempty"`
}

func Recommendation(rec *models.Recommendation) RecommendationDTO {
	out := RecommendationDTO{
		Recommendation: *rec,
		User:           UserSummary(&rec.User),
		GeneratedBy:    UserSummary(&rec.GeneratedBy),
	}
	if out.Products == nil {
		out.Products = []string{}
	}
	if out.Routines == nil {
		out.Routines = []string{}
	}
	return out
}

func Recommendations(recs []models.Recommendation) []RecommendationDTO {
	out := make([]RecommendationDTO, 0, len(recs))
	for i := range recs {
		out = append(out, Recommendation(&recs[i]))
	}
	return out
}
