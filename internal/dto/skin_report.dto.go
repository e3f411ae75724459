package dto

import (
	"github.com/kaagyebi/lumea-api/internal/models"
)

type SkinReportDTO struct {
	models.SkinReport

	User            *UserSummaryDTO     `json:"user,omitempty"`
	Recommendations []RecommendationDTO `json:"recommendations"`
}

func SkinReport(rep *models.SkinReport) SkinReportDTO {
	return SkinReportDTO{
		SkinReport:      *rep,
		User:            UserSummary(&rep.User),
		Recommendations: Recommendations(rep.Recommendations),
	}
}

func SkinReports(reps []models.SkinReport) []SkinReportDTO {
	out := make([]SkinReportDTO, 0, len(reps))
	for i := range reps {
		out = append(out, SkinReport(&reps[i]))
	}
	return out
}
