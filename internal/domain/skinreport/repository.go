package skinreport

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type Repository interface {
	access.RelationshipProbe

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	CreateReport(ctx context.Context, r *models.SkinReport) error

	// GetReport loads a report with its owner and linked recommendations.
	GetReport(ctx context.Context, id uuid.UUID) (*models.SkinReport, error)

	// FindReportForUser loads a report only if userID owns it.
	FindReportForUser(ctx context.Context, reportID, userID uuid.UUID) (*models.SkinReport, error)

	UpdateReport(ctx context.Context, r *models.SkinReport) error

	// ListReportsByUser returns the user's reports, newest first.
	ListReportsByUser(ctx context.Context, userID uuid.UUID) ([]models.SkinReport, error)
}
