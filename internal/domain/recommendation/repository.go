package recommendation

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type Repository interface {
	access.RelationshipProbe

	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.SkinReport, error)

	CreateRecommendation(ctx context.Context, rec *models.Recommendation) error

	// GetRecommendation loads a recommendation with its target user and author.
	GetRecommendation(ctx context.Context, id uuid.UUID) (*models.Recommendation, error)

	// ListForUser returns recommendations targeting userID with authors
	// loaded, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Recommendation, error)

	// ListAuthored returns recommendations written by authorID with target
	// users loaded, newest first.
	ListAuthored(ctx context.Context, authorID uuid.UUID) ([]models.Recommendation, error)
}
