package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns users ordered by name; a nil role lists everyone.
	List(ctx context.Context, role *access.Role) ([]models.User, error)

	// UpdateFields applies a partial column update and returns the fresh row.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*models.User, error)
}
