package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/models"
)

// Scope selects which party column a listing is pinned to.
type Scope string

const (
	ScopeUser          Scope = "user"
	ScopeCosmetologist Scope = "cosmetologist"
)

type ListFilter struct {
	Scope       Scope
	PrincipalID uuid.UUID
	Status      Status

	PreloadUser          bool
	PreloadCosmetologist bool
}

type Repository interface {
	// -------- User --------
	GetUser(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	// -------- Relationship --------
	IsAssociated(
		ctx context.Context,
		cosmetologistID uuid.UUID,
		userID uuid.UUID,
	) (bool, error)
}
