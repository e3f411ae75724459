package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/appointment"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

type UpdateInput struct {
	Status *string
	Notes  *string
}

// UpdateAppointment changes status and/or notes. Empty values leave the
// stored field alone. Concurrent updates are last-write-wins.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	requester access.Principal,
	appointmentID uuid.UUID,
	in UpdateInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.FromStore(err, "appointment_not_found", "Appointment not found.")
	}

	// Empty strings count as absent.
	var change domain.Change
	if in.Status != nil && *in.Status != "" {
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		change.Status = &st
	}
	if in.Notes != nil && *in.Notes != "" {
		change.Notes = in.Notes
	}

	if change.Empty() {
		return nil, httperr.ErrValidation("empty_update", "Provide a status or notes to update.")
	}

	if err := domain.CanTransition(requester, ap, change).Err(); err != nil {
		return nil, err
	}

	previous := ap.Status
	domain.Apply(ap, change)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.Store(err)
	}

	if u, err := uc.repo.GetUser(ctx, ap.UserID); err == nil {
		ap.User = *u
	}
	if c, err := uc.repo.GetUser(ctx, ap.CosmetologistID); err == nil {
		ap.Cosmetologist = *c
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(requester.ID),
		Action:   audit.ActionAppointmentUpdated,
		Entity:   "appointment",
		EntityID: audit.ID(ap.ID),
		Metadata: map[string]any{"from": previous, "to": ap.Status},
	})

	return ap, nil
}
