package appointment

import (
	"context"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/appointment"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

// ======================================================
// USER SIDE
// ======================================================

// ListUserAppointments returns the requester's bookings, soonest first, with
// the cosmetologist expanded. status is optional.
type ListUserAppointments struct {
	repo domain.Repository
}

func NewListUserAppointments(repo domain.Repository) *ListUserAppointments {
	return &ListUserAppointments{repo: repo}
}

func (uc *ListUserAppointments) Execute(
	ctx context.Context,
	requester access.Principal,
	status string,
) ([]models.Appointment, error) {

	filter := domain.ListFilter{
		Scope:                domain.ScopeUser,
		PrincipalID:          requester.ID,
		PreloadCosmetologist: true,
	}

	if status != "" {
		st, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}

	apps, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, httperr.Store(err)
	}
	return apps, nil
}

// ======================================================
// COSMETOLOGIST SIDE
// ======================================================

type ListCosmetologistAppointments struct {
	repo domain.Repository
}

func NewListCosmetologistAppointments(repo domain.Repository) *ListCosmetologistAppointments {
	return &ListCosmetologistAppointments{repo: repo}
}

func (uc *ListCosmetologistAppointments) Execute(
	ctx context.Context,
	requester access.Principal,
	status string,
) ([]models.Appointment, error) {

	if err := access.CanAuthor(requester, access.ActionListCosmetologistAppointments).Err(); err != nil {
		return nil, err
	}

	filter := domain.ListFilter{
		Scope:       domain.ScopeCosmetologist,
		PrincipalID: requester.ID,
		PreloadUser: true,
	}

	if status != "" {
		st, err := domain.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}

	apps, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, httperr.Store(err)
	}
	return apps, nil
}

// ======================================================
// DEBUG LISTING
// ======================================================

type Listing struct {
	Scope        domain.Scope
	Appointments []models.Appointment
}

// ListMyAppointments lists the requester's appointments from either side.
// Any as other than "cosmetologist" lists the user side. Both parties are
// expanded.
type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	requester access.Principal,
	as string,
) (*Listing, error) {

	scope := domain.ScopeUser
	if as == string(domain.ScopeCosmetologist) {
		scope = domain.ScopeCosmetologist
	}

	apps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		Scope:                scope,
		PrincipalID:          requester.ID,
		PreloadUser:          true,
		PreloadCosmetologist: true,
	})
	if err != nil {
		return nil, httperr.Store(err)
	}

	return &Listing{Scope: scope, Appointments: apps}, nil
}
