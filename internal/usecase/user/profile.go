package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/user"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

// ======================================================
// READ
// ======================================================

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}
	return u, nil
}

// ListUsers returns everyone, or only cosmetologists when asked. Summary
// tells the caller to project to the public summary shape.
type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, role string) (users []models.User, summary bool, err error) {
	if role == string(access.RoleCosmetologist) {
		r := access.RoleCosmetologist
		users, err = uc.repo.List(ctx, &r)
		return users, true, httperr.Store(err)
	}

	users, err = uc.repo.List(ctx, nil)
	return users, false, httperr.Store(err)
}

// ======================================================
// UPDATE
// ======================================================

type ProfileInput struct {
	Bio            *string
	Specialization *string
	Availability   *string
	Image          *string
}

type UpdateProfile struct {
	repo domain.Repository
}

func NewUpdateProfile(repo domain.Repository) *UpdateProfile {
	return &UpdateProfile{repo: repo}
}

// Execute applies only the fields that were sent.
func (uc *UpdateProfile) Execute(ctx context.Context, requester access.Principal, in ProfileInput) (*models.User, error) {
	fields := map[string]any{}
	if in.Bio != nil {
		fields["profile_bio"] = *in.Bio
	}
	if in.Specialization != nil {
		fields["profile_specialization"] = *in.Specialization
	}
	if in.Availability != nil {
		fields["profile_availability"] = *in.Availability
	}
	if in.Image != nil {
		fields["profile_image"] = *in.Image
	}

	if len(fields) == 0 {
		return NewGetUser(uc.repo).Execute(ctx, requester.ID)
	}

	u, err := uc.repo.UpdateFields(ctx, requester.ID, fields)
	if err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}
	return u, nil
}

type UpdateAvailability struct {
	repo domain.Repository
}

func NewUpdateAvailability(repo domain.Repository) *UpdateAvailability {
	return &UpdateAvailability{repo: repo}
}

func (uc *UpdateAvailability) Execute(ctx context.Context, requester access.Principal, availability string) (string, error) {
	if err := access.CanAuthor(requester, access.ActionUpdateAvailability).Err(); err != nil {
		return "", err
	}

	u, err := uc.repo.UpdateFields(ctx, requester.ID, map[string]any{
		"profile_availability": availability,
	})
	if err != nil {
		return "", httperr.FromStore(err, "user_not_found", "User not found.")
	}
	return u.Profile.Availability, nil
}
