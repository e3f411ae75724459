package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/user"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
)

// ChangeRole lets a superadmin promote or demote another account.
type ChangeRole struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeRole(repo domain.Repository, audit *audit.Dispatcher) *ChangeRole {
	return &ChangeRole{repo: repo, audit: audit}
}

func (uc *ChangeRole) Execute(
	ctx context.Context,
	requester access.Principal,
	targetID uuid.UUID,
	role string,
) (*models.User, error) {

	if err := access.CanAuthor(requester, access.ActionManageRoles).Err(); err != nil {
		return nil, err
	}

	newRole, ok := access.ParseRole(role)
	if !ok {
		return nil, httperr.ErrValidation("invalid_role", "Unknown role.")
	}
	if targetID == requester.ID {
		return nil, httperr.ErrValidation("cannot_change_own_role", "You cannot change your own role.")
	}

	target, err := uc.repo.GetByID(ctx, targetID)
	if err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}
	previous := target.Role

	u, err := uc.repo.UpdateFields(ctx, target.ID, map[string]any{"role": string(newRole)})
	if err != nil {
		return nil, httperr.FromStore(err, "user_not_found", "User not found.")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(requester.ID),
		Action:   audit.ActionRoleChanged,
		Entity:   "user",
		EntityID: audit.ID(u.ID),
		Metadata: map[string]any{"from": previous, "to": newRole},
	})

	return u, nil
}
