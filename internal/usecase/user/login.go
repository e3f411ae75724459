package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/kaagyebi/lumea-api/internal/domain/user"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/session"
)

var errInvalidCredentials = httperr.ErrUnauthenticated("invalid_credentials", "Invalid credentials.")

type Login struct {
	repo   domain.Repository
	tokens *session.Tokens
}

func NewLogin(repo domain.Repository, tokens *session.Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, httperr.ErrValidation("missing_fields", "email and password are required.")
	}

	u, err := uc.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, httperr.Store(err)
	}

	if !session.CheckPassword(u.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	token, _, err := uc.tokens.Issue(u.Principal())
	if err != nil {
		return nil, httperr.ErrDependency("token_issue_failed", err)
	}

	return &AuthResult{Token: token, User: u}, nil
}

// Logout revokes the presented token until it expires.
type Logout struct {
	revoker session.Revoker
}

func NewLogout(revoker session.Revoker) *Logout {
	return &Logout{revoker: revoker}
}

func (uc *Logout) Execute(ctx context.Context, claims *session.Claims) error {
	if uc.revoker == nil || claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := uc.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return httperr.ErrDependency("revocation_failed", err)
	}
	return nil
}
