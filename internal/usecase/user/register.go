package user

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	domain "github.com/kaagyebi/lumea-api/internal/domain/user"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
	"github.com/kaagyebi/lumea-api/internal/session"
)

const minPasswordLength = 6

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	Token string
	User  *models.User
}

// EmailChecker reports whether an address can plausibly receive mail.
type EmailChecker func(email string) bool

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type Register struct {
	repo        domain.Repository
	tokens      *session.Tokens
	audit       *audit.Dispatcher
	checkDomain EmailChecker
}

// NewRegister builds the use case. checkDomain may be nil to skip the
// mail-domain lookup.
func NewRegister(
	repo domain.Repository,
	tokens *session.Tokens,
	audit *audit.Dispatcher,
	checkDomain EmailChecker,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)

	if name == "" || email == "" || in.Password == "" {
		return nil, httperr.ErrValidation("missing_fields", "name, email and password are required.")
	}
	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrValidation("weak_password", "Password must be at least 6 characters.")
	}

	// --------------------------------------------------
	// Role: only user and cosmetologist sign up themselves
	// --------------------------------------------------
	role := access.RoleUser
	if in.Role != "" {
		r, ok := access.ParseRole(in.Role)
		if !ok {
			return nil, httperr.ErrValidation("invalid_role", "Unknown role.")
		}
		role = r
	}
	if role != access.RoleUser && role != access.RoleCosmetologist {
		return nil, httperr.ErrValidation("role_not_allowed", "This role cannot be chosen at registration.")
	}

	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.ErrValidation("invalid_email_domain", "The email domain does not appear to be valid.")
	}

	// --------------------------------------------------
	// Uniqueness
	// --------------------------------------------------
	if _, err := uc.repo.GetByEmail(ctx, email); err == nil {
		return nil, errUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.Store(err)
	}

	hashed, err := session.HashPassword(in.Password)
	if err != nil {
		return nil, httperr.ErrDependency("password_hash_failed", err)
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errUserExists
		}
		return nil, httperr.Store(err)
	}

	token, _, err := uc.tokens.Issue(u.Principal())
	if err != nil {
		return nil, httperr.ErrDependency("token_issue_failed", err)
	}

	log.Info().Str("user_id", u.ID.String()).Str("role", string(u.Role)).Msg("user registered")

	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(u.ID),
		Action:   audit.ActionUserRegistered,
		Entity:   "user",
		EntityID: audit.ID(u.ID),
		Metadata: map[string]any{"role": u.Role},
	})

	return &AuthResult{Token: token, User: u}, nil
}

var errUserExists = httperr.ErrValidation("user_already_exists", "User already exists.")

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
