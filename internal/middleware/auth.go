package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
	"github.com/kaagyebi/lumea-api/internal/httperr"
	"github.com/kaagyebi/lumea-api/internal/models"
	"github.com/kaagyebi/lumea-api/internal/session"
)

const (
	ContextUser   = "currentUser"
	ContextClaims = "tokenClaims"
)

// UserLoader fetches the live user record behind a token.
type UserLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthMiddleware resolves the requester: bearer token verified, revocation
// checked, user reloaded so the stored role is the one that counts.
func AuthMiddleware(tokens *session.Tokens, revoker session.Revoker, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Not authorized, no token.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Not authorized, malformed token.")
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, session.ErrTokenExpired) {
				httperr.Abort(c, http.StatusUnauthorized, "token_expired", "Not authorized, token expired.")
				return
			}
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Not authorized, token failed.")
			return
		}

		ctx := c.Request.Context()

		if revoker != nil {
			revoked, err := revoker.IsRevoked(ctx, claims.ID)
			if err != nil {
				// Fail closed when the revocation list is unreachable.
				log.Error().Err(err).Msg("revocation lookup failed")
				httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Not authorized, token failed.")
				return
			}
			if revoked {
				httperr.Abort(c, http.StatusUnauthorized, "token_revoked", "Not authorized, token revoked.")
				return
			}
		}

		userID, _ := claims.UserID()
		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Error().Err(err).Msg("user lookup failed")
			}
			httperr.Abort(c, http.StatusUnauthorized, "user_not_found", "Not authorized, user not found.")
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireAction rejects requesters whose role is not granted the action.
func RequireAction(action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !access.Allowed(Principal(c).Role, action) {
			httperr.Abort(c, http.StatusForbidden, "access_denied", "You are not allowed to perform this action.")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user loaded by AuthMiddleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	u, _ := c.Get(ContextUser)
	user, _ := u.(*models.User)
	return user
}

// Principal is the requester as seen by the access engine. Unauthenticated
// requests yield the zero principal, which every decision denies.
func Principal(c *gin.Context) access.Principal {
	if u := CurrentUser(c); u != nil {
		return u.Principal()
	}
	return access.Principal{}
}

func Claims(c *gin.Context) *session.Claims {
	v, _ := c.Get(ContextClaims)
	claims, _ := v.(*session.Claims)
	return claims
}
