// Command seeduser creates staff accounts that self-registration refuses
// to hand out.
package main

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/kaagyebi/lumea-api/internal/config"
	dbpkg "github.com/kaagyebi/lumea-api/internal/db"
	"github.com/kaagyebi/lumea-api/internal/domain/access"
	infraRepo "github.com/kaagyebi/lumea-api/internal/infra/repository"
	"github.com/kaagyebi/lumea-api/internal/logging"
	"github.com/kaagyebi/lumea-api/internal/models"
	"github.com/kaagyebi/lumea-api/internal/session"
)

func main() {
	name := flag.String("name", "Administrator", "display name")
	email := flag.String("email", "", "login email (required)")
	password := flag.String("password", "", "login password (required)")
	roleFlag := flag.String("role", string(access.RoleAdmin), "admin or superadmin")
	flag.Parse()

	cfg := config.Load()
	logging.Setup(cfg.IsProduction())

	role, ok := access.ParseRole(*roleFlag)
	if !ok || (role != access.RoleAdmin && role != access.RoleSuperadmin) {
		log.Fatal().Str("role", *roleFlag).Msg("role must be admin or superadmin")
	}
	if strings.TrimSpace(*email) == "" || len(*password) < 6 {
		log.Fatal().Msg("-email and a -password of at least 6 characters are required")
	}

	ctx := context.Background()
	users := infraRepo.NewUserGormRepository(dbpkg.NewDB(cfg))

	if _, err := users.GetByEmail(ctx, *email); err == nil {
		log.Fatal().Str("email", *email).Msg("user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("lookup failed")
	}

	hash, err := session.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password")
	}

	u := &models.User{
		Name:         strings.TrimSpace(*name),
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: hash,
		Role:         role,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal().Err(err).Msg("create user")
	}

	log.Info().Str("id", u.ID.String()).Str("role", string(role)).Msg("user created")
}
