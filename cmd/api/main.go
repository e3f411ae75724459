package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/kaagyebi/lumea-api/internal/analysis"
	"github.com/kaagyebi/lumea-api/internal/audit"
	"github.com/kaagyebi/lumea-api/internal/config"
	dbpkg "github.com/kaagyebi/lumea-api/internal/db"
	"github.com/kaagyebi/lumea-api/internal/logging"
	"github.com/kaagyebi/lumea-api/internal/middleware"
	"github.com/kaagyebi/lumea-api/internal/routes"
	"github.com/kaagyebi/lumea-api/internal/session"
	"github.com/kaagyebi/lumea-api/internal/storage"
	"github.com/kaagyebi/lumea-api/internal/timezone"
	"github.com/kaagyebi/lumea-api/internal/validators"
)

func main() {

	cfg := config.Load()
	logging.Setup(cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if cfg.JWTSecret == "changeme" {
			log.Fatal().Msg("JWT_SECRET must be set in production")
		}
	}

	ctx := context.Background()

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// COLLABORATORS
	// ======================================================
	var revoker session.Revoker
	if cfg.RedisURL != "" {
		rdb, err := session.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unreachable at startup")
		}
		revoker = session.NewRedisRevoker(rdb)
	} else {
		log.Warn().Msg("REDIS_URL not set, logout will not revoke tokens")
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init storage")
	}

	var analyzer analysis.Analyzer = analysis.Disabled{}
	if cfg.GeminiAPIKey != "" {
		client, err := analysis.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init gemini client")
		}
		defer client.Close()
		analyzer = analysis.NewGeminiAnalyzer(client, cfg.GeminiModel)
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, skin analysis is disabled")
	}

	var emailChecker func(string) bool
	if cfg.CheckEmailDomain {
		emailChecker = validators.IsEmailDomainValid
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORSMiddleware(cfg.CORSOrigins...),
	)

	routes.RegisterRoutes(r, routes.Deps{
		DB:           db,
		Tokens:       session.NewTokens(cfg.JWTSecret, cfg.JWTExpiration),
		Revoker:      revoker,
		Storage:      store,
		Analyzer:     analyzer,
		AuditLogger:  auditLogger,
		Audit:        auditDispatcher,
		Location:     timezone.Location(cfg.Timezone),
		EmailChecker: emailChecker,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	auditDispatcher.Close()
}
