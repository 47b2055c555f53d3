// @title          Society API
// @version        1.0
// @description    Residential society management: members, roles, complaints and announcements.
// @BasePath       /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the session token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/societyhub/society-api/internal/api"
	"github.com/societyhub/society-api/internal/api/handler"
	"github.com/societyhub/society-api/internal/core/service"
	"github.com/societyhub/society-api/internal/infrastructure/db/mongo"
	"github.com/societyhub/society-api/internal/infrastructure/db/redis"
	"github.com/societyhub/society-api/internal/infrastructure/queue"
	"github.com/societyhub/society-api/internal/pkg/config"
	"github.com/societyhub/society-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "society-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	userRepo := mongo.NewUserRepository(db)
	roleRepo := mongo.NewRoleRepository(db)
	complaintRepo := mongo.NewComplaintRepository(db)
	announcementRepo := mongo.NewAnnouncementRepository(db)
	auditRepo := mongo.NewAuditRepository(db)

	if err := mongo.EnsureIndexes(ctx, userRepo, roleRepo, complaintRepo, announcementRepo, auditRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	// --- Audit trail ---
	audit := queue.NewAuditDispatcher(cfg.AuditWorkers, auditRepo, logger.Component("audit"))
	audit.Start(context.Background())

	// --- Services ---
	tokens := service.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	denylist := redis.NewDenylist(rdb)

	roleService := service.NewRoleService(roleRepo, logger.Component("roles"))
	userService := service.NewUserService(userRepo, roleRepo, tokens, denylist, audit, logger.Component("users"))
	complaintService := service.NewComplaintService(complaintRepo, userRepo, audit, logger.Component("complaints"))
	announcementService := service.NewAnnouncementService(announcementRepo, logger.Component("announcements"))

	if err := roleService.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to seed roles")
	}
	if err := userService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Users:         userService,
		Roles:         roleService,
		Complaints:    complaintService,
		Announcements: announcementService,
		Tokens:        tokens,
		Denylist:      denylist,
		Identities:    userService,
		Health: map[string]handler.Pinger{
			"mongodb": mongo.NewPinger(mongoClient),
			"redis":   redis.NewPinger(rdb),
		},
		Logger:         logger.Component("http"),
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := audit.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("audit queue did not drain")
	}
	log.Info().Msg("server stopped")
}
