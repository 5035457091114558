package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/simka-id/simka-backend/api/routes"
	"github.com/simka-id/simka-backend/internal/auditlog"
	authsvc "github.com/simka-id/simka-backend/internal/auth"
	"github.com/simka-id/simka-backend/internal/members"
	"github.com/simka-id/simka-backend/internal/stats"
	"github.com/simka-id/simka-backend/internal/users"
	"github.com/simka-id/simka-backend/pkg/auth/session"
	"github.com/simka-id/simka-backend/pkg/config"
	"github.com/simka-id/simka-backend/pkg/db"
	"github.com/simka-id/simka-backend/pkg/logger"
	"github.com/simka-id/simka-backend/pkg/metrics"
	"github.com/simka-id/simka-backend/pkg/migrate"
	"github.com/simka-id/simka-backend/pkg/redis"

	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registryMetrics := metrics.NewRegistryMetrics(prometheus.DefaultRegisterer)

	auditService, err := auditlog.NewService(auditlog.NewRepository(dbClient.DB()), logg, registryMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create audit service", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dbClient.DB())
	membersRepo := members.NewRepository(dbClient.DB())

	memberService, err := members.NewService(members.ServiceParams{
		DB:             dbClient,
		Repository:     membersRepo,
		Audit:          auditService,
		NPA:            members.NewNPAGenerator(),
		Metrics:        registryMetrics,
		NPAMaxAttempts: cfg.Registry.NPAMaxAttempts,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create member service", err)
		os.Exit(1)
	}

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		Users:    usersRepo,
		Audit:    auditService,
		Sessions: sessionManager,
		JWT:      cfg.JWT,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	statsService, err := stats.NewService(membersRepo, usersRepo, auditService)
	if err != nil {
		logg.Error(context.Background(), "failed to create stats service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisClient,
			Sessions: sessionManager,
			Auth:     authService,
			Members:  memberService,
			Stats:    statsService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
