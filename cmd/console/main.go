package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/warrior-admin-console/internal/api/http"
	"github.com/spec-kit/warrior-admin-console/internal/api/http/handlers"
	"github.com/spec-kit/warrior-admin-console/internal/auth"
	"github.com/spec-kit/warrior-admin-console/internal/config"
	"github.com/spec-kit/warrior-admin-console/internal/events"
	"github.com/spec-kit/warrior-admin-console/internal/observability"
	"github.com/spec-kit/warrior-admin-console/internal/persistence"
	"github.com/spec-kit/warrior-admin-console/internal/repository"
	"github.com/spec-kit/warrior-admin-console/internal/service"
	"github.com/spec-kit/warrior-admin-console/internal/session"
	"github.com/spec-kit/warrior-admin-console/internal/upstream"
	"github.com/spec-kit/warrior-admin-console/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()

	var pg *persistence.Postgres
	if cfg.Session.Backend == config.SessionBackendPostgres || cfg.Postgres.DSN != "" {
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
	}

	var rd *persistence.Redis
	if cfg.Session.Backend == config.SessionBackendRedis {
		rd = persistence.NewRedis(cfg.Redis, logger)
		defer rd.Close()
	}

	var stores session.Factory
	switch cfg.Session.Backend {
	case config.SessionBackendFile:
		stores = session.NewFileFactory(cfg.Session.FilePath)
	case config.SessionBackendRedis:
		stores = session.NewRedisFactory(rd.Client, cfg.Session.TTL())
	case config.SessionBackendPostgres:
		stores = session.NewPostgresFactory(pg.PoolHandle())
	default:
		stores = session.NewMemoryFactory().Store
	}
	logger.Info("session store configured", zap.String("backend", cfg.Session.Backend))

	client := upstream.New(cfg.Upstream, logger, metrics)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.ConsoleTokenTTLMinutes)
	dispatcher := events.NewInMemoryDispatcher()

	var auditRepo repository.AuditRepository
	if pg != nil && pg.PoolHandle() != nil {
		auditRepo = repository.NewAuditRepository(pg.PoolHandle())
	} else {
		auditRepo = repository.NewInMemoryAuditRepository()
	}
	auditService := service.NewAuditService(auditRepo, dispatcher, logger)
	worker.StartAuditWorker(auditService)

	roleService := service.NewRoleService(client, dispatcher, logger)
	adminService := service.NewAdminService(client, dispatcher, logger)
	monitorService := service.NewMonitorService(client, dispatcher, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, rd),
		Session:    handlers.NewSessionHandler(tokens, stores, client, dispatcher, logger),
		Navigation: handlers.NewNavigationHandler(),
		Roles:      handlers.NewRolesHandler(roleService, adminService),
		Monitor:    handlers.NewMonitorHandler(monitorService),
		Activity:   handlers.NewActivityHandler(auditService),
		SessionMW:  httptransport.SessionMiddleware(tokens, stores, client, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
