package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/post-service/internal/api/http"
	"github.com/spec-kit/post-service/internal/api/http/handlers"
	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/events"
	"github.com/spec-kit/post-service/internal/observability"
	"github.com/spec-kit/post-service/internal/persistence"
	"github.com/spec-kit/post-service/internal/repository"
	"github.com/spec-kit/post-service/internal/service"
	"github.com/spec-kit/post-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	postRepo := repository.NewPostRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	postCache := service.NewPostCache(redis, cfg.Redis.CacheTTL(), logger)
	worker.StartCacheInvalidator(postCache, dispatcher)

	authService := service.NewAuthService(*cfg, userRepo)
	postService := service.NewPostService(postRepo, dispatcher, postCache)
	userService := service.NewUserService(userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Posts:          handlers.NewPostsHandler(postService),
		Users:          handlers.NewUsersHandler(userService),
		AuthMiddleware: authMiddleware,
		PostOwner:      postService.AuthorID,
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
