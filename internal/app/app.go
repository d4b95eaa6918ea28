package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/actionitem"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/attachment"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/event"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/exception"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/instance"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/rule"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/volunteer"
	"github.com/gatherhub/gatherhub-backend/internal/adapter/postgres/window"
	"github.com/gatherhub/gatherhub-backend/internal/auth"
	"github.com/gatherhub/gatherhub-backend/internal/config"
	"github.com/gatherhub/gatherhub-backend/internal/service/lifecycle"
	"github.com/gatherhub/gatherhub-backend/internal/service/materializer"
	"github.com/gatherhub/gatherhub-backend/internal/service/participation"
	"github.com/gatherhub/gatherhub-backend/internal/service/resolution"
	gqlpkg "github.com/gatherhub/gatherhub-backend/internal/transport/graphql"
	"github.com/gatherhub/gatherhub-backend/internal/transport/graphql/dataloader"
	"github.com/gatherhub/gatherhub-backend/internal/transport/graphql/resolver"
	"github.com/gatherhub/gatherhub-backend/internal/transport/middleware"
	"github.com/gatherhub/gatherhub-backend/internal/transport/rest"
	"github.com/gatherhub/gatherhub-backend/internal/worker"
)

// Run is the application entry point. It loads configuration, connects the
// database, wires repositories, services, and the GraphQL transport, then
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	// 1. Configuration + logger.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 2. Database pool.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	// 3. Repositories.
	eventRepo := event.New(pool)
	ruleRepo := rule.New(pool)
	instanceRepo := instance.New(pool)
	exceptionRepo := exception.New(pool)
	windowRepo := window.New(pool)
	actionItemRepo := actionitem.New(pool)
	volunteerRepo := volunteer.New(pool)
	attachmentRepo := attachment.New(pool)
	txm := postgres.NewTxManager(pool)

	// 4. Services.
	matService := materializer.NewService(
		logger, eventRepo, ruleRepo, instanceRepo, exceptionRepo, txm,
		materializer.Config{
			HotWindowMonthsAhead: cfg.Recurrence.HotWindowMonthsAhead,
			MaxInstancesPerRun:   cfg.Recurrence.MaxInstancesPerRun,
		},
	)

	lifecycleService := lifecycle.NewService(
		logger, eventRepo, ruleRepo, instanceRepo, exceptionRepo,
		actionItemRepo, volunteerRepo, attachmentRepo, matService, txm,
	)

	resolutionService := resolution.NewService(
		logger, eventRepo, instanceRepo, exceptionRepo,
	)

	participationService := participation.NewService(
		logger, eventRepo, volunteerRepo, resolutionService,
	)

	// 5. Background sweep worker.
	workerCfg := worker.Config{
		Schedule:        cfg.Worker.Schedule,
		LookAheadMonths: cfg.Worker.LookAheadMonths,
		Cooldown:        cfg.Worker.Cooldown,
		BatchSize:       cfg.Worker.BatchSize,
	}
	sweeper := worker.NewSweeper(logger, windowRepo, ruleRepo, matService, workerCfg)

	var runner *worker.Runner
	if cfg.Worker.Enabled {
		runner = worker.NewRunner(logger, sweeper, workerCfg)
		if err := runner.Start(ctx); err != nil {
			return fmt.Errorf("start worker: %w", err)
		}
		defer runner.Stop()
	}

	// 6. Auth.
	tokenManager := auth.NewTokenManager(
		cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL,
	)

	// 7. GraphQL resolver + handler.
	res := resolver.NewResolver(logger, lifecycleService, resolutionService, participationService)
	gqlSrv := gqlpkg.NewServer(logger, res, cfg.GraphQL)

	dlRepos := &dataloader.Repos{
		ActionItems: actionItemRepo,
		Volunteers:  volunteerRepo,
		Resolver:    resolutionService,
	}

	// 8. Middleware chain.
	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws,
		middleware.Auth(tokenManager),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)
	graphqlHandler := middleware.Chain(mws...)(gqlSrv)

	// 9. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", gqlpkg.PlaygroundHandler("/query"))
	}

	// 10. HTTP server with graceful shutdown.
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
