package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres"
	contentrepo "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres/content"
	historyrepo "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres/history"
	userrepo "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres/user"
	userlistrepo "github.com/heartmarshall/escolhe-pra-mim/internal/adapter/postgres/userlist"
	"github.com/heartmarshall/escolhe-pra-mim/internal/adapter/provider/tmdb"
	authpkg "github.com/heartmarshall/escolhe-pra-mim/internal/auth"
	"github.com/heartmarshall/escolhe-pra-mim/internal/config"
	"github.com/heartmarshall/escolhe-pra-mim/internal/service/auth"
	"github.com/heartmarshall/escolhe-pra-mim/internal/service/content"
	"github.com/heartmarshall/escolhe-pra-mim/internal/service/discovery"
	"github.com/heartmarshall/escolhe-pra-mim/internal/service/lists"
	"github.com/heartmarshall/escolhe-pra-mim/internal/transport/middleware"
	"github.com/heartmarshall/escolhe-pra-mim/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)
	if cfg.Auth.UsingFallbackSecret {
		logger.Warn("JWT_SECRET is not set, using the development fallback secret")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("app: %w", err)
		}
	}

	handler, limiter := buildHandler(cfg, logger, pool)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// buildHandler wires repositories, services and the HTTP routing tree.
// The caller owns the returned limiter and must Stop it.
func buildHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, *middleware.RateLimiter) {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	contents := contentrepo.New(pool)
	userLists := userlistrepo.New(pool)
	history := historyrepo.New(pool)

	// Services.
	jwtManager := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	authSvc := auth.NewService(logger, users, jwtManager, cfg.Auth)
	contentSvc := content.NewService(logger, contents)
	listsSvc := lists.NewService(logger, userLists, history, users, txm)
	discoverySvc := newDiscovery(logger, cfg.TMDB)

	logger.Info("catalog source selected", slog.String("mode", string(discoverySvc.Mode())))

	// HTTP. Request metrics live in their own registry; the default one
	// carries the runtime collectors and the TMDB client counters.
	reg := prometheus.NewRegistry()
	metrics := middleware.NewHTTPMetrics(reg)
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, reg}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Window(), cfg.RateLimit.Max, cfg.RateLimit.Window())

	handler := rest.NewRouter(rest.Handlers{
		Accounts: rest.NewAccountsHandler(authSvc, logger),
		Lists:    rest.NewListsHandler(listsSvc, logger),
		Catalog:  rest.NewCatalogHandler(discoverySvc, listsSvc, contentSvc, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion(), string(discoverySvc.Mode())),
		Metrics:  promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}),
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger, rest.PlainError),
			metrics.Middleware,
			middleware.SecureHeaders,
			middleware.CORS(cfg.CORS),
		},
		RequireAuth:  middleware.RequireAuth(authSvc, rest.PlainError),
		OptionalAuth: middleware.OptionalAuth(authSvc),
		CatalogMiddleware: []middleware.Middleware{
			limiter.Limit(rest.EnvelopeError),
			middleware.Recovery(logger, rest.EnvelopeError),
		},
		AuthLimit: rest.AuthLimit{Requests: cfg.RateLimit.AuthMax, Window: cfg.RateLimit.AuthWindow},
	})

	return handler, limiter
}

// newDiscovery returns a discovery service backed by TMDB when an API key
// is configured, otherwise by the bundled mock catalog.
func newDiscovery(logger *slog.Logger, cfg config.TMDBConfig) *discovery.Service {
	if !cfg.Enabled() {
		return discovery.NewService(logger, nil, cfg)
	}
	return discovery.NewService(logger, tmdb.NewClient(cfg, logger), cfg)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: http server shutdown: %w", err)
	}
	<-errCh
	logger.Info("http server stopped")
	return nil
}
