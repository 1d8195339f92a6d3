package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/harshadbhandure/money-matters/internal/auth"
	"github.com/harshadbhandure/money-matters/internal/config"
	"github.com/harshadbhandure/money-matters/internal/groups"
	"github.com/harshadbhandure/money-matters/internal/ledger"
	"github.com/harshadbhandure/money-matters/internal/metrics"
	"github.com/harshadbhandure/money-matters/internal/service"
	"github.com/harshadbhandure/money-matters/internal/storage/sqlstore"
	"github.com/harshadbhandure/money-matters/pkg/api/apiconnect"
	"github.com/harshadbhandure/money-matters/pkg/logging"
)

// apiPrefix is the path prefix shared by every Connect procedure.
const apiPrefix = "/moneymatters.v1."

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)
	if cfg.Production() && cfg.CORSOrigin == "*" {
		logger.Warn("CORS_ORIGIN allows any origin in production")
	}

	store, err := sqlstore.Open(sqlstore.Dialect(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	logger.Info("Storage initialized", "driver", cfg.DBDriver)

	m := metrics.New()
	access := auth.NewJWTManager(auth.AccessToken, cfg.JWTAccessSecret, cfg.AccessTTL())
	refresh := auth.NewJWTManager(auth.RefreshToken, cfg.JWTRefreshSecret, cfg.RefreshTTL())
	sessions := auth.NewSessionManager(
		auth.NewPasswordAuthenticator(store, cfg.BcryptCost),
		store, store, access, refresh, cfg.BcryptCost,
		auth.WithMetrics(m),
		auth.WithLogger(logger),
	)
	directory := groups.NewDirectory(store, logger)
	expenses := ledger.New(directory, store, ledger.WithMetrics(m), ledger.WithLogger(logger))

	api := http.NewServeMux()
	service.Mount(api, service.Deps{
		Sessions:     sessions,
		AccessTokens: sessions.AccessTokens(),
		Directory:    directory,
		Ledger:       expenses,
		Metrics:      m,
		Logger:       logger,
	})

	var static http.Handler
	if cfg.StaticPath != "" {
		staticDir, err := filepath.Abs(cfg.StaticPath)
		if err != nil {
			return fmt.Errorf("resolve static path: %w", err)
		}
		logger.Info("Serving static files", "path", staticDir)
		static = staticHandler(staticDir)
	}

	handler := newRouter(logger, cfg.CORSOrigin, api, m.Handler(), static)

	// h2c serves HTTP/2 without TLS, which gRPC clients need.
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Connect server starting", "address", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if interval := cfg.SweepInterval(); interval > 0 {
		g.Go(func() error {
			sweepExpiredTokens(ctx, logger, sessions, interval)
			return nil
		})
	}

	return g.Wait()
}

// newRouter mounts the RPC services, the metrics endpoint and the optional
// static client behind CORS, panic recovery and request logging.
func newRouter(logger *slog.Logger, corsOrigin string, api, metricsHandler, static http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(corsOrigin),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         300,
	}))
	r.Use(func(next http.Handler) http.Handler { return loggingMiddleware(logger, next) })

	for _, name := range []string{
		apiconnect.AuthServiceName,
		apiconnect.UserServiceName,
		apiconnect.GroupServiceName,
		apiconnect.ExpenseServiceName,
	} {
		r.Mount("/"+name, api)
	}
	r.Handle("/metrics", metricsHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if static != nil {
		r.NotFound(static.ServeHTTP)
	}
	return r
}

// sweepExpiredTokens deletes expired refresh tokens every interval until ctx is done.
func sweepExpiredTokens(ctx context.Context, logger *slog.Logger, sessions *auth.SessionManager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.SweepExpired(ctx)
			if err != nil {
				logger.Warn("Refresh token sweep failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info("Swept expired refresh tokens", "count", n)
			}
		}
	}
}

// staticHandler serves the browser client from dir. Unknown paths fall back
// to index.html; unknown procedures get a 404.
func staticHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPrefix) {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(dir, filepath.Clean("/"+urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
}

// loggingMiddleware logs every request at debug level and its completion at info.
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		logger.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// allowedOrigins splits a comma-separated CORS_ORIGIN value.
func allowedOrigins(value string) []string {
	var origins []string
	for _, p := range strings.Split(value, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
