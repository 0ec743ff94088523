// Package server initializes and runs one of the two HTTP services. It opens
// the credential store, applies schema migrations, and serves the configured
// role until interrupted.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mpetrov/dashauth/internal/logging"
	"github.com/mpetrov/dashauth/internal/server/config"
	"github.com/mpetrov/dashauth/internal/server/httpapi"
	"github.com/mpetrov/dashauth/internal/server/migrations"
	"github.com/mpetrov/dashauth/internal/server/repositories/users"
	"github.com/mpetrov/dashauth/internal/server/services"
)

// Role selects which of the two services a process runs. Both roles share
// the credential store and the signing secret but never call each other.
type Role string

const (
	RoleAuth Role = "auth-service"
	RoleUser Role = "user-service"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	role    Role
	db      *sql.DB
	handler http.Handler
}

// NewApp wires a service for the given role. It refuses to start without a
// store connection string, fails if the store is unreachable, and warns when
// the signing secret is left at its insecure default.
func NewApp(cfg *config.Config, role Role) (*App, error) {

	ctx := context.Background()

	l := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	logger := l.With("service", string(role))

	if cfg.DatabaseDSN == "" {
		return nil, errors.New("missing DATABASE_DSN: a credential store connection string is required")
	}
	if cfg.SecretKey == config.DefaultSecretKey {
		logger.Warn(ctx, "using default signing secret, set JWT_SECRET for security")
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("credential store unreachable: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	repo := users.NewPostgresRepository(db)
	service := services.NewUserService(repo, cfg)

	var handler http.Handler
	switch role {
	case RoleAuth:
		handler = httpapi.NewAuthRouter(service, logger, cfg.AllowedOrigin)
	case RoleUser:
		handler = httpapi.NewUserRouter(service, logger, []byte(cfg.SecretKey), cfg.AllowedOrigin)
	default:
		db.Close()
		return nil, fmt.Errorf("unknown role %q", role)
	}

	return &App{config: cfg, logger: logger, role: role, db: db, handler: handler}, nil
}

// runMigrations applies the embedded goose migrations. They are idempotent,
// so either service may start first.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (app *App) addr() string {
	if app.role == RoleAuth {
		return app.config.AuthAddr
	}
	return app.config.UserAddr
}

// Run serves HTTP until the context is canceled or a termination signal
// arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	defer app.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.initSignalHandler(cancel)

	srv := &http.Server{Addr: app.addr(), Handler: app.handler}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "stopping HTTP server")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}
