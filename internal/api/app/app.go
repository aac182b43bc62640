package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	httpapi "github.com/taskdesk/taskdesk/internal/api/http"
	"github.com/taskdesk/taskdesk/internal/api/service"
	"github.com/taskdesk/taskdesk/internal/api/store"
	"github.com/taskdesk/taskdesk/internal/api/store/drivers/sqlite"
	"github.com/taskdesk/taskdesk/pkg/cryptox"
	"github.com/taskdesk/taskdesk/pkg/idx"
	"github.com/taskdesk/taskdesk/pkg/jwtx"
	"github.com/taskdesk/taskdesk/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.EdDSASigner

	// Services
	identityService  *service.IdentityService
	taskService      *service.TaskService
	directoryService *service.DirectoryService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "taskdesk-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	// Session signing key is ephemeral; restarting the service invalidates
	// outstanding sessions, which just forces a fresh login.
	signer, err := jwtx.NewEphemeralSigner(idx.New().String())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize signing key: %w", err)
	}
	app.signer = signer

	app.initServices()
	app.initHTTP()

	if err := app.seedAdmin(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.identityService = &service.IdentityService{
		Store:      app.db,
		Signer:     app.signer,
		Issuer:     app.cfg.Issuer,
		SessionTTL: app.cfg.SessionTTL,
		InviteTTL:  app.cfg.InviteTTL,
	}

	app.taskService = &service.TaskService{Store: app.db}

	app.directoryService = &service.DirectoryService{
		Client:  &http.Client{Timeout: app.cfg.DirectoryTimeout},
		BaseURL: app.cfg.DirectoryBaseURL,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		jwtx.VerifierFor(app.cfg.Issuer, app.signer),
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.IdentityService = app.identityService
	router.TaskService = app.taskService
	router.DirectoryService = app.directoryService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// seedAdmin creates the configured admin account on first run. Admins are
// never created through signup; this is the only way one comes to exist.
func (app *Application) seedAdmin(ctx context.Context) error {
	if app.cfg.AdminEmail == "" || app.cfg.AdminPassword == "" {
		return nil
	}

	exists, err := app.db.Users().HasAdmin(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := cryptox.HashPassword(app.cfg.AdminPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := domain.User{
		ID:           idx.New().String(),
		Name:         app.cfg.AdminName,
		Email:        app.cfg.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := app.db.Users().CreateUser(ctx, admin); err != nil {
		return err
	}

	app.logger.Info("admin account seeded", "email", app.cfg.AdminEmail)
	return nil
}
