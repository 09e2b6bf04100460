package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/boards/internal/boards/http"
	"github.com/aussiebroadwan/boards/internal/boards/service"
	"github.com/aussiebroadwan/boards/internal/boards/store"
	"github.com/aussiebroadwan/boards/internal/boards/store/drivers/sqlite"
	"github.com/aussiebroadwan/boards/pkg/cryptox"
	"github.com/aussiebroadwan/boards/pkg/jwtx"
	"github.com/aussiebroadwan/boards/pkg/otelx"
	"github.com/aussiebroadwan/boards/pkg/slogx"
)

const (
	serviceName = "boards-service"

	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application is the boards service with all of its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	otelShutdown  func(context.Context) error
	hasher        *cryptox.PasswordHasher
	signer        jwtx.Signer
	verifier      jwtx.Verifier
	accessService *service.AccessService
	boardService  *service.BoardService
	todoService   *service.TodoService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with every dependency initialized. Nothing is
// listening until Run.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: serviceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	shutdown, err := otelx.Setup(context.Background(), otelx.Config{
		ServiceName: serviceName,
		Version:     BuildVersion,
		Env:         cfg.Env,
		Endpoint:    cfg.OTELEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	app.otelShutdown = shutdown

	if err := app.initSecrets(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler is the fully wired HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("boards service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"tracing", app.cfg.OTELEndpoint != "",
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown drains in-flight requests, flushes spans and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down boards service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.otelShutdown(ctx); err != nil {
		app.logger.Error("error flushing traces", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("boards service stopped")
	return nil
}

// initSecrets loads the password pepper and the token signing secret,
// generating their files on first start.
func (app *Application) initSecrets() error {
	pepper, err := cryptox.LoadOrGeneratePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	secret := []byte(app.cfg.JWTSecret)
	if len(secret) == 0 {
		secret, err = cryptox.LoadOrGenerateJWTSecret(app.cfg.JWTSecretFile)
		if err != nil {
			return fmt.Errorf("failed to load jwt secret: %w", err)
		}
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.signer = signer
	app.verifier = jwtx.NewVerifierHS256(secret, app.cfg.Issuer).WithLeeway(30 * time.Second)

	return nil
}

// initDatabase opens the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.DSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
	return nil
}

func (app *Application) initServices() {
	app.accessService = &service.AccessService{
		Store:    app.db,
		Hasher:   app.hasher,
		Signer:   app.signer,
		Verifier: app.verifier,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.TokenTTL,
	}
	app.boardService = &service.BoardService{Store: app.db}
	app.todoService = &service.TodoService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger, nil)

	router.AccessService = app.accessService
	router.BoardService = app.boardService
	router.TodoService = app.todoService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
