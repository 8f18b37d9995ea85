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

	"google.golang.org/grpc/connectivity"

	"github.com/mohamed-achich/api-gateway/internal/gateway/backends/orders"
	"github.com/mohamed-achich/api-gateway/internal/gateway/backends/products"
	"github.com/mohamed-achich/api-gateway/internal/gateway/backends/users"
	httpapi "github.com/mohamed-achich/api-gateway/internal/gateway/http"
	"github.com/mohamed-achich/api-gateway/internal/gateway/service"
	"github.com/mohamed-achich/api-gateway/internal/gateway/store"
	redisstore "github.com/mohamed-achich/api-gateway/internal/gateway/store/drivers/redis"
	"github.com/mohamed-achich/api-gateway/pkg/grpcx"
	"github.com/mohamed-achich/api-gateway/pkg/jwtx"
	"github.com/mohamed-achich/api-gateway/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"

	// ServiceName is the caller identity stamped into outbound service tokens.
	ServiceName = "api-gateway"
)

// Application encapsulates the gateway with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	store  store.Store
	issuer *jwtx.Issuer

	// Backend clients
	usersClient    *users.Client
	productsClient *products.Client
	ordersClient   *orders.Client

	// Services
	tokenService *service.TokenService
	userService  *service.UserService

	// HTTP server
	server *http.Server
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: ServiceName,
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	issuer, err := jwtx.NewIssuer(jwtx.Config{
		Issuer:        cfg.Issuer,
		AccessSecret:  []byte(cfg.AccessSecret),
		RefreshSecret: []byte(cfg.RefreshSecret),
		ServiceSecret: []byte(cfg.ServiceSecret),
		AccessTTL:     cfg.AccessTTL,
		RefreshTTL:    cfg.RefreshTTL,
		ServiceTTL:    cfg.ServiceTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing token issuer: %w", err)
	}
	app.issuer = issuer

	if err := app.initStore(); err != nil {
		return nil, err
	}
	if err := app.initBackends(); err != nil {
		_ = app.store.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api gateway starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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
	app.logger.Info("shutting down api gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	for name, closer := range map[string]interface{ Close() error }{
		"users client":    app.usersClient,
		"products client": app.productsClient,
		"orders client":   app.ordersClient,
	} {
		if err := closer.Close(); err != nil {
			app.logger.Error("error closing "+name, "error", err)
		}
	}

	if err := app.store.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("api gateway stopped")
	return nil
}

func (app *Application) initStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := redisstore.NewStore(ctx, redisstore.Config{
		Addr:     app.cfg.RedisAddr,
		Password: app.cfg.RedisPassword,
		DB:       app.cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	app.store = st

	app.logger.Info("connected to redis", "addr", app.cfg.RedisAddr)
	return nil
}

func (app *Application) initBackends() error {
	src := grpcx.NewBearerSource(func() (string, time.Duration, error) {
		token, err := app.issuer.IssueService(ServiceName)
		return token, app.issuer.TTL(jwtx.KindService), err
	})

	var err error
	if app.usersClient, err = users.Dial(app.cfg.UsersAddr, src); err != nil {
		return err
	}
	if app.productsClient, err = products.Dial(app.cfg.ProductsAddr, src); err != nil {
		return err
	}
	if app.ordersClient, err = orders.Dial(app.cfg.OrdersAddr, src); err != nil {
		return err
	}

	return nil
}

func (app *Application) initServices() {
	app.userService = service.NewUserService(app.usersClient)
	app.tokenService = service.NewTokenService(app.issuer, app.store, app.usersClient)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.logger, httpapi.Dependencies{
		Tokens:   app.tokenService,
		Accounts: app.userService,
		Products: app.productsClient,
		Orders:   app.ordersClient,
		Verifier: app.issuer,
		Revoked:  app.store.Blacklist(),
		Counter:  app.store.Counters(),
		Ready:    app.ready,
	})

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// ready reports whether the store and backend connections can serve traffic.
func (app *Application) ready(ctx context.Context) error {
	if err := app.store.Ping(ctx); err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	for name, state := range map[string]connectivity.State{
		"users":    app.usersClient.State(),
		"products": app.productsClient.State(),
		"orders":   app.ordersClient.State(),
	} {
		if state == connectivity.Shutdown {
			return fmt.Errorf("%s backend connection is shut down", name)
		}
	}

	return nil
}
