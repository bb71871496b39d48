// Package authentication wires the authentication backend: the credential
// store, the users service, the gRPC transport and the health endpoints.
package authentication

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authslice/internal/authentication/config"
	"github.com/dmitrijs2005/authslice/internal/authentication/repomanager"
	"github.com/dmitrijs2005/authslice/internal/authentication/users"
	"github.com/dmitrijs2005/authslice/internal/health"
	"github.com/dmitrijs2005/authslice/internal/httpx"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/rpc"
	"github.com/dmitrijs2005/authslice/internal/telemetry"

	gs "github.com/dmitrijs2005/authslice/internal/authentication/grpc"
	grpchealth "google.golang.org/grpc/health"
)

// ServiceName identifies the backend in logs and traces.
const ServiceName = "authentication"

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       repomanager.RepositoryManager
	userService *users.Service
	checker     *health.Checker
	health      *grpchealth.Server
	shutdown    telemetry.ShutdownFunc
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(logging.Options{Format: c.LogFormat, Level: c.LogLevel, Service: ServiceName})

	shutdown, err := telemetry.Setup(ctx, ServiceName, c.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	store, err := repomanager.New(ctx, c.DatabaseDSN, logger)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("store init error: %w", err)
	}

	return newApp(c, logger, store, shutdown), nil
}

func newApp(c *config.Config, logger logging.Logger, store repomanager.RepositoryManager, shutdown telemetry.ShutdownFunc) *App {
	us := users.NewService(store.Users(), users.NewBcryptHasher(c.BcryptCost), c.StoreTimeout, logger)
	checker := health.NewChecker(c.StoreTimeout).Add(store.Name(), store.Ping)

	return &App{
		config:      c,
		logger:      logger,
		store:       store,
		userService: us,
		checker:     checker,
		health:      grpchealth.NewServer(),
		shutdown:    shutdown,
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.health)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHealthServer(ctx context.Context, cancelFunc context.CancelFunc) {

	engine := httpx.NewEngine()
	engine.Use(httpx.Recovery(app.logger))
	engine.GET("/health", health.Handler(app.checker))

	if err := httpx.NewServer(app.config.HealthAddrHTTP, engine, app.logger).Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until SIGINT/SIGTERM or ctx cancellation, then stops the
// listeners and closes the store.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "store", app.store.Name())

	app.initSignalHandler(cancelFunc)

	monitor := health.NewMonitor(app.checker, app.health, app.config.HealthCheckInterval, app.logger, rpc.ServiceName)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		monitor.Run(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.HealthAddrHTTP != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHealthServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	// ctx is done here, use a fresh one to flush and disconnect
	closeCtx, cancel := context.WithTimeout(context.Background(), app.config.StoreTimeout)
	defer cancel()
	if err := app.store.Close(closeCtx); err != nil {
		app.logger.Error(closeCtx, "store close error", "error", err.Error())
	}
	if err := app.shutdown(closeCtx); err != nil {
		app.logger.Error(closeCtx, "telemetry shutdown error", "error", err.Error())
	}

	app.logger.Info(closeCtx, "Stopped")
}
