// Package gateway wires the HTTP edge service: the backend client, the
// token service, the rate limiters and the HTTP API.
package gateway

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/authslice/internal/gateway/auth"
	"github.com/dmitrijs2005/authslice/internal/gateway/authclient"
	"github.com/dmitrijs2005/authslice/internal/gateway/config"
	"github.com/dmitrijs2005/authslice/internal/gateway/httpapi"
	"github.com/dmitrijs2005/authslice/internal/gateway/ratelimit"
	"github.com/dmitrijs2005/authslice/internal/health"
	"github.com/dmitrijs2005/authslice/internal/httpx"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/telemetry"
	"github.com/gin-gonic/gin"
)

// ServiceName identifies the gateway in logs and traces.
const ServiceName = "gateway"

type App struct {
	config          *config.Config
	logger          logging.Logger
	client          *authclient.GRPCClient
	registerLimiter *ratelimit.Limiter
	loginLimiter    *ratelimit.Limiter
	engine          *gin.Engine
	shutdown        telemetry.ShutdownFunc
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(logging.Options{Format: c.LogFormat, Level: c.LogLevel, Service: ServiceName})

	shutdown, err := telemetry.Setup(ctx, ServiceName, c.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telemetry init error: %w", err)
	}

	app, err := newApp(c, logger, shutdown)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, shutdown telemetry.ShutdownFunc) (*App, error) {
	client, err := authclient.NewGRPCClient(c.AuthServiceAddr, c.AuthServiceTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("auth client init error: %w", err)
	}

	tokens := auth.NewTokenService(c.SecretKey, c.TokenIssuer, c.TokenValidityDuration)
	service := auth.NewService(client, tokens, logger)
	registerLimiter := ratelimit.New(c.RegisterRateLimit, c.RateLimitWindow)
	loginLimiter := ratelimit.New(c.LoginRateLimit, c.RateLimitWindow)

	engine, err := httpapi.NewRouter(httpapi.Options{
		Service:         service,
		Local:           auth.NewLocalStrategy(service),
		JWT:             auth.NewJWTStrategy(tokens),
		Checker:         health.NewChecker(c.AuthServiceTimeout).Add("authentication", client.Check),
		RegisterLimiter: registerLimiter,
		LoginLimiter:    loginLimiter,
		TrustedProxies:  c.TrustedProxies,
		Logger:          logger,
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("router init error: %w", err)
	}

	return &App{
		config:          c,
		logger:          logger,
		client:          client,
		registerLimiter: registerLimiter,
		loginLimiter:    loginLimiter,
		engine:          engine,
		shutdown:        shutdown,
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	if err := httpx.NewServer(app.config.EndpointAddrHTTP, app.engine, app.logger).Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until SIGINT/SIGTERM or ctx cancellation, then closes the
// backend connection.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.AuthServiceAddr)

	app.initSignalHandler(cancelFunc)

	// the backend may come up later; the connection is retried lazily
	_ = app.client.Connect(ctx)

	var wg sync.WaitGroup

	for _, l := range []*ratelimit.Limiter{app.registerLimiter, app.loginLimiter} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Run(ctx)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.client.Close(); err != nil {
		app.logger.Error(closeCtx, "auth client close error", "error", err.Error())
	}
	if err := app.shutdown(closeCtx); err != nil {
		app.logger.Error(closeCtx, "telemetry shutdown error", "error", err.Error())
	}

	app.logger.Info(closeCtx, "Stopped")
}
