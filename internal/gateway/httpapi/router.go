package httpapi

import (
	"fmt"

	"github.com/dmitrijs2005/authslice/internal/gateway/auth"
	"github.com/dmitrijs2005/authslice/internal/gateway/ratelimit"
	"github.com/dmitrijs2005/authslice/internal/health"
	"github.com/dmitrijs2005/authslice/internal/httpx"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

type Options struct {
	Service         *auth.Service
	Local           auth.Strategy
	JWT             auth.Strategy
	Checker         *health.Checker
	RegisterLimiter *ratelimit.Limiter
	LoginLimiter    *ratelimit.Limiter
	TrustedProxies  []string
	Logger          logging.Logger
}

// NewRouter wires the gateway routes.
func NewRouter(o Options) (*gin.Engine, error) {
	e := httpx.NewEngine()
	if err := e.SetTrustedProxies(o.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	e.Use(
		httpx.RequestID(),
		httpx.Tracing(),
		httpx.Recovery(o.Logger),
		httpx.AccessLog(o.Logger),
		httpx.BodySizeLimit(maxBodyBytes),
	)

	h := NewHandler(o.Service, o.Logger)

	g := e.Group("/auth")
	g.POST("/register", rateLimit("register", o.RegisterLimiter), h.Register)
	g.POST("/login", rateLimit("login", o.LoginLimiter), authenticate(o.Local), h.Login)
	g.GET("/profile", authenticate(o.JWT), h.Profile)
	g.GET("/users", h.ListUsers)

	e.GET("/health", health.Handler(o.Checker))

	return e, nil
}
