package health

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authslice/internal/logging"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Monitor periodically runs a Checker and publishes the outcome on a gRPC
// health server for the given service names. The empty name is the overall
// server status.
type Monitor struct {
	checker  *Checker
	server   *health.Server
	services []string
	interval time.Duration
	logger   logging.Logger
}

func NewMonitor(c *Checker, s *health.Server, interval time.Duration, l logging.Logger, services ...string) *Monitor {
	return &Monitor{
		checker:  c,
		server:   s,
		services: append([]string{""}, services...),
		interval: interval,
		logger:   l.With("module", "health_monitor"),
	}
}

// Update runs the checks once and publishes the result.
func (m *Monitor) Update(ctx context.Context) Report {
	r := m.checker.Check(ctx)

	status := healthpb.HealthCheckResponse_SERVING
	if !r.Healthy() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		m.logger.Warn(ctx, "health check failed", "error", r.Error)
	}
	for _, svc := range m.services {
		m.server.SetServingStatus(svc, status)
	}
	return r
}

// Run updates the status every interval until ctx is cancelled, then marks
// all services as not serving.
func (m *Monitor) Run(ctx context.Context) {
	m.Update(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			return
		case <-ticker.C:
			m.Update(ctx)
		}
	}
}
