// Package health evaluates dependency checks and reports them over HTTP and
// the standard gRPC health protocol.
package health

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusUp    = "up"
	StatusDown  = "down"
)

// Indicator is the state of a single dependency.
type Indicator struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Report is the aggregate result of all checks. Healthy dependencies are
// listed under Info, failing ones under Error and all of them under Details.
type Report struct {
	Status  string               `json:"status"`
	Info    map[string]Indicator `json:"info"`
	Error   map[string]Indicator `json:"error"`
	Details map[string]Indicator `json:"details"`
}

func (r Report) Healthy() bool {
	return r.Status == StatusOK
}

// CheckFunc returns nil when the dependency is usable.
type CheckFunc func(ctx context.Context) error

type Checker struct {
	timeout time.Duration
	names   []string
	checks  map[string]CheckFunc
}

// NewChecker returns a Checker bounding each check by timeout.
func NewChecker(timeout time.Duration) *Checker {
	return &Checker{timeout: timeout, checks: make(map[string]CheckFunc)}
}

// Add registers a named check.
func (c *Checker) Add(name string, fn CheckFunc) *Checker {
	if _, ok := c.checks[name]; !ok {
		c.names = append(c.names, name)
		sort.Strings(c.names)
	}
	c.checks[name] = fn
	return c
}

func (c *Checker) run(ctx context.Context, fn CheckFunc) error {
	if c.timeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return fn(ctx)
}

// Check runs every registered check.
func (c *Checker) Check(ctx context.Context) Report {
	r := Report{
		Status:  StatusOK,
		Info:    map[string]Indicator{},
		Error:   map[string]Indicator{},
		Details: map[string]Indicator{},
	}

	for _, name := range c.names {
		if err := c.run(ctx, c.checks[name]); err != nil {
			ind := Indicator{Status: StatusDown, Message: err.Error()}
			r.Error[name] = ind
			r.Details[name] = ind
			r.Status = StatusError
			continue
		}
		ind := Indicator{Status: StatusUp}
		r.Info[name] = ind
		r.Details[name] = ind
	}

	return r
}

// Handler serves the report as JSON: 200 when healthy, 503 otherwise.
func Handler(c *Checker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r := c.Check(ctx.Request.Context())
		code := http.StatusOK
		if !r.Healthy() {
			code = http.StatusServiceUnavailable
		}
		ctx.JSON(code, r)
	}
}
