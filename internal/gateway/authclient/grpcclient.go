// Package authclient is the gateway's caller side of the authentication
// backend. Every call is bounded by a fixed timeout and its failures are
// decoded into the shared error kinds.
package authclient

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/rpc"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

const tracerName = "github.com/dmitrijs2005/authslice/internal/gateway/authclient"

// serviceConfig retries the idempotent reads on UNAVAILABLE. register_user
// is never retried.
const serviceConfig = `{
	"methodConfig": [{
		"name": [
			{"service": "` + rpc.ServiceName + `", "method": "` + rpc.TagGetUsers + `"},
			{"service": "` + rpc.ServiceName + `", "method": "` + rpc.TagValidateUser + `"}
		],
		"retryPolicy": {
			"maxAttempts": 3,
			"initialBackoff": "0.1s",
			"maxBackoff": "1s",
			"backoffMultiplier": 2,
			"retryableStatusCodes": ["UNAVAILABLE"]
		}
	}]
}`

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	users       rpc.UsersClient
	health      healthpb.HealthClient
	logger      logging.Logger
}

// NewGRPCClient prepares a client for the backend at endpointURL. The
// connection is established lazily on the first call.
func NewGRPCClient(endpointURL string, timeout time.Duration, l logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(serviceConfig),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &GRPCClient{
		endpointURL: endpointURL,
		timeout:     timeout,
		conn:        conn,
		users:       rpc.NewUsersClient(conn),
		health:      healthpb.NewHealthClient(conn),
		logger:      l.With("module", "auth_client"),
	}, nil
}

// call runs fn under the client timeout with request metadata attached and
// decodes its error.
func (c *GRPCClient) call(ctx context.Context, tag string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	ctx, span := otel.Tracer(tracerName).Start(ctx, rpc.ServiceName+"/"+tag, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	err := fn(rpc.OutgoingContext(ctx))
	if err == nil {
		return nil
	}

	decoded := rpc.FromError(err)
	span.SetStatus(otelcodes.Error, string(common.KindOf(decoded)))
	c.logger.Debug(ctx, "backend call failed", "tag", tag, "kind", string(common.KindOf(decoded)), "error", err.Error())
	return decoded
}

func (c *GRPCClient) RegisterUser(ctx context.Context, name, email, password string) (*rpc.User, error) {
	var reply *rpc.RegisterUserReply
	err := c.call(ctx, rpc.TagRegisterUser, func(ctx context.Context) error {
		var err error
		reply, err = c.users.RegisterUser(ctx, &rpc.RegisterUserRequest{Name: name, Email: email, Password: password})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &reply.User, nil
}

func (c *GRPCClient) GetUsers(ctx context.Context) (*rpc.GetUsersReply, error) {
	var reply *rpc.GetUsersReply
	err := c.call(ctx, rpc.TagGetUsers, func(ctx context.Context) error {
		var err error
		reply, err = c.users.GetUsers(ctx, &rpc.GetUsersRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *GRPCClient) ValidateUser(ctx context.Context, email, password string) (*rpc.User, error) {
	var reply *rpc.ValidateUserReply
	err := c.call(ctx, rpc.TagValidateUser, func(ctx context.Context) error {
		var err error
		reply, err = c.users.ValidateUser(ctx, &rpc.ValidateUserRequest{Email: email, Password: password})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &reply.User, nil
}

// Check asks the backend's health service whether the Users service is
// serving.
func (c *GRPCClient) Check(ctx context.Context) error {
	return c.call(ctx, "health", func(ctx context.Context) error {
		resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: rpc.ServiceName})
		if err != nil {
			return err
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			return status.Errorf(codes.Unavailable, "backend reports %s", resp.GetStatus())
		}
		return nil
	})
}

// Connect verifies the backend is reachable and logs the outcome. A failure
// is not fatal: the connection is retried on the next call.
func (c *GRPCClient) Connect(ctx context.Context) error {
	if err := c.Check(ctx); err != nil {
		c.logger.Error(ctx, "Failed to connect to authentication service", "address", c.endpointURL, "error", err.Error())
		return err
	}
	c.logger.Info(ctx, "Connected to authentication service", "address", c.endpointURL)
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
