package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authslice/internal/authentication/users"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type userService interface {
	Register(ctx context.Context, in users.RegisterInput) (*users.User, error)
	List(ctx context.Context) ([]*users.User, error)
	Validate(ctx context.Context, in users.CredentialsInput) (*users.User, error)
}

type GRPCServer struct {
	address string
	users   userService
	health  *health.Server
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userService, hs *health.Server) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		health:  hs,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.recoveryInterceptor,
		s.requestContextInterceptor,
		s.tracingInterceptor,
		s.loggingInterceptor,
	))

	rpc.RegisterUsersServer(srv, s)
	if s.health != nil {
		healthpb.RegisterHealthServer(srv, s.health)
	}
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
