package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/authslice/internal/authentication/users"
	"github.com/dmitrijs2005/authslice/internal/common"
	"github.com/dmitrijs2005/authslice/internal/logging"
	"github.com/dmitrijs2005/authslice/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeUsers{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeUsers{}, nil)

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufconn serves s over an in-memory listener and returns a client
// connection to it.
func startBufconn(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = s.Serve(ctx, lis)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServer_EndToEnd(t *testing.T) {
	svc := users.NewService(users.NewInMemoryRepository(), users.NewBcryptHasher(bcrypt.MinCost), time.Second, logging.Nop{})
	hs := health.NewServer()
	conn := startBufconn(t, NewGRPCServer("bufnet", logging.Nop{}, svc, hs))
	client := rpc.NewUsersClient(conn)
	ctx := context.Background()

	empty, err := client.GetUsers(ctx, &rpc.GetUsersRequest{})
	require.NoError(t, err)
	assert.Equal(t, rpc.NoUsersMessage, empty.Message)

	reg, err := client.RegisterUser(ctx, &rpc.RegisterUserRequest{Name: "Test User", Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", reg.User.Email)

	_, err = client.RegisterUser(ctx, &rpc.RegisterUserRequest{Name: "Again", Email: "test@example.com", Password: "password123"})
	assert.Equal(t, common.KindAlreadyRegistered, common.KindOf(rpc.FromError(err)))

	_, err = client.RegisterUser(ctx, &rpc.RegisterUserRequest{Name: "A", Email: "invalid-email", Password: "123"})
	assert.ErrorIs(t, rpc.FromError(err), common.ErrValidation)

	v, err := client.ValidateUser(ctx, &rpc.ValidateUserRequest{Email: "test@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, v.User.ID)

	_, err = client.ValidateUser(ctx, &rpc.ValidateUserRequest{Email: "test@example.com", Password: "wrongpassword"})
	assert.ErrorIs(t, rpc.FromError(err), common.ErrInvalidPassword)

	_, err = client.ValidateUser(ctx, &rpc.ValidateUserRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, rpc.FromError(err), common.ErrEmailNotRegistered)

	list, err := client.GetUsers(ctx, &rpc.GetUsersRequest{})
	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	assert.Empty(t, list.Message)

	hresp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, hresp.GetStatus())
}
