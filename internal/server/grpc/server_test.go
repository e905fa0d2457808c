package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/logging"
	"github.com/dmitrijs2005/devconnector/internal/rpc"
	"github.com/dmitrijs2005/devconnector/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startBufServer(t *testing.T, r Registrar) rpc.AccountsClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	s := NewGRPCServer("bufnet", logging.Nop{}, r)
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()
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
	return rpc.NewAccountsClient(conn)
}

func TestServer_RegisterEndToEnd(t *testing.T) {
	client := startBufServer(t, &fakeRegistrar{res: &services.RegisterResult{Token: "tok"}})

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "abc")
	var header metadata.MD
	resp, err := client.Register(ctx, &rpc.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret1"}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, []string{"abc"}, header.Get(common.RequestIDHeaderName))
}

func TestServer_PanicBecomesInternal(t *testing.T) {
	client := startBufServer(t, &fakeRegistrar{panic: true})

	_, err := client.Register(context.Background(), &rpc.RegisterRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeRegistrar{})

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
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeRegistrar{})

	err := srv.Run(context.Background())
	assert.Error(t, err)
}
