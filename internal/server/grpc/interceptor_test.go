package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/devconnector.accounts.v1.Accounts/Register"}

func TestRequestIDInterceptor_UsesIncoming(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, nil)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.RequestIDHeaderName, "req-42"))

	var seen string
	_, err := s.requestIDInterceptor(ctx, nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "req-42", seen)
}

func TestRequestIDInterceptor_Generates(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, nil)

	var seen string
	_, err := s.requestIDInterceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = RequestIDFromContext(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 36)
}

func TestRecoveryInterceptor(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, nil)

	resp, err := s.recoveryInterceptor(context.Background(), nil, testInfo, func(context.Context, interface{}) (interface{}, error) {
		panic("boom")
	})
	assert.Nil(t, resp)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}

func TestRecoveryInterceptor_PassesThrough(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, nil)

	resp, err := s.recoveryInterceptor(context.Background(), "in", testInfo, func(_ context.Context, req interface{}) (interface{}, error) {
		return req, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "in", resp)
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
