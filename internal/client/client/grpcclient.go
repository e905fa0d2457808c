// Package client talks to the devconnector gRPC API.
package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devconnector/internal/rpc"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.AccountsClient
}

// NewGRPCClient prepares a connection to addr. No I/O happens until the
// first call.
func NewGRPCClient(addr string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", addr, err)
	}
	return &GRPCClient{endpointURL: addr, conn: conn, client: rpc.NewAccountsClient(conn)}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Register creates an account and returns its access token.
func (c *GRPCClient) Register(ctx context.Context, name, email, password string) (string, error) {
	resp, err := c.client.Register(ctx, &rpc.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return "", fromStatus(err)
	}
	return resp.GetToken(), nil
}

func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument, codes.AlreadyExists:
		rej := &RejectedError{Conflict: st.Code() == codes.AlreadyExists}
		for _, d := range st.Details() {
			if br, ok := d.(*errdetails.BadRequest); ok {
				for _, v := range br.GetFieldViolations() {
					rej.Messages = append(rej.Messages, v.GetDescription())
				}
			}
		}
		if len(rej.Messages) == 0 {
			rej.Messages = []string{st.Message()}
		}
		return rej
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return ErrServer
	}
}
