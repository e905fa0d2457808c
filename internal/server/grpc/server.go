package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/devconnector/internal/logging"
	"github.com/dmitrijs2005/devconnector/internal/rpc"
	"github.com/dmitrijs2005/devconnector/internal/server/services"
	"google.golang.org/grpc"
)

// Registrar is the part of the registration service the transport needs.
type Registrar interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error)
}

type GRPCServer struct {
	address       string
	registrations Registrar
	logger        logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, r Registrar) *GRPCServer {
	return &GRPCServer{
		address:       a,
		logger:        l.With("module", "grpc_server"),
		registrations: r,
	}
}

// newServer builds the gRPC server with interceptors and the Accounts
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.recoveryInterceptor,
		s.loggingInterceptor,
	))
	rpc.RegisterAccountsServer(srv, &accountsHandler{registrations: s.registrations, logger: s.logger})
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
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
