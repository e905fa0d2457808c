// Package server wires the devconnector server together: configuration,
// logging, storage, the registration service and its HTTP and gRPC
// transports, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/devconnector/internal/logging"
	"github.com/dmitrijs2005/devconnector/internal/server/auth"
	"github.com/dmitrijs2005/devconnector/internal/server/avatar"
	"github.com/dmitrijs2005/devconnector/internal/server/config"
	"github.com/dmitrijs2005/devconnector/internal/server/credentials"
	"github.com/dmitrijs2005/devconnector/internal/server/httpapi"
	"github.com/dmitrijs2005/devconnector/internal/server/metrics"
	"github.com/dmitrijs2005/devconnector/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devconnector/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/devconnector/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	httpServer  *httpapi.HTTPServer
	grpcServer  *gs.GRPCServer
}

// NewApp builds every component from c and applies storage migrations.
// It fails when the token secret is missing, so a misconfigured process
// never starts serving.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {

	logger, err := logging.New(logOut, c.LogFormat, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	issuer, err := auth.NewIssuer([]byte(c.SecretKey), c.TokenValidity)
	if err != nil {
		return nil, fmt.Errorf("token issuer init error: %w", err)
	}

	hasher, err := credentials.New(c)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	rm, err := repomanager.New(c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	m := metrics.New()
	svc := services.NewRegistrationService(rm.Accounts(), hasher, avatar.NewResolver(), issuer,
		services.WithLogger(logger),
		services.WithRecorder(m),
	)

	return &App{
		config:      c,
		logger:      logger,
		repomanager: rm,
		httpServer:  httpapi.NewHTTPServer(c.HTTPAddr, logger, svc, m.Handler()),
		grpcServer:  gs.NewGRPCServer(c.GRPCAddr, logger, svc),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP and gRPC until ctx is cancelled, a termination signal
// arrives or one of the servers fails. Storage is closed on the way out.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageType)

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.httpServer.Run(gctx) })
	g.Go(func() error { return app.grpcServer.Run(gctx) })

	err := g.Wait()

	if cerr := app.repomanager.Close(); cerr != nil {
		app.logger.Error(ctx, "closing storage", "error", cerr)
	}

	if err != nil {
		app.logger.Error(ctx, "server stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
