// Package httpapi serves the registration API over HTTP (fiber), together
// with health and metrics endpoints.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/logging"
	"github.com/dmitrijs2005/devconnector/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const shutdownTimeout = 5 * time.Second

// Registrar is the part of the registration service the transport needs.
type Registrar interface {
	Register(ctx context.Context, in services.RegisterInput) (*services.RegisterResult, error)
}

type HTTPServer struct {
	address       string
	registrations Registrar
	metrics       http.Handler
	logger        logging.Logger
	app           *fiber.App
}

// NewHTTPServer builds the fiber app. metrics may be nil, in which case
// /metrics is not served.
func NewHTTPServer(a string, l logging.Logger, r Registrar, metrics http.Handler) *HTTPServer {
	s := &HTTPServer{
		address:       a,
		registrations: r,
		metrics:       metrics,
		logger:        l.With("module", "http_server"),
	}
	s.app = s.newApp()
	return s
}

func (s *HTTPServer) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	app.Use(requestid.New(requestid.Config{Header: common.RequestIDHeaderName}))
	app.Use(recover.New())
	app.Use(s.logRequest)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	if s.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(s.metrics))
	}

	api := app.Group("/api")
	api.Post("/users", s.registerUser)

	return app
}

// App exposes the fiber app for in-process testing.
func (s *HTTPServer) App() *fiber.App { return s.app }

func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown", "error", err)
		}
		// covers a shutdown that races ahead of Listener
		_ = listen.Close()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := s.app.Listener(listen); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	s.logger.Info(c.UserContext(), "http",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"request_id", c.GetRespHeader(common.RequestIDHeaderName),
		"duration", time.Since(start))
	return err
}

// errorHandler keeps fiber's status for its own errors and turns anything
// else into an opaque 500.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).SendString(fe.Message)
	}
	s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).SendString(serverErrorBody)
}
