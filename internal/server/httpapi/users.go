package httpapi

import (
	"errors"

	"github.com/dmitrijs2005/devconnector/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

const (
	serverErrorBody    = "Server Error"
	invalidBodyMessage = "invalid request body"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorItem struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors []errorItem `json:"errors"`
}

func clientError(c *fiber.Ctx, messages ...string) error {
	body := errorsResponse{Errors: make([]errorItem, 0, len(messages))}
	for _, m := range messages {
		body.Errors = append(body.Errors, errorItem{Message: m})
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// registerUser handles POST /api/users.
func (s *HTTPServer) registerUser(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return clientError(c, invalidBodyMessage)
	}

	res, err := s.registrations.Register(c.UserContext(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var ve *services.ViolationError
		if errors.As(err, &ve) {
			return clientError(c, ve.Messages()...)
		}
		s.logger.Error(c.UserContext(), "register failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString(serverErrorBody)
	}

	return c.JSON(tokenResponse{Token: res.Token})
}
