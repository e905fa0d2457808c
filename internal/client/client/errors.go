package client

import (
	"errors"
	"strings"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrServer      = errors.New("server error")
)

// RejectedError is returned when the server refuses a registration because
// of the input or an existing account. Messages are meant for the user.
type RejectedError struct {
	Conflict bool
	Messages []string
}

func (e *RejectedError) Error() string {
	return strings.Join(e.Messages, "\n")
}
