// Package common defines shared constants and sentinel errors used across
// the devconnector server and client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Credential errors.
	ErrorEmptySecret = errors.New("empty secret")
)
