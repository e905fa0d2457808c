// Package credentials turns plaintext passwords into storable one-way
// hashes and checks candidates against them.
package credentials

import (
	"fmt"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/server/config"
)

// Hasher hashes and verifies secrets. Hash is salted, so two calls with the
// same plaintext produce different outputs; Verify accepts either.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// New returns the Hasher selected by cfg.HashAlgorithm.
func New(cfg *config.Config) (Hasher, error) {
	switch cfg.HashAlgorithm {
	case config.HashBcrypt, "":
		return NewBcryptHasher(cfg.BcryptCost)
	case config.HashArgon2id:
		return NewArgon2idHasher(DefaultArgon2idParams()), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", cfg.HashAlgorithm)
	}
}

func checkPlaintext(plaintext string) error {
	if plaintext == "" {
		return common.ErrorEmptySecret
	}
	return nil
}
