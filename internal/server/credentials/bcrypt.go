package credentials

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost matches the work factor accounts were historically
// created with.
const DefaultBcryptCost = 10

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher validates cost against bcrypt's accepted range.
// Zero selects DefaultBcryptCost.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range %d..%d", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: cost}, nil
}

// Hash fails for empty input. Input of any length is accepted; see prehash.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if err := checkPlaintext(plaintext); err != nil {
		return "", err
	}

	b, err := bcrypt.GenerateFromPassword(prehash(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), prehash(plaintext)) == nil
}

// prehash folds the plaintext into 44 bytes of base64 SHA-256 so bcrypt's
// 72 byte input limit never applies and no input byte is ignored.
func prehash(plaintext string) []byte {
	sum := sha256.Sum256([]byte(plaintext))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
