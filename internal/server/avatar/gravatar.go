// Package avatar derives a display-image reference from an email address.
// Resolution only builds a URL; nothing is fetched.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

// Resolver builds Gravatar URLs. The zero value is not usable; start from
// NewResolver.
type Resolver struct {
	// Scheme is "", "http" or "https". Empty yields a protocol-relative URL.
	Scheme  string
	Host    string
	Size    int
	Rating  string
	Default string
}

// NewResolver returns the account policy: 200px, "pg" rating so explicit
// images are filtered out, and the generic "mm" silhouette as fallback.
func NewResolver() *Resolver {
	return &Resolver{
		Host:    "www.gravatar.com",
		Size:    200,
		Rating:  "pg",
		Default: "mm",
	}
}

// Resolve is deterministic: the same email always yields the same URL.
// The email is trimmed and lower-cased before hashing, as Gravatar expects.
func (r *Resolver) Resolve(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	q := url.Values{}
	if r.Size > 0 {
		q.Set("s", strconv.Itoa(r.Size))
	}
	if r.Rating != "" {
		q.Set("r", r.Rating)
	}
	if r.Default != "" {
		q.Set("d", r.Default)
	}

	u := url.URL{
		Scheme:   r.Scheme,
		Host:     r.Host,
		Path:     "/avatar/" + hex.EncodeToString(sum[:]),
		RawQuery: q.Encode(),
	}
	return u.String()
}
