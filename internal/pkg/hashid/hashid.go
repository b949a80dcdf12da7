package hashid

import (
	"encoding/hex"
	"regexp"
	"strings"

	"golang.org/x/crypto/blake2b"

	"storefront-payments/internal/pkg/errs"
)

// Length is the number of hex characters in a public hash.
const Length = 16

var (
	ErrEmptyKey    = errs.New("public hash key is empty")
	ErrInvalidHash = errs.New("invalid public hash")
)

var pattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

type Hasher struct {
	key []byte
}

func NewHasher(key string) (*Hasher, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	k := []byte(key)
	// blake2b accepts keys up to 64 bytes
	if len(k) > blake2b.Size {
		sum := blake2b.Sum512(k)
		k = sum[:]
	}
	return &Hasher{key: k}, nil
}

// Derive returns a short keyed digest of the given parts. The same parts always yield the same hash.
func (h *Hasher) Derive(parts ...string) string {
	mac, err := blake2b.New(Length/2, h.key)
	if err != nil {
		// unreachable: size and key length are validated in NewHasher
		panic(err)
	}
	mac.Write([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(mac.Sum(nil))
}

// Valid reports whether s is shaped like a public hash. Free text never reaches a lookup.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

func Parse(s string) (string, error) {
	if !Valid(s) {
		return "", ErrInvalidHash
	}
	return s, nil
}
