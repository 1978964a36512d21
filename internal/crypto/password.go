package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"cashbox/internal/domain"
)

const (
	SaltBytes         = 16
	DefaultIterations = 65536
	KeyBits           = 256
)

// Hasher derives password hashes with PBKDF2-HMAC-SHA-256.
//
// Salts and hashes are exchanged as standard base64 text so they can be stored
// verbatim in users.txt.
type Hasher struct {
	iterations int
	keyLen     int
}

// HasherOption customises a Hasher.
type HasherOption func(*Hasher)

// WithIterations overrides the PBKDF2 iteration count. Only tests should
// lower it; stored hashes are tied to the count they were made with.
func WithIterations(n int) HasherOption {
	return func(h *Hasher) {
		if n > 0 {
			h.iterations = n
		}
	}
}

// NewHasher returns a Hasher using 65536 iterations and a 256-bit key.
func NewHasher(opts ...HasherOption) *Hasher {
	h := &Hasher{iterations: DefaultIterations, keyLen: KeyBits / 8}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GenerateSalt returns 16 fresh random bytes, base64 encoded.
func (h *Hasher) GenerateSalt() (string, error) {
	var salt [SaltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", fmt.Errorf("crypto: read salt: %w", err)
	}
	return B64(salt[:]), nil
}

// Hash derives the encoded key for password under the encoded salt.
func (h *Hasher) Hash(password []byte, salt string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", fmt.Errorf("crypto: decode salt: %w", err)
	}
	key := pbkdf2.Key(password, raw, h.iterations, h.keyLen, sha256.New)
	defer Wipe(key)
	return B64(key), nil
}

// Verify reports whether password hashes to storedHash under salt.
//
// A derivation failure yields false, the same outcome as a wrong password.
func (h *Hasher) Verify(storedHash string, password []byte, salt string) bool {
	computed, err := h.Hash(password, salt)
	if err != nil {
		computed = ""
	}
	ok := constantTimeEqual([]byte(storedHash), []byte(computed))
	return ok && err == nil
}

// constantTimeEqual compares a and b without returning early. The length
// difference is folded into the accumulator so unequal lengths still walk the
// shorter input in full.
func constantTimeEqual(a, b []byte) bool {
	diff := len(a) ^ len(b)
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		diff |= int(a[i] ^ b[i])
	}
	return diff == 0
}

// Compile-time assertion that Hasher implements domain.PasswordHasher.
var _ domain.PasswordHasher = (*Hasher)(nil)
