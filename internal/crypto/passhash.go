// Package crypto implements server-side password hashing and verification.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (tuned for server-side hashing).
const (
	argonTime    uint32 = 3         // iterations
	argonMemory  uint32 = 64 * 1024 // 64 MB
	argonThreads uint8  = 1
	argonKeyLen  uint32 = 32
	saltLen             = 16

	// maxVerifyMemory caps the m= parameter accepted from a stored digest
	// (1 GiB in KiB units) so a crafted digest cannot drive allocation.
	maxVerifyMemory uint32 = 1 << 20
)

// MaxPasswordLen bounds accepted plaintext length in bytes.
const MaxPasswordLen = 256

var (
	// ErrEmptyPassword is returned when hashing an empty plaintext.
	ErrEmptyPassword = errors.New("empty password")
	// ErrPasswordTooLong is returned when the plaintext exceeds MaxPasswordLen bytes.
	ErrPasswordTooLong = errors.New("password too long")
)

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// HashPassword derives an Argon2id digest with a fresh random salt and returns
// it in PHC string form ($argon2id$v=19$m=...,t=...,p=...$salt$key), so the
// salt travels inside the digest.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if len(password) > MaxPasswordLen {
		return "", ErrPasswordTooLong
	}
	salt, err := RandBytes(saltLen)
	if err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword recomputes the digest using the salt and parameters embedded
// in encoded and compares in constant time. A malformed digest verifies as
// false, never panics.
func VerifyPassword(password, encoded string) bool {
	salt, key, mem, iters, threads, ok := decodeDigest(encoded)
	if !ok {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, iters, mem, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(got, key) == 1
}

// decodeDigest parses the PHC form produced by HashPassword.
func decodeDigest(encoded string) (salt, key []byte, mem, iters uint32, threads uint8, ok bool) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &threads); err != nil {
		return nil, nil, 0, 0, 0, false
	}
	// argon2.IDKey panics on zero rounds/parallelism and requires
	// memory >= 8*threads; such digests are malformed, not verifiable.
	if iters < 1 || threads < 1 || mem < 8*uint32(threads) || mem > maxVerifyMemory {
		return nil, nil, 0, 0, 0, false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, false
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, false
	}
	return salt, key, mem, iters, threads, true
}
