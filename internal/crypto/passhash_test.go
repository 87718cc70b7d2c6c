package crypto

import (
	"bytes"
	"strings"
	"testing"
)

func TestRandBytes_LengthAndUniqueness(t *testing.T) {
	t.Parallel()

	const n = 64
	a, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	if len(a) != n {
		t.Fatalf("len=%d, want=%d", len(a), n)
	}
	b, err := RandBytes(n)
	if err != nil {
		t.Fatalf("RandBytes(2): %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("two subsequent RandBytes(%d) are equal — looks non-random", n)
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if h1 == h2 {
		t.Fatalf("same password hashed twice produced identical digests — salt not random")
	}
	if !strings.HasPrefix(h1, "$argon2id$") {
		t.Fatalf("unexpected digest format: %q", h1)
	}
}

func TestHashPassword_InputBounds(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword(""); err != ErrEmptyPassword {
		t.Fatalf("empty password: got %v, want ErrEmptyPassword", err)
	}
	if _, err := HashPassword(strings.Repeat("x", MaxPasswordLen+1)); err != ErrPasswordTooLong {
		t.Fatalf("long password: got %v, want ErrPasswordTooLong", err)
	}
	if _, err := HashPassword(strings.Repeat("x", MaxPasswordLen)); err != nil {
		t.Fatalf("max-length password should hash: %v", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	const pw = "correct horse battery staple"
	digest, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword(pw, digest) {
		t.Fatalf("expected true for correct password")
	}
	if VerifyPassword("wrong", digest) {
		t.Fatalf("expected false for wrong password")
	}
	if VerifyPassword("", digest) {
		t.Fatalf("expected false for empty password")
	}

	other, err := HashPassword("another password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if VerifyPassword(pw, other) {
		t.Fatalf("expected false against a different password's digest")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{
		"",
		"not-a-digest",
		"$argon2id$v=19$m=65536,t=3,p=1$short",           // missing key part
		"$argon2id$v=19$m=65536,t=3,p=1$!!!$AAAA",        // bad salt base64
		"$argon2id$v=19$m=65536,t=3,p=1$AAAA$!!!",        // bad key base64
		"$argon2i$v=19$m=65536,t=3,p=1$AAAA$AAAA",        // wrong variant
		"$argon2id$v=18$m=65536,t=3,p=1$AAAA$AAAA",       // wrong version
		"$argon2id$v=19$m=banana,t=3,p=1$AAAA$AAAA",      // bad params
		"$argon2id$v=19$m=65536,t=3,p=1$AAAA$AAAA$extra", // trailing part
		"$argon2id$v=19$m=65536,t=0,p=1$AAAA$AAAA",       // zero rounds
		"$argon2id$v=19$m=65536,t=3,p=0$AAAA$AAAA",       // zero parallelism
		"$argon2id$v=19$m=4,t=3,p=1$AAAA$AAAA",           // memory below 8*threads
		"$argon2id$v=19$m=4294967295,t=3,p=1$AAAA$AAAA",  // absurd memory
	} {
		if VerifyPassword("pw", digest) {
			t.Fatalf("malformed digest %q verified as true", digest)
		}
	}
}
