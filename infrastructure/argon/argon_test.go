package argon

import (
	"strings"
	"testing"
)

func TestCreateHash_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := CreateHash("correct horse battery staple", DefaultParams)
	if err != nil {
		t.Fatalf("create hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash encoding: %q", hash)
	}

	ok, err := ComparePasswordAndHash("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching password to verify")
	}

	ok, err = ComparePasswordAndHash("wrong password", hash)
	if err != nil {
		t.Fatalf("compare wrong password: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatched password to fail verification")
	}
}

func TestCreateHash_EmptyPassword(t *testing.T) {
	t.Parallel()

	if _, err := CreateHash("   ", nil); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestComparePasswordAndHash_MalformedHash(t *testing.T) {
	t.Parallel()

	if _, err := ComparePasswordAndHash("pw", "$argon2id$bogus"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
	if _, err := ComparePasswordAndHash("pw", "$scrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"); err == nil {
		t.Fatalf("expected error for wrong variant")
	}
}
