package credentials

import (
	"strings"
	"testing"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	hash, err := Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if !Verify("pw123456", hash) {
		t.Error("Verify should accept the original password")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if Verify("pw1234567", hash) {
		t.Error("Verify should reject a wrong password")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	for _, stored := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if Verify("pw123456", stored) {
			t.Errorf("Verify should reject malformed stored hash %q", stored)
		}
	}
}

func TestHash_Salted(t *testing.T) {
	h1, err := Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	h2, err := Hash("pw123456")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (salt)")
	}
	if !strings.HasPrefix(h1, "$2") {
		t.Errorf("unexpected hash format: %q", h1)
	}
}
