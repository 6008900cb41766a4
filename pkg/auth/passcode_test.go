package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCodeVerifier_Plain(t *testing.T) {
	v := NewCodeVerifier("HELP2025", "")

	if !v.Verify("HELP2025") {
		t.Error("expected configured code to match")
	}
	if v.Verify("WRONG") {
		t.Error("expected wrong code to fail")
	}
	if v.Verify("") {
		t.Error("expected empty code to fail")
	}
}

func TestCodeVerifier_EmptyConfigurationMatchesNothing(t *testing.T) {
	v := NewCodeVerifier("", "")

	if v.Verify("") || v.Verify("anything") {
		t.Error("unconfigured verifier must reject every code")
	}
}

func TestCodeVerifier_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("HELP2025"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	v := NewCodeVerifier("", string(hash))

	if !v.Verify("HELP2025") {
		t.Error("expected hashed code to match")
	}
	if v.Verify("WRONG") {
		t.Error("expected wrong code to fail against the hash")
	}
}

func TestCodeVerifier_HashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("HASHED"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	v := NewCodeVerifier("PLAIN", string(hash))

	if !v.Verify("HASHED") {
		t.Error("expected the hashed code to match when both are configured")
	}
	if v.Verify("PLAIN") {
		t.Error("expected the plain code to be ignored when a hash is configured")
	}
}
