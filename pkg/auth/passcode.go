package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CodeVerifier validates the shared moderator passcode. Either Plain or
// BcryptHash is configured; the hash takes precedence so deployments can keep
// the plaintext code out of the environment entirely.
type CodeVerifier struct {
	plain      string
	bcryptHash string
}

// NewCodeVerifier builds a verifier from the configured passcode and/or its
// bcrypt hash.
func NewCodeVerifier(plain, bcryptHash string) *CodeVerifier {
	return &CodeVerifier{plain: plain, bcryptHash: bcryptHash}
}

// Verify reports whether the supplied code matches the configured passcode.
// An empty supplied code never matches.
func (v *CodeVerifier) Verify(code string) bool {
	if code == "" {
		return false
	}
	if v.bcryptHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.bcryptHash), []byte(code)) == nil
	}
	if v.plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(v.plain), []byte(code)) == 1
}
