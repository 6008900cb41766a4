// Package auth implements the admin credential checks: the shared moderator
// passcode carried on the wire for compatibility, and the signed expiring
// session tokens issued in exchange for it.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

const tokenSubject = "admin"

// ErrExpired is returned for a structurally valid token past its expiry.
var ErrExpired = errors.New("token expired")

// CreateAdminToken issues a signed admin session token valid for ttl.
func CreateAdminToken(secret []byte, ttl time.Duration) string {
	payload := tokenSubject + ":" + strconv.FormatInt(time.Now().Add(ttl).Unix(), 10)
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(payload)) + "." + sig
}

// VerifyAdminToken checks the token signature and expiry.
func VerifyAdminToken(token string, secret []byte) error {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return errors.New("invalid signature")
	}

	fields := strings.SplitN(string(payload), ":", 2)
	if len(fields) != 2 || fields[0] != tokenSubject {
		return errors.New("invalid token payload")
	}
	expiry, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return errors.New("invalid token payload")
	}
	if time.Now().Unix() >= expiry {
		return ErrExpired
	}
	return nil
}

const minSecretLen = 32

// SecretBytes derives the token signing key from a config string,
// zero-padding to a 32-byte minimum.
func SecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
