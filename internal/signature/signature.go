// Package signature implements webhook payload authentication for the
// Messenger Platform. Callbacks carry an X-Hub-Signature header with an
// HMAC-SHA1 of the raw body keyed by the app secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // SHA-1 is mandated by the platform's signature scheme.
	"encoding/hex"
	"strings"
)

// Prefix is the scheme prefix the platform puts in front of the hex digest.
const Prefix = "sha1="

// Sign computes the signature header value for a payload.
// It is the inverse of Verify and is used by tests and local tooling.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return Prefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether header is a valid signature of body under secret.
// The comparison is constant time. Malformed or missing headers are simply
// unverified; Verify never panics or errors on garbage input.
func Verify(body []byte, header, secret string) bool {
	if secret == "" {
		return false
	}

	digest, ok := strings.CutPrefix(header, Prefix)
	if !ok {
		return false
	}

	provided, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}
