package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyVerifier decides whether a normalised license key is genuine.
type KeyVerifier interface {
	Verify(key string) bool
}

// HashListVerifier accepts keys whose SHA-256 digest is in a known list.
type HashListVerifier struct {
	hashes map[string]struct{}
}

// NewHashListVerifier constructs a verifier from hex encoded digests.
func NewHashListVerifier(hashes ...string) *HashListVerifier {
	set := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			set[h] = struct{}{}
		}
	}

	return &HashListVerifier{hashes: set}
}

// Verify implements KeyVerifier.
func (v *HashListVerifier) Verify(key string) bool {
	_, ok := v.hashes[SHA256Hex(strings.TrimSpace(key))]
	return ok
}

// HMACVerifier accepts keys of the form INSPECTO-PRO-<BODY>-<SIG> where SIG
// is derived from BODY with a shared secret.
type HMACVerifier struct {
	secret []byte
}

const hmacSignatureLength = 8

// NewHMACVerifier constructs a verifier for secret.
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify implements KeyVerifier.
func (v *HMACVerifier) Verify(key string) bool {
	if len(v.secret) == 0 {
		return false
	}

	body, sig, ok := splitSignedKey(key)
	if !ok {
		return false
	}

	return hmac.Equal([]byte(sig), []byte(v.Sign(body)))
}

// Sign returns the signature group for body.
func (v *HMACVerifier) Sign(body string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(body))

	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil))[:hmacSignatureLength])
}

// Issue builds a full key for body.
func (v *HMACVerifier) Issue(body string) string {
	body = strings.ToUpper(strings.TrimSpace(body))
	return licenseKeyPrefix + body + "-" + v.Sign(body)
}

func splitSignedKey(key string) (string, string, bool) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if !strings.HasPrefix(key, licenseKeyPrefix) {
		return "", "", false
	}

	rest := strings.TrimPrefix(key, licenseKeyPrefix)

	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return "", "", false
	}

	return rest[:i], rest[i+1:], true
}

// SHA256Hex returns the lowercase hex SHA-256 digest of s.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
