package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// ShareTokenLen is the textual length of a share token: 16 bytes of entropy
// hex-encoded to 32 characters.
const ShareTokenLen = 32

// NewShareToken returns an unguessable token for anonymous read access to a
// single event. Possession of the token is the whole authorization factor,
// so the only requirement on the generator is a cryptographically strong
// source. Uniqueness is not guaranteed here; the events table enforces it
// with a unique index and callers retry on collision.
func NewShareToken() (string, error) {
	buf := make([]byte, ShareTokenLen/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
