// Package utils provides helpers for session tokens, password hashing and
// share-token generation.
package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by ParseSessionToken for any credential that
// cannot be accepted: absent, malformed, wrong signature or expired. Callers
// get no finer detail; every failure mode means "authenticate again".
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken is a signed, self-contained credential. The raw JWT travels
// in the Authorization header; Exp is returned to clients so they know when
// to re-authenticate. There is no server-side session record and no
// revocation: expiry is the only way an issued token stops being valid
// short of rotating the signing secret.
type SessionToken struct {
	Token string    `json:"token"`
	Exp   time.Time `json:"expires"`
}

// SessionClaims is the identity a verified token carries. Role travels
// inside the token and is trusted for the token's lifetime; a role change on
// the account does not take effect for already-issued tokens until they
// expire. That staleness window is an accepted cost of stateless
// verification, not a bug.
type SessionClaims struct {
	UserID uint64
	Role   string
}

// NewSessionToken builds and signs an HS256 JWT for a user. The expiry is
// issue time plus ttlDays. Claims: sub (user id), role, exp, iat.
func NewSessionToken(secret string, userID uint64, role string, ttlDays int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	})
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken validates a raw token's signature and expiry and returns
// the embedded claims. It never consults storage.
func ParseSessionToken(raw, secret string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidToken
	}

	var out SessionClaims
	switch sub := claims["sub"].(type) {
	case float64:
		// JSON numbers decode as float64.
		out.UserID = uint64(sub)
	case string:
		n, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return SessionClaims{}, ErrInvalidToken
		}
		out.UserID = n
	default:
		return SessionClaims{}, ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	out.Role = role
	return out, nil
}
