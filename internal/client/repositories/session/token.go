package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read from a JWT bearer token without
// the signing key.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Inspect parses token as a JWT without verifying the signature. It returns
// false for opaque (non-JWT) tokens. The server stays the only authority on
// validity; this is for display and early warnings only.
func Inspect(token string) (TokenInfo, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, false
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}

// Expired reports whether the token carries an exp claim in the past.
// Opaque tokens and tokens without exp never count as expired.
func (s Session) Expired(now time.Time) bool {
	info, ok := Inspect(s.Token)
	if !ok || info.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(info.ExpiresAt)
}
