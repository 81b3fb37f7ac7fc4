// Package token decodes a bearer token's payload without verifying its
// signature, so the client can inspect the embedded expiry locally.
//
// This decode establishes no trust whatsoever: it only saves a doomed network
// call when the token is already expired. The server's acceptance of the
// token on the profile-fetch call is the authoritative validity check.
package token

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobdesk/internal/common"
)

// Payload is the decoded claims section of a bearer token. It is a transient
// value: consumed immediately for the expiry check, never stored.
type Payload struct {
	claims jwt.MapClaims
}

// Decode splits the token on "." and decodes the second (payload) segment
// from base64url into a JSON claims map. Any failure, a missing segment, bad
// base64 or bad JSON, yields common.ErrMalformedToken; a raw parse error is
// never propagated.
func Decode(tokenString string) (Payload, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) < 2 || parts[1] == "" {
		return Payload{}, common.ErrMalformedToken
	}

	// Padding is tolerated so both raw and padded base64url segments decode.
	seg, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return Payload{}, common.ErrMalformedToken
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(seg, &claims); err != nil {
		return Payload{}, common.ErrMalformedToken
	}

	return Payload{claims: claims}, nil
}

// ExpiresAt returns the exp claim as a time, and whether the claim exists.
func (p Payload) ExpiresAt() (time.Time, bool) {
	exp, err := p.claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ExpiredAt reports whether the token's exp claim is before now. Tokens
// without an exp claim never count as locally expired; the server decides.
func (p Payload) ExpiredAt(now time.Time) bool {
	exp, ok := p.ExpiresAt()
	if !ok {
		return false
	}
	return exp.Before(now)
}

// Claim returns a raw claim value by name.
func (p Payload) Claim(name string) (any, bool) {
	v, ok := p.claims[name]
	return v, ok
}
