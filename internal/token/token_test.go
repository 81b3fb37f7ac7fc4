package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk/internal/common"
)

// makeToken builds a signed HS256 token with the given claims. The signature
// is irrelevant to the codec but keeps the wire shape realistic.
func makeToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestDecode_ValidToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	s := makeToken(t, jwt.MapClaims{"exp": float64(exp), "sub": "u1"})

	p, err := Decode(s)
	require.NoError(t, err)

	got, ok := p.ExpiresAt()
	require.True(t, ok)
	assert.Equal(t, exp, got.Unix())

	sub, ok := p.Claim("sub")
	require.True(t, ok)
	assert.Equal(t, "u1", sub)
}

func TestDecode_MultiByteClaims(t *testing.T) {
	s := makeToken(t, jwt.MapClaims{"name": "Jānis Bērziņš"})

	p, err := Decode(s)
	require.NoError(t, err)

	name, ok := p.Claim("name")
	require.True(t, ok)
	assert.Equal(t, "Jānis Bērziņš", name)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"no separator", "justonesegment"},
		{"empty payload segment", "header..sig"},
		{"payload is not base64", "header.???not-base64???.sig"},
		{"payload is not json", "header." + base64.RawURLEncoding.EncodeToString([]byte("plain text")) + ".sig"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrMalformedToken), "want ErrMalformedToken, got %v", err)
		})
	}
}

func TestExpiredAt(t *testing.T) {
	now := time.Now()

	past := makeToken(t, jwt.MapClaims{"exp": float64(now.Add(-time.Hour).Unix())})
	future := makeToken(t, jwt.MapClaims{"exp": float64(now.Add(time.Hour).Unix())})
	noExp := makeToken(t, jwt.MapClaims{"sub": "u1"})

	pPast, err := Decode(past)
	require.NoError(t, err)
	assert.True(t, pPast.ExpiredAt(now))

	pFuture, err := Decode(future)
	require.NoError(t, err)
	assert.False(t, pFuture.ExpiredAt(now))

	pNone, err := Decode(noExp)
	require.NoError(t, err)
	assert.False(t, pNone.ExpiredAt(now), "token without exp must not count as expired")
}

func TestDecode_PaddedSegment(t *testing.T) {
	// Some issuers pad the payload segment; the codec must accept both forms.
	payload := base64.URLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, time.Now().Unix())))
	p, err := Decode("h." + payload + ".s")
	require.NoError(t, err)

	_, ok := p.ExpiresAt()
	assert.True(t, ok)
}
