package sdk

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWithPayload(payload string) Credential {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return Credential(header + "." + body + ".signature")
}

func TestDecodeClaims_Malformed(t *testing.T) {
	validBody := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"ADMIN"}`))

	cases := []struct {
		name  string
		token Credential
	}{
		{"empty", ""},
		{"one_segment", "abc"},
		{"two_segments", Credential("header." + validBody)},
		{"four_segments", Credential("a." + validBody + ".c.d")},
		{"invalid_base64", "header.!!!not-base64!!!.sig"},
		{"invalid_json", Credential("h." + base64.RawURLEncoding.EncodeToString([]byte(`{"role":`)) + ".s")},
		{"json_array", Credential("h." + base64.RawURLEncoding.EncodeToString([]byte(`["ADMIN"]`)) + ".s")},
		{"json_string", Credential("h." + base64.RawURLEncoding.EncodeToString([]byte(`"ADMIN"`)) + ".s")},
		{"json_null", Credential("h." + base64.RawURLEncoding.EncodeToString([]byte(`null`)) + ".s")},
		{"empty_payload", "h..s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Nil(t, DecodeClaims(tc.token))
			})
		})
	}
}

func TestDecodeClaims_ReadsRoleAndFields(t *testing.T) {
	claims := DecodeClaims(tokenWithPayload(`{"id":"u-1","sub":"u-1","email":"a@b.c","name":"Asha","role":"ADMIN","extra":true}`))
	require.NotNil(t, claims)

	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, true, claims.Raw["extra"])
}

func TestDecodeClaims_IgnoresHeaderAndSignature(t *testing.T) {
	body := base64.RawURLEncoding.EncodeToString([]byte(`{"role":"ADMIN"}`))
	claims := DecodeClaims(Credential("not-a-header." + body + "."))
	require.NotNil(t, claims)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestDecodeClaims_PaddedSegment(t *testing.T) {
	body := base64.URLEncoding.EncodeToString([]byte(`{"role":"USER"}`))
	claims := DecodeClaims(Credential("h." + body + ".s"))
	require.NotNil(t, claims)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestDecodeClaims_OddRoleShapeFailsLow(t *testing.T) {
	claims := DecodeClaims(tokenWithPayload(`{"role":{"name":"ADMIN"}}`))
	require.NotNil(t, claims, "payload is still a valid object")
	assert.Empty(t, claims.Role)
}

func TestDecodeClaims_MissingRole(t *testing.T) {
	claims := DecodeClaims(tokenWithPayload(`{"sub":"u-2"}`))
	require.NotNil(t, claims)
	assert.Empty(t, claims.Role)
}

func TestClaims_ExpiresAt(t *testing.T) {
	claims := DecodeClaims(tokenWithPayload(`{"exp":1893456000}`))
	exp, ok := claims.ExpiresAt()
	require.True(t, ok)
	assert.Equal(t, time.Unix(1893456000, 0).UTC(), exp.UTC())

	_, ok = DecodeClaims(tokenWithPayload(`{}`)).ExpiresAt()
	assert.False(t, ok)

	var missing *Claims
	_, ok = missing.ExpiresAt()
	assert.False(t, ok)
}
