package sdk

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mitchellh/mapstructure"
)

// Claims is the unverified payload of a Credential.
//
// The signature is never checked, so Claims are advisory: they drive what the
// client shows and where it navigates, never whether an operation is allowed.
// The API re-validates every request on its own.
type Claims struct {
	Role    string `mapstructure:"role"`
	Subject string `mapstructure:"sub"`
	UserID  string `mapstructure:"id"`
	Email   string `mapstructure:"email"`
	Name    string `mapstructure:"name"`

	// Raw holds every decoded field, including ones not mapped above.
	Raw jwt.MapClaims `mapstructure:"-"`
}

// ExpiresAt returns the exp claim, if present. Display only.
func (c *Claims) ExpiresAt() (time.Time, bool) {
	if c == nil {
		return time.Time{}, false
	}
	exp, err := c.Raw.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeClaims extracts the payload segment of a three-segment token.
// It returns nil on any failure (wrong segment count, bad base64, payload not a
// JSON object) and never returns an error. Header and signature are ignored.
func DecodeClaims(token Credential) *Claims {
	parts := strings.Split(string(token), ".")
	if len(parts) != 3 {
		return nil
	}

	payload, err := segmentParser.DecodeSegment(parts[1])
	if err != nil {
		return nil
	}

	var raw jwt.MapClaims
	if err := json.Unmarshal(payload, &raw); err != nil || raw == nil {
		return nil
	}

	claims := &Claims{Raw: raw}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           claims,
	})
	if err != nil {
		return claims
	}
	if err := decoder.Decode(map[string]any(raw)); err != nil {
		// A field of the wrong shape leaves the typed view empty: no role, lowest privilege.
		return &Claims{Raw: raw}
	}
	return claims
}
