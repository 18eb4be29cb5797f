package auth

import (
	"encoding/json"
	"log/slog"
	"strings"
	"unicode/utf8"

	"authlink-server/internal/shared/errors"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims is the claim set carried in the identity token payload.
// Only Subject is consumed downstream; the remaining claims are accepted so
// that a fully populated token deserializes cleanly.
type IDTokenClaims struct {
	Issuer   string   `json:"iss"`
	Audience []string `json:"aud"`
	Subject  string   `json:"sub"`
	IssuedAt int64    `json:"iat"`
	Expiry   int64    `json:"exp"`
	AuthTime int64    `json:"auth_time"`
	AtHash   string   `json:"at_hash"`

	Email         string   `json:"email,omitempty"`
	EmailVerified bool     `json:"email_verified,omitempty"`
	Groups        []string `json:"groups,omitempty"`
	JTI           string   `json:"jti,omitempty"`
	Name          string   `json:"name,omitempty"`
	Nonce         string   `json:"nonce,omitempty"`
	Picture       string   `json:"picture,omitempty"`
	RequestedAt   int64    `json:"rat,omitempty"`
}

func (c *IDTokenClaims) hasRequiredClaims() bool {
	return c.Issuer != "" &&
		len(c.Audience) > 0 &&
		c.Subject != "" &&
		c.AtHash != "" &&
		c.IssuedAt != 0 &&
		c.Expiry != 0 &&
		c.AuthTime != 0
}

// Providers are not uniform about payload padding, so the parser accepts
// both padded and unpadded base64url segments.
var idTokenParser = jwt.NewParser(jwt.WithPaddingAllowed())

// DecodeIDToken extracts and deserializes the payload segment of a compact
// identity token. The signature is deliberately not verified: the token
// arrives over the provider's direct TLS response to this process, and
// verifying it would add a key-distribution requirement to the configuration
// surface. Every failure carries the exact message shown to the end user.
func DecodeIDToken(raw string) (*IDTokenClaims, error) {
	logger := slog.With("component", "idtoken")

	segments := strings.Split(raw, ".")
	if len(segments) < 2 {
		logger.Warn("Identity token has no payload segment", "segments", len(segments))
		return nil, errors.Validation("Could not retrieve user from response.")
	}

	payload, err := idTokenParser.DecodeSegment(segments[1])
	if err != nil {
		logger.Warn("Identity token payload is not valid base64url", "error", err)
		return nil, errors.Validation("Could not decode user from response.")
	}

	if !utf8.Valid(payload) {
		logger.Warn("Identity token payload is not valid UTF-8")
		return nil, errors.Validation("An error occured")
	}

	var claims IDTokenClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		logger.Warn("Identity token payload is not a valid claim set", "error", err)
		return nil, errors.Validation("Unable to parse user from response.")
	}

	if !claims.hasRequiredClaims() {
		logger.Warn("Identity token claim set is missing required claims",
			"has_subject", claims.Subject != "",
			"has_issuer", claims.Issuer != "")
		return nil, errors.Validation("Unable to parse user from response.")
	}

	return &claims, nil
}
