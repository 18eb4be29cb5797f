package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"golang.org/x/oauth2"
)

// Provider is the capability surface shared by all identity providers. The
// two variants differ only in configuration data: the forums provider embeds
// a fresh nonce in the authorization URL and sends its client secret as form
// fields, Discord forwards the caller token as state alone and authenticates
// against the token endpoint with HTTP basic auth.
type Provider interface {
	Name() string
	AuthCodeURL(token string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// ErrNoResponse marks an exchange failure where the token endpoint could not
// be reached at all, as opposed to an unusable response body.
var ErrNoResponse = errors.New("no response from token endpoint")

// IsNoResponse reports whether err is a transport-level exchange failure.
func IsNoResponse(err error) bool {
	return errors.Is(err, ErrNoResponse)
}

func exchange(ctx context.Context, name string, config *oauth2.Config, code string) (*oauth2.Token, error) {
	logger := slog.With("provider", name, "operation", "exchange_code")
	logger.Debug("Exchanging authorization code at token endpoint")

	token, err := config.Exchange(ctx, code)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			logger.Error("Token endpoint unreachable", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
		}
		logger.Error("Token endpoint returned an unusable response", "error", err)
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	logger.Debug("Successfully exchanged code for token")
	return token, nil
}
