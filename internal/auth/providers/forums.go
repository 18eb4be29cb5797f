package providers

import (
	"context"

	"golang.org/x/oauth2"
)

// ForumsProvider is the generic OIDC provider the game forums run. Its
// client secret travels as form fields on the token request, so the endpoint
// is expected to carry oauth2.AuthStyleInParams.
type ForumsProvider struct {
	config *oauth2.Config
}

func NewForumsProvider(config *oauth2.Config) *ForumsProvider {
	return &ForumsProvider{config: config}
}

func (p *ForumsProvider) Name() string { return "forums" }

func (p *ForumsProvider) AuthCodeURL(token string) string {
	return p.config.AuthCodeURL(token, oauth2.SetAuthURLParam("nonce", newNonce()))
}

func (p *ForumsProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return exchange(ctx, p.Name(), p.config, code)
}
