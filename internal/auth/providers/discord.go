package providers

import (
	"context"

	"golang.org/x/oauth2"
)

// DiscordEndpoint authenticates clients with HTTP basic auth; only
// grant_type, code and redirect_uri travel in the form body.
var DiscordEndpoint = oauth2.Endpoint{
	AuthURL:   "https://discord.com/api/oauth2/authorize",
	TokenURL:  "https://discord.com/api/oauth2/token",
	AuthStyle: oauth2.AuthStyleInHeader,
}

// DiscordProvider forwards the caller token as state without adding a nonce;
// Discord handles its own replay protection.
type DiscordProvider struct {
	config *oauth2.Config
}

func NewDiscordProvider(config *oauth2.Config) *DiscordProvider {
	return &DiscordProvider{config: config}
}

func (p *DiscordProvider) Name() string { return "discord" }

func (p *DiscordProvider) AuthCodeURL(token string) string {
	return p.config.AuthCodeURL(token)
}

func (p *DiscordProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return exchange(ctx, p.Name(), p.config, code)
}
