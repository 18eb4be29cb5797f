package auth

import (
	"log/slog"

	"authlink-server/internal/auth/providers"
	"authlink-server/internal/shared/config"

	"golang.org/x/oauth2"
)

type OAuthConfig struct {
	ForumsConfig      *oauth2.Config
	DiscordConfig     *oauth2.Config
	ForumsProvider    *providers.ForumsProvider
	DiscordProvider   *providers.DiscordProvider
	ForumsConfigured  bool
	DiscordConfigured bool
}

func InitOAuth(cfg *config.Config) *OAuthConfig {
	logger := slog.With("component", "oauth", "operation", "init")
	logger.Debug("Initializing OAuth configurations")

	forumsConfig := &oauth2.Config{
		ClientID:     cfg.OAuth.Forums.ClientID,
		ClientSecret: cfg.OAuth.Forums.ClientSecret,
		RedirectURL:  cfg.OAuth.Forums.RedirectURL,
		Scopes:       cfg.OAuth.Forums.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.OAuth.Forums.AuthURL,
			TokenURL:  cfg.OAuth.Forums.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	discordConfig := &oauth2.Config{
		ClientID:     cfg.OAuth.Discord.ClientID,
		ClientSecret: cfg.OAuth.Discord.ClientSecret,
		RedirectURL:  cfg.OAuth.Discord.RedirectURL,
		Scopes:       cfg.OAuth.Discord.Scopes,
		Endpoint:     providers.DiscordEndpoint,
	}

	forumsConfigured := cfg.ForumsOAuthConfigured()
	discordConfigured := cfg.DiscordOAuthConfigured()

	logger.Info("OAuth configuration completed",
		"server_url", cfg.Server.URL,
		"forums_configured", forumsConfigured,
		"discord_configured", discordConfigured,
		"forums_redirect", forumsConfig.RedirectURL,
		"discord_redirect", discordConfig.RedirectURL,
	)

	if !forumsConfigured {
		logger.Warn("Forums OAuth not configured - missing client credentials or endpoints")
	}
	if !discordConfigured {
		logger.Warn("Discord OAuth not configured - missing client credentials")
	}

	return &OAuthConfig{
		ForumsConfig:      forumsConfig,
		DiscordConfig:     discordConfig,
		ForumsProvider:    providers.NewForumsProvider(forumsConfig),
		DiscordProvider:   providers.NewDiscordProvider(discordConfig),
		ForumsConfigured:  forumsConfigured,
		DiscordConfigured: discordConfigured,
	}
}
