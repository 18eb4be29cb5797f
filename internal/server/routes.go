package server

import (
	"log/slog"
	"net/http"

	"authlink-server/internal/auth"
	authHandlers "authlink-server/internal/auth/handlers"
	serverHandlers "authlink-server/internal/server/handlers"
	"authlink-server/internal/shared/database"
)

type Routes struct {
	db          *database.DB
	authService *auth.Service
	oauthConfig *auth.OAuthConfig
}

func NewRoutes(db *database.DB, authService *auth.Service, oauthConfig *auth.OAuthConfig) *Routes {
	return &Routes{
		db:          db,
		authService: authService,
		oauthConfig: oauthConfig,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db)

	// The forums subject is directly usable as an external username, so the
	// handler gets no resolver; Discord subjects go through discord_links.
	forumsHandler := authHandlers.NewOAuthHandler(
		r.oauthConfig.ForumsProvider,
		r.authService,
		nil,
		r.oauthConfig.ForumsConfigured,
	)
	discordHandler := authHandlers.NewOAuthHandler(
		r.oauthConfig.DiscordProvider,
		r.authService,
		r.authService,
		r.oauthConfig.DiscordConfigured,
	)

	mux.Handle("/api/server/health", healthHandler)

	mux.HandleFunc("/forums/authenticate", forumsHandler.HandleAuthenticate)
	mux.HandleFunc("/forums/callback", forumsHandler.HandleCallback)
	mux.HandleFunc("/discord/authenticate", discordHandler.HandleAuthenticate)
	mux.HandleFunc("/discord/callback", discordHandler.HandleCallback)

	logger.Info("Routes configured successfully",
		"health_endpoint", "/api/server/health",
		"auth_endpoints", []string{
			"/forums/authenticate", "/forums/callback",
			"/discord/authenticate", "/discord/callback",
		},
	)

	return mux
}
