package main

import (
	"log"
	"log/slog"
	"net/http"

	"authlink-server/internal/auth"
	"authlink-server/internal/middleware"
	"authlink-server/internal/server"
	"authlink-server/internal/shared/config"
	"authlink-server/internal/shared/database"
	"authlink-server/internal/shared/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Init(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, slog.With("service", "auth"))
	oauthConfig := auth.InitOAuth(cfg)

	routes := server.NewRoutes(db, authService, oauthConfig)
	mux := routes.Setup()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	corsMiddleware := middleware.NewCORS(cfg)
	handler := corsMiddleware.Middleware(rateLimiter.Middleware(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	slog.Info("Authentication link server starting",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
	)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed:", err)
	}
}
