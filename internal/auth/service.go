package auth

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing auth service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ApproveExternalUsername(ctx context.Context, accessCode, username string) error {
	return s.repo.ApproveExternalUsername(ctx, accessCode, username)
}

func (s *Service) ApproveInternalUser(ctx context.Context, accessCode string, playerID int64) error {
	return s.repo.ApproveInternalUser(ctx, accessCode, playerID)
}

// ResolveSubject translates a Discord subject identifier into the internal
// player id it was linked to in-game.
func (s *Service) ResolveSubject(ctx context.Context, subject string) (int64, error) {
	link, err := s.repo.FindDiscordLink(ctx, subject)
	if err != nil {
		return 0, err
	}
	return link.PlayerID, nil
}
