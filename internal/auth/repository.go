package auth

import (
	"context"
	"database/sql"

	"authlink-server/internal/shared/database"
	"authlink-server/internal/shared/errors"
)

type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// ApproveExternalUsername marks a pending authentication request approved
// and records the provider subject as the external username. The
// approved = FALSE predicate guarantees that of two racing callbacks for the
// same access code at most one reports success.
func (r *Repository) ApproveExternalUsername(ctx context.Context, accessCode, username string) error {
	query := `
		UPDATE authentication_requests
		SET approved = TRUE, external_username = $1
		WHERE access_code = $2 AND approved = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, username, accessCode)
	if err != nil {
		return errors.WrapInternal("failed to approve authentication request", err)
	}

	return checkAffected(result)
}

// ApproveInternalUser is the Discord-path variant of ApproveExternalUsername,
// recording a resolved player id instead of a raw subject.
func (r *Repository) ApproveInternalUser(ctx context.Context, accessCode string, playerID int64) error {
	query := `
		UPDATE authentication_requests
		SET approved = TRUE, internal_user_id = $1
		WHERE access_code = $2 AND approved = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, playerID, accessCode)
	if err != nil {
		return errors.WrapInternal("failed to approve authentication request", err)
	}

	return checkAffected(result)
}

func (r *Repository) FindDiscordLink(ctx context.Context, discordID string) (*DiscordLink, error) {
	query := `
		SELECT discord_id, player_id
		FROM discord_links
		WHERE discord_id = $1
	`

	var link DiscordLink
	err := r.db.QueryRowContext(ctx, query, discordID).Scan(&link.DiscordID, &link.PlayerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("no discord link for subject")
		}
		return nil, errors.WrapInternal("failed to find discord link", err)
	}

	return &link, nil
}

func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to read affected row count", err)
	}
	if rows == 0 {
		return errors.NotFoundf("no pending authentication request for access code")
	}
	return nil
}
