package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ehfoto/backoffice/internal/settings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetConfig(ctx context.Context) (*settings.Config, error) {
	var cfg settings.Config

	err := s.db.QueryRowContext(ctx,
		`SELECT webhook_url, last_sync_date, auto_sync, updated_at FROM system_config WHERE id = 1`,
	).Scan(&cfg.WebhookURL, &cfg.LastSyncDate, &cfg.AutoSync, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, settings.ErrNotFound
		}

		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return &cfg, nil
}

func (s *Store) SaveConfig(ctx context.Context, cfg *settings.Config) error {
	query := `
		INSERT INTO system_config (id, webhook_url, last_sync_date, auto_sync, updated_at)
		VALUES (1, $1, $2, $3, NOW())
		ON CONFLICT (id) DO UPDATE
		SET webhook_url = EXCLUDED.webhook_url,
		    last_sync_date = EXCLUDED.last_sync_date,
		    auto_sync = EXCLUDED.auto_sync,
		    updated_at = NOW()
		RETURNING updated_at
	`

	if err := s.db.QueryRowContext(ctx, query, cfg.WebhookURL, cfg.LastSyncDate, cfg.AutoSync).Scan(&cfg.UpdatedAt); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	return nil
}
