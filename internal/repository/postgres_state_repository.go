package repository

import (
	"context"
	"errors"
	"fmt"

	"lines-be/pkg/database"

	"github.com/jackc/pgx/v5"
)

// PostgresStateRepository stores state rows in the user_state table
type PostgresStateRepository struct {
	db             *database.PostgresDB
	installationID string
}

// NewPostgresStateRepository creates a repository scoped to one installation
func NewPostgresStateRepository(db *database.PostgresDB, installationID string) *PostgresStateRepository {
	return &PostgresStateRepository{db: db, installationID: installationID}
}

// Get reads the JSON value of a state key
func (r *PostgresStateRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM user_state
		WHERE installation_id = $1 AND state_key = $2
	`

	var value []byte
	err := r.db.Pool.QueryRow(ctx, query, r.installationID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get state %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts a state key and bumps updated_at
func (r *PostgresStateRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO user_state (installation_id, state_key, value, updated_at)
		VALUES ($1, $2, $3::jsonb, NOW())
		ON CONFLICT (installation_id, state_key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.db.Pool.Exec(ctx, query, r.installationID, key, string(value)); err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}
	return nil
}

// Delete removes a state key row
func (r *PostgresStateRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM user_state WHERE installation_id = $1 AND state_key = $2`

	if _, err := r.db.Pool.Exec(ctx, query, r.installationID, key); err != nil {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}
