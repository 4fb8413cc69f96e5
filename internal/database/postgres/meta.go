package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MetaRepository implements the metadata key-value store for PostgreSQL
type MetaRepository struct {
	db *pgxpool.Pool
}

// NewMetaRepository creates a new MetaRepository
func NewMetaRepository(db *pgxpool.Pool) *MetaRepository {
	return &MetaRepository{db: db}
}

// Get returns the value for a key; the bool reports presence
func (r *MetaRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM meta WHERE key = $1`
	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get meta key: %w", err)
	}
	return value, true, nil
}

// Set upserts the value for a key
func (r *MetaRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO meta (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set meta key: %w", err)
	}
	return nil
}

// Delete removes a key if present
func (r *MetaRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM meta WHERE key = $1`
	if _, err := r.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete meta key: %w", err)
	}
	return nil
}
