package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lichcore/dominion/internal/domain"
)

// LoadoutRepository implements the loadout repository for PostgreSQL
type LoadoutRepository struct {
	db *pgxpool.Pool
}

// NewLoadoutRepository creates a new LoadoutRepository
func NewLoadoutRepository(db *pgxpool.Pool) *LoadoutRepository {
	return &LoadoutRepository{db: db}
}

// UpsertTool inserts or replaces a tool loadout
func (r *LoadoutRepository) UpsertTool(ctx context.Context, userID, tool string, loadout domain.Loadout) error {
	query := `
		INSERT INTO tools (user_id, tool, tier, rarity, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, tool) DO UPDATE
		SET tier = EXCLUDED.tier, rarity = EXCLUDED.rarity, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, tool, loadout.Tier, loadout.Rarity); err != nil {
		return fmt.Errorf("failed to upsert tool: %w", err)
	}
	return nil
}

// DeleteTool removes a tool loadout
func (r *LoadoutRepository) DeleteTool(ctx context.Context, userID, tool string) error {
	query := `DELETE FROM tools WHERE user_id = $1 AND tool = $2`
	if _, err := r.db.Exec(ctx, query, userID, tool); err != nil {
		return fmt.Errorf("failed to delete tool: %w", err)
	}
	return nil
}

// FetchAllTools returns every tool loadout grouped by user
func (r *LoadoutRepository) FetchAllTools(ctx context.Context) (domain.ToolSnapshot, error) {
	query := `SELECT user_id, tool, tier, rarity FROM tools`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tools: %w", err)
	}
	defer rows.Close()

	snapshot := make(domain.ToolSnapshot)
	for rows.Next() {
		var userID, tool string
		var loadout domain.Loadout
		if err := rows.Scan(&userID, &tool, &loadout.Tier, &loadout.Rarity); err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		if snapshot[userID] == nil {
			snapshot[userID] = make(map[string]domain.Loadout)
		}
		snapshot[userID][tool] = loadout
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tools: %w", err)
	}

	return snapshot, nil
}

// UpsertArmor inserts or replaces an armor loadout
func (r *LoadoutRepository) UpsertArmor(ctx context.Context, userID string, key domain.ArmorKey, loadout domain.Loadout) error {
	query := `
		INSERT INTO armor (user_id, material, piece, tier, rarity, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id, material, piece) DO UPDATE
		SET tier = EXCLUDED.tier, rarity = EXCLUDED.rarity, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, key.Material, key.Piece, loadout.Tier, loadout.Rarity); err != nil {
		return fmt.Errorf("failed to upsert armor: %w", err)
	}
	return nil
}

// DeleteArmor removes an armor loadout
func (r *LoadoutRepository) DeleteArmor(ctx context.Context, userID string, key domain.ArmorKey) error {
	query := `DELETE FROM armor WHERE user_id = $1 AND material = $2 AND piece = $3`
	if _, err := r.db.Exec(ctx, query, userID, key.Material, key.Piece); err != nil {
		return fmt.Errorf("failed to delete armor: %w", err)
	}
	return nil
}

// FetchAllArmor returns every armor loadout grouped by user and slot
func (r *LoadoutRepository) FetchAllArmor(ctx context.Context) (domain.ArmorSnapshot, error) {
	query := `SELECT user_id, material, piece, tier, rarity FROM armor`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query armor: %w", err)
	}
	defer rows.Close()

	snapshot := make(domain.ArmorSnapshot)
	for rows.Next() {
		var userID string
		var key domain.ArmorKey
		var loadout domain.Loadout
		if err := rows.Scan(&userID, &key.Material, &key.Piece, &loadout.Tier, &loadout.Rarity); err != nil {
			return nil, fmt.Errorf("failed to scan armor: %w", err)
		}
		if snapshot[userID] == nil {
			snapshot[userID] = make(map[domain.ArmorKey]domain.Loadout)
		}
		snapshot[userID][key] = loadout
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read armor: %w", err)
	}

	return snapshot, nil
}

// UpsertAccessory inserts or replaces an accessory tier
func (r *LoadoutRepository) UpsertAccessory(ctx context.Context, userID, kind string, tier int) error {
	query := `
		INSERT INTO accessories (user_id, kind, tier, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, kind) DO UPDATE
		SET tier = EXCLUDED.tier, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, kind, tier); err != nil {
		return fmt.Errorf("failed to upsert accessory: %w", err)
	}
	return nil
}

// DeleteAccessory removes an accessory tier
func (r *LoadoutRepository) DeleteAccessory(ctx context.Context, userID, kind string) error {
	query := `DELETE FROM accessories WHERE user_id = $1 AND kind = $2`
	if _, err := r.db.Exec(ctx, query, userID, kind); err != nil {
		return fmt.Errorf("failed to delete accessory: %w", err)
	}
	return nil
}

// FetchAccessories returns every tier for one accessory kind keyed by user
func (r *LoadoutRepository) FetchAccessories(ctx context.Context, kind string) (domain.AccessorySnapshot, error) {
	query := `SELECT user_id, tier FROM accessories WHERE kind = $1`
	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query accessories: %w", err)
	}
	defer rows.Close()

	snapshot := make(domain.AccessorySnapshot)
	for rows.Next() {
		var userID string
		var tier int
		if err := rows.Scan(&userID, &tier); err != nil {
			return nil, fmt.Errorf("failed to scan accessory: %w", err)
		}
		snapshot[userID] = tier
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accessories: %w", err)
	}

	return snapshot, nil
}

// RemoveUser deletes every tool, armor and accessory row for a user
func (r *LoadoutRepository) RemoveUser(ctx context.Context, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, query := range []string{
		`DELETE FROM tools WHERE user_id = $1`,
		`DELETE FROM armor WHERE user_id = $1`,
		`DELETE FROM accessories WHERE user_id = $1`,
	} {
		if _, err := tx.Exec(ctx, query, userID); err != nil {
			return fmt.Errorf("failed to delete user loadouts: %w", err)
		}
	}

	return tx.Commit(ctx)
}
