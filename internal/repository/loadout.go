package repository

import (
	"context"

	"github.com/lichcore/dominion/internal/domain"
)

// Loadout defines the interface for tool, armor and accessory persistence.
// All upserts replace the existing row for the natural key.
type Loadout interface {
	UpsertTool(ctx context.Context, userID, tool string, loadout domain.Loadout) error
	DeleteTool(ctx context.Context, userID, tool string) error
	FetchAllTools(ctx context.Context) (domain.ToolSnapshot, error)

	UpsertArmor(ctx context.Context, userID string, key domain.ArmorKey, loadout domain.Loadout) error
	DeleteArmor(ctx context.Context, userID string, key domain.ArmorKey) error
	FetchAllArmor(ctx context.Context) (domain.ArmorSnapshot, error)

	UpsertAccessory(ctx context.Context, userID, kind string, tier int) error
	DeleteAccessory(ctx context.Context, userID, kind string) error
	FetchAccessories(ctx context.Context, kind string) (domain.AccessorySnapshot, error)

	// RemoveUser deletes every loadout row held by the user.
	RemoveUser(ctx context.Context, userID string) error
}
