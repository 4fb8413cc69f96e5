package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/lichcore/dominion/internal/database"
	"github.com/lichcore/dominion/internal/domain"
)

// startTestDB spins up a disposable Postgres container, applies the embedded
// migrations and returns a connected pool. Skips in short mode and when
// Docker is not available.
func startTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, could not start container: %v", err)
	}
	if pgContainer == nil {
		return nil
	}
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	connString, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(connString))

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestAssignmentRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewAssignmentRepository(pool)

	t.Run("assign and fetch", func(t *testing.T) {
		require.NoError(t, repo.Assign(ctx, "user-1", "Carpentry"))
		require.NoError(t, repo.Assign(ctx, "user-1", "Mining"))
		require.NoError(t, repo.Assign(ctx, "user-2", "Carpentry"))

		snapshot, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Carpentry", "Mining"}, snapshot["user-1"])
		assert.Equal(t, []string{"Carpentry"}, snapshot["user-2"])
	})

	t.Run("assign is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Assign(ctx, "user-1", "Carpentry"))

		count, err := repo.CountByProfession(ctx, "Carpentry")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("unassign removes one pair", func(t *testing.T) {
		require.NoError(t, repo.Unassign(ctx, "user-1", "Mining"))

		snapshot, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Carpentry"}, snapshot["user-1"])
	})

	t.Run("unassign of a missing pair is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Unassign(ctx, "user-1", "Fishing"))
	})

	t.Run("remove user clears every assignment", func(t *testing.T) {
		require.NoError(t, repo.RemoveUser(ctx, "user-1"))

		snapshot, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		assert.NotContains(t, snapshot, "user-1")
		assert.Contains(t, snapshot, "user-2")
	})
}

func TestLoadoutRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewLoadoutRepository(pool)

	t.Run("tool upsert replaces the row", func(t *testing.T) {
		require.NoError(t, repo.UpsertTool(ctx, "user-1", "Saw", domain.Loadout{Tier: 3, Rarity: "Common"}))
		require.NoError(t, repo.UpsertTool(ctx, "user-1", "Saw", domain.Loadout{Tier: 5, Rarity: "Rare"}))

		snapshot, err := repo.FetchAllTools(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Loadout{Tier: 5, Rarity: "Rare"}, snapshot["user-1"]["Saw"])
	})

	t.Run("armor keyed by material and piece", func(t *testing.T) {
		head := domain.ArmorKey{Material: "Cloth", Piece: "Head"}
		boots := domain.ArmorKey{Material: "Cloth", Piece: "Boots"}
		require.NoError(t, repo.UpsertArmor(ctx, "user-1", head, domain.Loadout{Tier: 2, Rarity: "Common"}))
		require.NoError(t, repo.UpsertArmor(ctx, "user-1", boots, domain.Loadout{Tier: 4, Rarity: "Rare"}))

		snapshot, err := repo.FetchAllArmor(ctx)
		require.NoError(t, err)
		assert.Len(t, snapshot["user-1"], 2)
		assert.Equal(t, domain.Loadout{Tier: 4, Rarity: "Rare"}, snapshot["user-1"][boots])
	})

	t.Run("accessories fetched per kind", func(t *testing.T) {
		require.NoError(t, repo.UpsertAccessory(ctx, "user-1", domain.AccessoryRing, 6))
		require.NoError(t, repo.UpsertAccessory(ctx, "user-1", domain.AccessoryHeart, 2))
		require.NoError(t, repo.UpsertAccessory(ctx, "user-2", domain.AccessoryRing, 9))

		rings, err := repo.FetchAccessories(ctx, domain.AccessoryRing)
		require.NoError(t, err)
		assert.Equal(t, domain.AccessorySnapshot{"user-1": 6, "user-2": 9}, rings)
	})

	t.Run("delete tool and accessory", func(t *testing.T) {
		require.NoError(t, repo.DeleteTool(ctx, "user-1", "Saw"))
		require.NoError(t, repo.DeleteAccessory(ctx, "user-1", domain.AccessoryHeart))

		tools, err := repo.FetchAllTools(ctx)
		require.NoError(t, err)
		assert.NotContains(t, tools, "user-1")

		hearts, err := repo.FetchAccessories(ctx, domain.AccessoryHeart)
		require.NoError(t, err)
		assert.NotContains(t, hearts, "user-1")
	})

	t.Run("remove user clears all three tables", func(t *testing.T) {
		require.NoError(t, repo.UpsertTool(ctx, "user-3", "Pickaxe", domain.Loadout{Tier: 1, Rarity: "Common"}))
		require.NoError(t, repo.UpsertArmor(ctx, "user-3",
			domain.ArmorKey{Material: "Leather", Piece: "Belt"}, domain.Loadout{Tier: 1, Rarity: "Common"}))
		require.NoError(t, repo.UpsertAccessory(ctx, "user-3", domain.AccessoryRing, 1))

		require.NoError(t, repo.RemoveUser(ctx, "user-3"))

		tools, err := repo.FetchAllTools(ctx)
		require.NoError(t, err)
		assert.NotContains(t, tools, "user-3")
		armor, err := repo.FetchAllArmor(ctx)
		require.NoError(t, err)
		assert.NotContains(t, armor, "user-3")
		rings, err := repo.FetchAccessories(ctx, domain.AccessoryRing)
		require.NoError(t, err)
		assert.NotContains(t, rings, "user-3")
	})
}

func TestMetaRepository_Integration(t *testing.T) {
	pool := startTestDB(t)
	ctx := context.Background()
	repo := NewMetaRepository(pool)

	t.Run("get of a missing key reports absence", func(t *testing.T) {
		_, found, err := repo.Get(ctx, "board_message_ids")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "board_message_ids", `["m1","m2"]`))

		value, found, err := repo.Get(ctx, "board_message_ids")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `["m1","m2"]`, value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "board_message_ids", `["m3"]`))

		value, _, err := repo.Get(ctx, "board_message_ids")
		require.NoError(t, err)
		assert.Equal(t, `["m3"]`, value)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "board_message_ids"))

		_, found, err := repo.Get(ctx, "board_message_ids")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
