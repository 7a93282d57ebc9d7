package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimward/charkeeper/internal/game/character"
	"github.com/grimward/charkeeper/internal/storage"
	pgstore "github.com/grimward/charkeeper/internal/storage/postgres"
)

const testSchema = `
	CREATE TABLE IF NOT EXISTS characters (
		character_id TEXT        PRIMARY KEY,
		player_id    TEXT        NOT NULL,
		record       JSONB       NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DSN")
	if dsn == "" {
		t.Skip("TEST_DSN not set; skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if _, err := pool.Exec(context.Background(), testSchema); err != nil {
		t.Fatalf("applying schema: %v", err)
	}
	return pool
}

func newTestCharacter(playerID, name string) *character.Character {
	return &character.Character{
		CharacterID: uuid.NewString(),
		PlayerID:    playerID,
		Name:        name,
		Class:       "Wizard",
		Level:       1,
		Stats: &character.Stats{
			Strength: 10, Dexterity: 10, Constitution: 10,
			Intelligence: 10, Wisdom: 10, Charisma: 10,
		},
		CurrentStatus: &character.CurrentStatus{HP: 6, MaxHP: 6, Condition: "Normal", Buffs: []string{}},
		Inventory:     []character.InventoryItem{{ItemName: "Torch", Quantity: 2}},
	}
}

func TestCharacterStore_PutAndGet(t *testing.T) {
	store := pgstore.NewCharacterStore(testPool(t))
	ctx := context.Background()

	c := newTestCharacter(uuid.NewString(), "Aria")
	require.NoError(t, store.Put(ctx, c))

	got, err := store.GetByID(ctx, c.CharacterID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.PlayerID, got.PlayerID)
	require.NotNil(t, got.CurrentStatus)
	assert.Equal(t, 6, got.CurrentStatus.MaxHP)
	assert.Equal(t, "Normal", got.CurrentStatus.Condition)
	require.Len(t, got.Inventory, 1)
	assert.Equal(t, "Torch", got.Inventory[0].ItemName)
}

func TestCharacterStore_GetMissing(t *testing.T) {
	store := pgstore.NewCharacterStore(testPool(t))
	_, err := store.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)
}

func TestCharacterStore_PutIsUpsert(t *testing.T) {
	store := pgstore.NewCharacterStore(testPool(t))
	ctx := context.Background()

	c := newTestCharacter(uuid.NewString(), "Aria")
	require.NoError(t, store.Put(ctx, c))

	c.Name = "Renamed"
	c.Level = 3
	require.NoError(t, store.Put(ctx, c))

	got, err := store.GetByID(ctx, c.CharacterID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 3, got.Level)
}

func TestCharacterStore_ScanByPlayerID(t *testing.T) {
	store := pgstore.NewCharacterStore(testPool(t))
	ctx := context.Background()

	playerID := uuid.NewString()
	first := newTestCharacter(playerID, "Aria")
	second := newTestCharacter(playerID, "Vex")
	other := newTestCharacter(uuid.NewString(), "Brug")

	require.NoError(t, store.Put(ctx, first))
	require.NoError(t, store.Put(ctx, second))
	require.NoError(t, store.Put(ctx, other))

	mine, err := store.ScanByPlayerID(ctx, playerID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Aria", mine[0].Name)
	assert.Equal(t, "Vex", mine[1].Name)

	none, err := store.ScanByPlayerID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCharacterStore_DeleteByID(t *testing.T) {
	store := pgstore.NewCharacterStore(testPool(t))
	ctx := context.Background()

	c := newTestCharacter(uuid.NewString(), "Aria")
	require.NoError(t, store.Put(ctx, c))
	require.NoError(t, store.DeleteByID(ctx, c.CharacterID))

	_, err := store.GetByID(ctx, c.CharacterID)
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)

	// Deleting an absent id is not an error.
	assert.NoError(t, store.DeleteByID(ctx, c.CharacterID))
}

func TestCharacterStore_PutRejectsEmptyID(t *testing.T) {
	store := pgstore.NewCharacterStore(testPool(t))
	err := store.Put(context.Background(), &character.Character{PlayerID: "p1", Name: "NoID"})
	require.Error(t, err)
}
