package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimward/charkeeper/internal/storage"
	pgstore "github.com/grimward/charkeeper/internal/storage/postgres"
	"github.com/grimward/charkeeper/internal/testutil"
)

// Exercises the store against a throwaway container instead of a
// pre-provisioned database. Needs Docker.
func TestCharacterStore_Container(t *testing.T) {
	if os.Getenv("TEST_CONTAINERS") == "" {
		t.Skip("TEST_CONTAINERS not set; skipping container test")
	}

	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	store := pgstore.NewCharacterStore(pc.RawPool)
	ctx := context.Background()

	c := newTestCharacter(uuid.NewString(), "Aria")
	require.NoError(t, store.Put(ctx, c))

	got, err := store.GetByID(ctx, c.CharacterID)
	require.NoError(t, err)
	assert.Equal(t, "Aria", got.Name)

	require.NoError(t, store.DeleteByID(ctx, c.CharacterID))
	_, err = store.GetByID(ctx, c.CharacterID)
	assert.ErrorIs(t, err, storage.ErrCharacterNotFound)
}
