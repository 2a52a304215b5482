//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-vault/internal/domain/shared"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
	"github.com/KirkDiggler/character-vault/internal/repositories/characters"
	"github.com/KirkDiggler/character-vault/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)

	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("create and retrieve character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-1", "user-123", "Aragorn")

		err := repo.Create(ctx, char)
		require.NoError(t, err)

		retrieved, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		// the snapshot round-trips losslessly
		assert.Equal(t, char, retrieved)
	})

	t.Run("create duplicate character fails", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-2", "user-123", "Legolas")

		require.NoError(t, repo.Create(ctx, char))

		err := repo.Create(ctx, char)
		require.Error(t, err)
		assert.True(t, dnderr.IsAlreadyExists(err))
	})

	t.Run("get by owner", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("test-char-3", "user-456", "Gimli")))
		require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("test-char-4", "user-456", "Boromir")))

		chars, err := repo.GetByOwner(ctx, "user-456")
		require.NoError(t, err)
		assert.Len(t, chars, 2)
	})

	t.Run("update character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-5", "user-789", "Frodo")
		require.NoError(t, repo.Create(ctx, char))

		char.Level = 4
		char.Abilities[shared.AttributeDexterity] = 16
		require.NoError(t, repo.Update(ctx, char))

		retrieved, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, retrieved.Level)
		assert.Equal(t, 16, retrieved.Abilities[shared.AttributeDexterity])
	})

	t.Run("delete character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("test-char-6", "user-789", "Samwise")
		require.NoError(t, repo.Create(ctx, char))

		require.NoError(t, repo.Delete(ctx, char.ID))

		_, err := repo.Get(ctx, char.ID)
		assert.True(t, dnderr.IsNotFound(err))

		chars, err := repo.GetByOwner(ctx, "user-789")
		require.NoError(t, err)
		for _, c := range chars {
			assert.NotEqual(t, char.ID, c.ID)
		}
	})

	t.Run("list all", func(t *testing.T) {
		chars, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, chars)
	})
}
