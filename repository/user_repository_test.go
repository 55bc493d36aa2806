package repository

import (
	"context"
	"testing"

	"santabox/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		user, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("user found", func(t *testing.T) {
		created, err := repo.Upsert(ctx, 123456, "alice")
		require.NoError(t, err)

		user, err := repo.GetByID(ctx, 123456)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, int64(123456), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, created.ConnectionDate, user.ConnectionDate)
	})
}

func TestUserRepository_Upsert(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("first contact inserts", func(t *testing.T) {
		user, err := repo.Upsert(ctx, 111111, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.False(t, user.ConnectionDate.IsZero())
	})

	t.Run("repeat contact refreshes username and keeps connection date", func(t *testing.T) {
		first, err := repo.Upsert(ctx, 222222, "bob")
		require.NoError(t, err)

		second, err := repo.Upsert(ctx, 222222, "bob_renamed")
		require.NoError(t, err)

		assert.Equal(t, "bob_renamed", second.Username)
		assert.Equal(t, first.ConnectionDate, second.ConnectionDate)
	})
}

func TestUserRepository_GetByIDs(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, 100, "alice")
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, 200, "bob")
	require.NoError(t, err)

	t.Run("returns found users keyed by ID", func(t *testing.T) {
		users, err := repo.GetByIDs(ctx, []int64{100, 200, 300})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[100].Username)
		assert.Equal(t, "bob", users[200].Username)
		assert.NotContains(t, users, int64(300))
	})

	t.Run("empty input returns empty map", func(t *testing.T) {
		users, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
