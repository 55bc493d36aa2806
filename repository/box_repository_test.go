package repository

import (
	"context"
	"testing"

	"santabox/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewBoxRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Upsert(ctx, 100, "owner")
	require.NoError(t, err)

	t.Run("create with photo", func(t *testing.T) {
		photoRef := "deadbeef.jpg"
		box, err := repo.Create(ctx, 100, "Office 2026", &photoRef, "Gifts under 20 euros")
		require.NoError(t, err)

		assert.NotZero(t, box.ID)
		assert.Equal(t, int64(100), box.OwnerID)
		assert.Equal(t, "Office 2026", box.Name)
		require.NotNil(t, box.PhotoRef)
		assert.Equal(t, photoRef, *box.PhotoRef)
		assert.True(t, box.HasPhoto())
	})

	t.Run("create without photo", func(t *testing.T) {
		box, err := repo.Create(ctx, 100, "Family", nil, "No socks")
		require.NoError(t, err)

		assert.Nil(t, box.PhotoRef)
		assert.False(t, box.HasPhoto())

		got, err := repo.GetByID(ctx, box.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, box.Name, got.Name)
		assert.Nil(t, got.PhotoRef)
	})

	t.Run("missing box returns nil", func(t *testing.T) {
		box, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, box)
	})
}

func TestBoxRepository_Delete(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewBoxRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Upsert(ctx, 100, "owner")
	require.NoError(t, err)

	box, err := repo.Create(ctx, 100, "Doomed", nil, "short lived")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, box.ID))

	got, err := repo.GetByID(ctx, box.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op
	require.NoError(t, repo.Delete(ctx, box.ID))
}

func TestBoxRepository_ListByOwner(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewBoxRepository(testDB.DB)
	ctx := context.Background()

	_, err := userRepo.Upsert(ctx, 100, "owner")
	require.NoError(t, err)
	_, err = userRepo.Upsert(ctx, 200, "other")
	require.NoError(t, err)

	first, err := repo.Create(ctx, 100, "First", nil, "desc")
	require.NoError(t, err)
	second, err := repo.Create(ctx, 100, "Second", nil, "desc")
	require.NoError(t, err)
	_, err = repo.Create(ctx, 200, "Other owner", nil, "desc")
	require.NoError(t, err)

	boxes, err := repo.ListByOwner(ctx, 100)
	require.NoError(t, err)
	require.Len(t, boxes, 2)

	// Newest first
	assert.Equal(t, second.ID, boxes[0].ID)
	assert.Equal(t, first.ID, boxes[1].ID)

	empty, err := repo.ListByOwner(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
