package repository

import (
	"context"
	"testing"

	"santabox/domain/entities"
	"santabox/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRepository_ReplaceForBox(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAssignmentRepository(testDB.DB)
	ctx := context.Background()

	boxID := seedBox(t, testDB, 100)
	seedUser(t, testDB, 200, "alice")
	seedUser(t, testDB, 300, "bob")
	seedUser(t, testDB, 400, "carol")

	t.Run("first draw inserts all pairs", func(t *testing.T) {
		assignments := []*entities.Assignment{
			{BoxID: boxID, GiverID: 200, ReceiverID: 300},
			{BoxID: boxID, GiverID: 300, ReceiverID: 400},
			{BoxID: boxID, GiverID: 400, ReceiverID: 200},
		}
		require.NoError(t, repo.ReplaceForBox(ctx, boxID, assignments))

		for _, a := range assignments {
			assert.NotZero(t, a.ID)
		}

		got, err := repo.ListByBox(ctx, boxID)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("redraw replaces the whole set", func(t *testing.T) {
		replacement := []*entities.Assignment{
			{BoxID: boxID, GiverID: 200, ReceiverID: 400},
			{BoxID: boxID, GiverID: 400, ReceiverID: 300},
			{BoxID: boxID, GiverID: 300, ReceiverID: 200},
		}
		require.NoError(t, repo.ReplaceForBox(ctx, boxID, replacement))

		got, err := repo.ListByBox(ctx, boxID)
		require.NoError(t, err)
		require.Len(t, got, 3)

		byGiver := make(map[int64]int64, len(got))
		for _, a := range got {
			byGiver[a.GiverID] = a.ReceiverID
		}
		assert.Equal(t, int64(400), byGiver[200])
		assert.Equal(t, int64(300), byGiver[400])
		assert.Equal(t, int64(200), byGiver[300])
	})
}

func TestAssignmentRepository_DeleteByBox(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAssignmentRepository(testDB.DB)
	ctx := context.Background()

	boxID := seedBox(t, testDB, 100)
	seedUser(t, testDB, 200, "alice")
	seedUser(t, testDB, 300, "bob")

	require.NoError(t, repo.ReplaceForBox(ctx, boxID, []*entities.Assignment{
		{BoxID: boxID, GiverID: 200, ReceiverID: 300},
		{BoxID: boxID, GiverID: 300, ReceiverID: 200},
	}))

	require.NoError(t, repo.DeleteByBox(ctx, boxID))

	got, err := repo.ListByBox(ctx, boxID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAssignmentRepository_DeleteForUser(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewAssignmentRepository(testDB.DB)
	ctx := context.Background()

	boxID := seedBox(t, testDB, 100)
	seedUser(t, testDB, 200, "alice")
	seedUser(t, testDB, 300, "bob")
	seedUser(t, testDB, 400, "carol")

	require.NoError(t, repo.ReplaceForBox(ctx, boxID, []*entities.Assignment{
		{BoxID: boxID, GiverID: 200, ReceiverID: 300},
		{BoxID: boxID, GiverID: 300, ReceiverID: 400},
		{BoxID: boxID, GiverID: 400, ReceiverID: 200},
	}))

	// Removes pairs where 200 gives or receives
	require.NoError(t, repo.DeleteForUser(ctx, 200, boxID))

	got, err := repo.ListByBox(ctx, boxID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(300), got[0].GiverID)
	assert.Equal(t, int64(400), got[0].ReceiverID)
}
