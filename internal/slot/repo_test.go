package slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MikeMC777/grocery-pickup/internal/mongox"
)

func setupTestDB(t *testing.T) (Repository, func()) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := mongox.Connect(ctx, uri, "testdb")
	require.NoError(t, err)

	repo := NewMongoRepo(db)

	cleanup := func() {
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func TestGetByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	s, err := repo.GetByID(ctx, primitive.NewObjectID())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, s)
}

func TestIncrementBooked_OnlyTargetSlot(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, repo.InsertMany(ctx, []Slot{
		{Label: "Morning", Capacity: 10, Booked: 0},
		{Label: "Evening", Capacity: 12, Booked: 5},
	}))

	slots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	var target, other Slot
	for _, s := range slots {
		if s.Label == "Morning" {
			target = s
		} else {
			other = s
		}
	}

	require.NoError(t, repo.IncrementBooked(ctx, target.ID))
	require.NoError(t, repo.IncrementBooked(ctx, target.ID))

	got, err := repo.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Booked)
	assert.Equal(t, 8, got.Available())

	untouched, err := repo.GetByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, untouched.Booked)
}

func TestIncrementBooked_MissingSlot(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.IncrementBooked(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeed_WritesOnlyOnce(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	seeded, err := Seed(ctx, repo)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = Seed(ctx, repo)
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(DemoSlots())), n)
}
