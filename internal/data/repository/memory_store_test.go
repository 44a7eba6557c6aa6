package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"tourism-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InsertAssignsIDs(t *testing.T) {
	store := NewMemoryStore()
	store.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	first, err := store.Insert(ctx, "guide_bookings", entity.Record{"full_name": "Ann"})
	require.NoError(t, err)
	second, err := store.Insert(ctx, "guide_bookings", entity.Record{"full_name": "Ann"})
	require.NoError(t, err)
	other, err := store.Insert(ctx, "transport_bookings", entity.Record{"full_name": "Ravi"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first[0]["id"])
	assert.Equal(t, int64(2), second[0]["id"])
	assert.Equal(t, int64(1), other[0]["id"])
	assert.Equal(t, "2024-06-01T09:00:00Z", first[0]["created_at"])
}

func TestMemoryStore_DoesNotShareRecords(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	input := entity.Record{"full_name": "Ann"}
	out, err := store.Insert(ctx, "guide_bookings", input)
	require.NoError(t, err)

	input["full_name"] = "changed"
	out[0]["full_name"] = "changed too"
	assert.NotContains(t, input, "id")

	records, err := store.SelectAll(ctx, "guide_bookings")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ann", records[0]["full_name"])
}

func TestMemoryStore_SelectAllEmpty(t *testing.T) {
	records, err := NewMemoryStore().SelectAll(context.Background(), "activity_bookings")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Insert(ctx, "guide_bookings", entity.Record{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = store.SelectAll(ctx, "guide_bookings")
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}

func TestMemoryStore_ConcurrentInserts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Insert(ctx, "user_bookings", entity.Record{"n": 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := store.SelectAll(ctx, "user_bookings")
	require.NoError(t, err)
	assert.Len(t, records, 50)
}
