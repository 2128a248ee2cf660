package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/asset-inventory/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func laptopAsset() models.Asset {
	return models.Asset{
		Name:          "Laptop",
		Category:      "IT",
		Location:      "HQ",
		Status:        "active",
		PurchasePrice: 1200,
	}
}

func TestCreateAsset_AssignsSequentialIDs(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	first, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.NotEmpty(t, first.CreatedAt)

	createdAt, err := time.Parse(time.RFC3339, first.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), createdAt, 5*time.Second)

	second, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateAsset_NextIDAfterRemovingLowerID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)
	_, err = s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)

	// удаление не максимального id не влияет на следующий id
	require.NoError(t, s.RemoveAsset(ctx, 1))

	third, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestCreateAsset_ReusesIDAfterRemovingMaxID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)
	second, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)

	// следующий id выводится из текущего максимума, а не из счётчика:
	// после удаления записи с максимальным id он выдаётся повторно
	require.NoError(t, s.RemoveAsset(ctx, 2))

	reused, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)
	assert.Equal(t, 2, reused.ID)
}

func TestCreateAsset_ConcurrentWritersKeepIDsUnique(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	const writers = 10
	var wg sync.WaitGroup
	ids := make(chan int, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.CreateAsset(ctx, laptopAsset())
			assert.NoError(t, err)
			ids <- res.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, writers)

	all, err := s.ListAssets(ctx, models.FilterAssets{})
	require.NoError(t, err)
	assert.Len(t, all, writers)
}

func TestListAssets_MissingDocumentIsEmptyCollection(t *testing.T) {
	s := newTestStorage(t)

	assets, err := s.ListAssets(context.Background(), models.FilterAssets{})
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestListAssets_Filters(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	seed := []models.Asset{
		{Name: "Laptop", Category: "IT", Location: "HQ", Status: "active", PurchasePrice: 1200},
		{Name: "Office Chair", Category: "Furniture", Location: "HQ", Status: "inactive", PurchasePrice: 150},
		{Name: "Monitor", Category: "IT", Location: "Remote", Status: "Active", PurchasePrice: 300},
	}
	for _, a := range seed {
		_, err := s.CreateAsset(ctx, a)
		require.NoError(t, err)
	}

	price := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		filter  models.FilterAssets
		wantIDs []int
	}{
		{name: "no filters returns all in insertion order", filter: models.FilterAssets{}, wantIDs: []int{1, 2, 3}},
		{name: "name substring case-insensitive", filter: models.FilterAssets{Name: "lap"}, wantIDs: []int{1}},
		{name: "category substring case-insensitive", filter: models.FilterAssets{Category: "it"}, wantIDs: []int{1, 2, 3}},
		{name: "status exact case-insensitive", filter: models.FilterAssets{Status: "ACTIVE"}, wantIDs: []int{1, 3}},
		{name: "min price", filter: models.FilterAssets{MinPrice: price(300)}, wantIDs: []int{1, 3}},
		{name: "max price", filter: models.FilterAssets{MaxPrice: price(300)}, wantIDs: []int{2, 3}},
		{name: "price bounds inclusive", filter: models.FilterAssets{MinPrice: price(300), MaxPrice: price(300)}, wantIDs: []int{3}},
		{name: "conjunction of filters", filter: models.FilterAssets{Category: "IT", MaxPrice: price(500)}, wantIDs: []int{3}},
		{name: "min greater than max is mechanically empty", filter: models.FilterAssets{MinPrice: price(100), MaxPrice: price(50)}, wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.ListAssets(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]int, 0, len(res))
			for _, a := range res {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestReadAsset(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)

	got, err := s.ReadAsset(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.ReadAsset(ctx, 99)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestUpdateAsset_MergePatchSkipsNilFields(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)

	location := "Warehouse"
	updated, err := s.UpdateAsset(ctx, created.ID, models.PatchAsset{
		Location: &location,
		Status:   nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "Warehouse", updated.Location)
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, "Laptop", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// изменения сохранены на диске
	reloaded, err := s.ReadAsset(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, reloaded)
}

func TestUpdateAsset_NotFound(t *testing.T) {
	s := newTestStorage(t)

	status := "inactive"
	res, err := s.UpdateAsset(context.Background(), 42, models.PatchAsset{Status: &status})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestRemoveAsset(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	created, err := s.CreateAsset(ctx, laptopAsset())
	require.NoError(t, err)

	require.NoError(t, s.RemoveAsset(ctx, created.ID))

	_, err = s.ReadAsset(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	assert.ErrorIs(t, s.RemoveAsset(ctx, created.ID), ErrAssetNotFound)
}

func TestAssets_CancelledContext(t *testing.T) {
	s := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.CreateAsset(ctx, laptopAsset())
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.ListAssets(ctx, models.FilterAssets{})
	assert.ErrorIs(t, err, context.Canceled)
}
