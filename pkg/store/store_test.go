package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend_hatid/pkg/models"
	"backend_hatid/pkg/seed"
)

func testStore() *Store {
	return New(seed.Data{
		Stores: []models.Store{
			{ID: "store-1", Name: "Aling Nena's Sari-Sari", Status: models.StoreStatusOpen},
			{ID: "store-4", Name: "Bagsakan Grocers", Status: models.StoreStatusClosed},
		},
		Orders: []models.Order{
			{ID: "order-1", StoreID: "store-1", Total: 300, PlacedAt: time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC)},
			{ID: "order-2", StoreID: "store-1", Total: 1176, PlacedAt: time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)},
		},
		Users: []models.User{
			{ID: "user-1", Name: "Maria Clara Ibarra", Role: models.RoleSuperAdmin},
		},
	})
}

func TestCollectionListIsASnapshot(t *testing.T) {
	s := testStore()

	list := s.Stores.List()
	require.Len(t, list, 2)

	list[0].Name = "mutated"
	fresh, ok := s.Stores.Get(list[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Name)
}

func TestCollectionReplaceSwapsWholeRecord(t *testing.T) {
	s := testStore()

	updated := models.Store{ID: "store-1", Name: "Renamed", Status: models.StoreStatusBusy}
	require.True(t, s.Stores.Replace(updated))

	got, ok := s.Stores.Get("store-1")
	require.True(t, ok)
	assert.Equal(t, updated, got)

	assert.False(t, s.Stores.Replace(models.Store{ID: "ghost"}))
}

func TestCollectionInsertAndDelete(t *testing.T) {
	s := testStore()

	s.Stores.Insert(models.Store{ID: "store-9", Name: "Bagong Tindahan"})
	assert.Equal(t, 3, s.Stores.Len())

	require.True(t, s.Stores.Delete("store-9"))
	assert.False(t, s.Stores.Delete("store-9"))
	assert.Equal(t, 2, s.Stores.Len())
}

func TestLatestOrderForStore(t *testing.T) {
	s := testStore()

	latest, found := s.LatestOrderForStore("store-1")
	require.True(t, found)
	assert.Equal(t, "order-2", latest.ID)

	_, found = s.LatestOrderForStore("store-4")
	assert.False(t, found)
}

func TestAuditLogIsAppendOnlyNewestFirst(t *testing.T) {
	s := testStore()
	actor, _ := s.Users.Get("user-1")

	s.AppendAudit(actor, models.AuditActionCreate, "store", "store-9", "first")
	s.AppendAudit(actor, models.AuditActionDelete, "store", "store-9", "second")

	entries := s.AuditLog()
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Detail)
	assert.Equal(t, "first", entries[1].Detail)
	assert.Equal(t, actor.ID, entries[0].ActorID)
	assert.NotEmpty(t, entries[0].ID)

	// The snapshot is detached from the log
	entries[0].Detail = "mutated"
	assert.Equal(t, "second", s.AuditLog()[0].Detail)
}
