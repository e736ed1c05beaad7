// internal/store/memory_test.go
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
)

func TestMemoryStoreInsertAndFindByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Insert(ctx, CollectionProducts, models.Product{Name: "Hammer", Weight: 1.2})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var p models.Product
	found, err := s.FindByID(ctx, CollectionProducts, id, &p)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Hammer", p.Name)

	found, err = s.FindByID(ctx, CollectionProducts, "missing", &p)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStorePartialUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.Insert(ctx, CollectionProducts, models.Product{Name: "Hammer", Weight: 1.2, Price: 9.90})
	require.NoError(t, err)

	matched, err := s.Update(ctx, CollectionProducts, id, map[string]interface{}{"price": 12.50})
	require.NoError(t, err)
	require.True(t, matched)

	var p models.Product
	_, err = s.FindByID(ctx, CollectionProducts, id, &p)
	require.NoError(t, err)
	assert.Equal(t, 12.50, p.Price)
	assert.Equal(t, "Hammer", p.Name)
	assert.Equal(t, 1.2, p.Weight)
}

func TestMemoryStoreUpdateMissingDocument(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	matched, err := s.Update(ctx, CollectionProducts, "missing", map[string]interface{}{"price": 1.0})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestMemoryStoreFindAllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"first", "second", "third"} {
		_, err := s.Insert(ctx, CollectionWarehouses, models.Warehouse{Name: name, Capacity: 10})
		require.NoError(t, err)
	}

	var warehouses []models.Warehouse
	require.NoError(t, s.FindAll(ctx, CollectionWarehouses, &warehouses))
	require.Len(t, warehouses, 3)
	assert.Equal(t, "first", warehouses[0].Name)
	assert.Equal(t, "third", warehouses[2].Name)
}

func TestMemoryStoreInventoryFinders(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Insert(ctx, CollectionInventory, models.InventoryEntry{WarehouseID: "w1", ProductID: "p1", Quantity: 5})
	require.NoError(t, err)
	_, err = s.Insert(ctx, CollectionInventory, models.InventoryEntry{WarehouseID: "w1", ProductID: "p2", Quantity: 3})
	require.NoError(t, err)
	_, err = s.Insert(ctx, CollectionInventory, models.InventoryEntry{WarehouseID: "w2", ProductID: "p1", Quantity: 7})
	require.NoError(t, err)

	entries, err := s.FindInventoryByWarehouse(ctx, "w1")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entry, err := s.FindInventoryEntry(ctx, "w2", "p1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 7, entry.Quantity)

	entry, err = s.FindInventoryEntry(ctx, "w2", "p2")
	require.NoError(t, err)
	assert.Nil(t, entry)

	removed, err := s.DeleteInventoryByWarehouse(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = s.DeleteInventoryByProduct(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
