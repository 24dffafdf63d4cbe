package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/storage"
	"github.com/EldarTem/inventoryTrack/pkg/models"
)

func newTestStores() (*Store, *ItemStore, *storage.MemoryStore) {
	mem := storage.NewMemoryStore()
	items := NewItemStore(mem, zap.NewNop())
	inventories := NewStore(mem, items, zap.NewNop())
	return inventories, items, mem
}

func strPtr(s string) *string { return &s }

func TestCreateFillsDefaults(t *testing.T) {
	inventories, _, _ := newTestStores()

	inv := inventories.Create(models.InventoryChanges{
		Warehouse: &models.Reference{ID: "w1", DisplayValue: "Main"},
	})

	assert.NotEmpty(t, inv.ID)
	assert.Equal(t, "draft", inv.Status.Code)
	assert.Equal(t, "Черновик", inv.Status.DisplayValue)
	assert.Equal(t, models.Reference{ID: "w1", DisplayValue: "Main"}, inv.Warehouse)
	assert.Equal(t, "", inv.Comment)
	assert.NotEmpty(t, inv.CreatedAt)

	second := inventories.Create(models.InventoryChanges{})
	assert.NotEqual(t, inv.ID, second.ID)
}

func TestUpdateMergesSuppliedFieldsOnly(t *testing.T) {
	inventories, _, _ := newTestStores()
	inv := inventories.Create(models.InventoryChanges{
		Number:  strPtr("INV-1"),
		Comment: strPtr("initial"),
	})

	updated, ok := inventories.Update(inv.ID, models.InventoryChanges{Comment: strPtr("recounted")})

	assert.True(t, ok)
	assert.Equal(t, "INV-1", updated.Number)
	assert.Equal(t, "recounted", updated.Comment)
	assert.Equal(t, inv.Status, updated.Status)
	assert.Equal(t, inv.CreatedAt, updated.CreatedAt)
}

func TestUpdateAbsentIDIsNoop(t *testing.T) {
	inventories, _, _ := newTestStores()
	inventories.Create(models.InventoryChanges{Number: strPtr("INV-1")})

	_, ok := inventories.Update("missing", models.InventoryChanges{Number: strPtr("INV-2")})

	assert.False(t, ok)
	all := inventories.FetchAll()
	assert.Len(t, all, 1)
	assert.Equal(t, "INV-1", all[0].Number)
}

func TestCompleteIsIdempotent(t *testing.T) {
	inventories, _, _ := newTestStores()
	inv := inventories.Create(models.InventoryChanges{})

	first, ok := inventories.Complete(inv.ID)
	assert.True(t, ok)
	assert.Equal(t, "completed", first.Status.Code)
	assert.Equal(t, "Завершено", first.Status.DisplayValue)

	second, ok := inventories.Complete(inv.ID)
	assert.True(t, ok)
	assert.Equal(t, first, second)

	_, ok = inventories.Complete("missing")
	assert.False(t, ok)
}

func TestRemoveCascadesToItems(t *testing.T) {
	inventories, items, _ := newTestStores()
	inv := inventories.Create(models.InventoryChanges{})
	other := inventories.Create(models.InventoryChanges{})

	items.CreateBulk([]models.InventoryItemChanges{
		{InventoryID: &inv.ID, ProductID: strPtr("p1")},
		{InventoryID: &inv.ID, ProductID: strPtr("p2")},
		{InventoryID: &other.ID, ProductID: strPtr("p3")},
	})

	inventories.Remove(inv.ID)

	assert.Empty(t, items.FetchAllByInventory(inv.ID))
	assert.Len(t, items.FetchAllByInventory(other.ID), 1)

	_, ok := inventories.Fetch(inv.ID)
	assert.False(t, ok)

	// removing an absent header is a no-op
	inventories.Remove("missing")
	assert.Len(t, inventories.FetchAll(), 1)
}

func TestInitializeReloadsPersistedState(t *testing.T) {
	inventories, _, mem := newTestStores()
	created := inventories.Create(models.InventoryChanges{Number: strPtr("INV-7")})

	reloadedItems := NewItemStore(mem, zap.NewNop())
	reloaded := NewStore(mem, reloadedItems, zap.NewNop())
	reloaded.Initialize()

	all := reloaded.FetchAll()
	assert.Len(t, all, 1)
	assert.Equal(t, created, all[0])
}

func TestInitializeToleratesMalformedStorage(t *testing.T) {
	mem := storage.NewMemoryStore()
	assert.NoError(t, mem.Write(storage.KeyInventories, "not json at all"))

	items := NewItemStore(mem, zap.NewNop())
	inventories := NewStore(mem, items, zap.NewNop())

	assert.NotPanics(t, inventories.Initialize)
	assert.Empty(t, inventories.FetchAll())
}
