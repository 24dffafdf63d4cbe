package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/storage"
	"github.com/EldarTem/inventoryTrack/pkg/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestItemCreateFillsDefaults(t *testing.T) {
	_, items, _ := newTestStores()

	item := items.Create(models.InventoryItemChanges{
		InventoryID: strPtr("h1"),
		ProductID:   strPtr("p1"),
	})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "h1", item.InventoryID)
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, "", item.ProductName)
	assert.Equal(t, "", item.SectionID)
	assert.Equal(t, float64(0), item.ExpectedQuantity)
	assert.Equal(t, float64(0), item.ActualQuantity)
}

func TestCreateBulkAssociatesAllWithHeader(t *testing.T) {
	_, items, _ := newTestStores()
	inventoryID := "h1"

	created := items.CreateBulk([]models.InventoryItemChanges{
		{InventoryID: &inventoryID, ProductID: strPtr("p1"), ExpectedQuantity: floatPtr(5)},
		{InventoryID: &inventoryID, ProductID: strPtr("p2"), ExpectedQuantity: floatPtr(0)},
	})

	assert.Len(t, created, 2)
	for _, item := range created {
		assert.Equal(t, "h1", item.InventoryID)
		assert.Equal(t, float64(0), item.ActualQuantity)
	}
	assert.Equal(t, float64(5), created[0].ExpectedQuantity)
	assert.Equal(t, float64(0), created[1].ExpectedQuantity)
	assert.NotEqual(t, created[0].ID, created[1].ID)

	assert.Len(t, items.FetchAllByInventory("h1"), 2)
}

func TestItemUpdateExplicitZeroOverrides(t *testing.T) {
	_, items, _ := newTestStores()
	item := items.Create(models.InventoryItemChanges{
		InventoryID:    strPtr("h1"),
		ProductID:      strPtr("p1"),
		ActualQuantity: floatPtr(7),
	})

	updated, ok := items.Update(item.ID, models.InventoryItemChanges{ActualQuantity: floatPtr(0)})

	assert.True(t, ok)
	assert.Equal(t, float64(0), updated.ActualQuantity)
}

func TestItemUpdateAbsentFieldsKeepPreviousValues(t *testing.T) {
	_, items, _ := newTestStores()
	item := items.Create(models.InventoryItemChanges{
		InventoryID:      strPtr("h1"),
		ProductID:        strPtr("p1"),
		ProductName:      strPtr("Болт М8"),
		ExpectedQuantity: floatPtr(12),
		ActualQuantity:   floatPtr(11),
	})

	updated, ok := items.Update(item.ID, models.InventoryItemChanges{SectionName: strPtr("A-3")})

	assert.True(t, ok)
	assert.Equal(t, "Болт М8", updated.ProductName)
	assert.Equal(t, float64(12), updated.ExpectedQuantity)
	assert.Equal(t, float64(11), updated.ActualQuantity)
	assert.Equal(t, "A-3", updated.SectionName)
}

func TestItemUpdateMatchesByItemID(t *testing.T) {
	_, items, _ := newTestStores()
	first := items.Create(models.InventoryItemChanges{
		InventoryID: strPtr("h1"), ProductID: strPtr("shared"), ActualQuantity: floatPtr(1),
	})
	second := items.Create(models.InventoryItemChanges{
		InventoryID: strPtr("h1"), ProductID: strPtr("shared"), ActualQuantity: floatPtr(2),
	})

	_, ok := items.Update(second.ID, models.InventoryItemChanges{ActualQuantity: floatPtr(9)})
	assert.True(t, ok)

	all := items.FetchAllByInventory("h1")
	assert.Len(t, all, 2)
	for _, item := range all {
		switch item.ID {
		case first.ID:
			assert.Equal(t, float64(1), item.ActualQuantity)
		case second.ID:
			assert.Equal(t, float64(9), item.ActualQuantity)
		}
	}

	_, ok = items.Update("missing", models.InventoryItemChanges{ActualQuantity: floatPtr(3)})
	assert.False(t, ok)
}

func TestItemRemove(t *testing.T) {
	_, items, _ := newTestStores()
	first := items.Create(models.InventoryItemChanges{InventoryID: strPtr("h1")})
	items.Create(models.InventoryItemChanges{InventoryID: strPtr("h1")})

	items.Remove(first.ID)
	assert.Len(t, items.FetchAllByInventory("h1"), 1)

	items.Remove("missing")
	assert.Len(t, items.FetchAllByInventory("h1"), 1)
}

func TestRemoveByInventory(t *testing.T) {
	_, items, _ := newTestStores()
	items.CreateBulk([]models.InventoryItemChanges{
		{InventoryID: strPtr("h1")},
		{InventoryID: strPtr("h2")},
		{InventoryID: strPtr("h1")},
	})

	items.RemoveByInventory("h1")

	assert.Empty(t, items.FetchAllByInventory("h1"))
	assert.Len(t, items.FetchAllByInventory("h2"), 1)
}

func TestFetchAllByInventoryIsPureRead(t *testing.T) {
	_, items, mem := newTestStores()
	items.Create(models.InventoryItemChanges{InventoryID: strPtr("h1")})
	before, _, _ := mem.Read(storage.KeyInventoryItems)

	got := items.FetchAllByInventory("h1")
	assert.Len(t, got, 1)

	after, _, _ := mem.Read(storage.KeyInventoryItems)
	assert.Equal(t, before, after)
}

func TestItemInitializeToleratesMalformedStorage(t *testing.T) {
	mem := storage.NewMemoryStore()
	assert.NoError(t, mem.Write(storage.KeyInventoryItems, `{"broken":`))

	items := NewItemStore(mem, zap.NewNop())
	assert.NotPanics(t, items.Initialize)
	assert.Empty(t, items.FetchAll())
}
