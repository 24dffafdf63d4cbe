package models

// Reference points at another resource by id plus a label for display.
type Reference struct {
	ID           string `json:"id"`
	DisplayValue string `json:"displayValue"`
}

// InventoryStatus is the lifecycle state of a stock count.
type InventoryStatus struct {
	Code         string `json:"code"`
	DisplayValue string `json:"displayValue"`
}

var (
	InventoryStatusDraft     = InventoryStatus{Code: "draft", DisplayValue: "Черновик"}
	InventoryStatusCompleted = InventoryStatus{Code: "completed", DisplayValue: "Завершено"}
)

// Inventory is the header of a locally managed physical stock count. It is
// never sent to the warehouse API.
type Inventory struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	Status    InventoryStatus `json:"status"`
	Warehouse Reference       `json:"warehouse"`
	CreatedBy Reference       `json:"createdBy"`
	Comment   string          `json:"comment"`
	CreatedAt string          `json:"createdAt"`
}

// InventoryItem is one counted line belonging to a single Inventory.
type InventoryItem struct {
	ID               string  `json:"id"`
	InventoryID      string  `json:"inventoryId"`
	ProductID        string  `json:"productId"`
	ProductName      string  `json:"productName"`
	SectionID        string  `json:"sectionId"`
	SectionName      string  `json:"sectionName"`
	ExpectedQuantity float64 `json:"expectedQuantity"`
	ActualQuantity   float64 `json:"actualQuantity"`
}

// InventoryChanges is a partial header update. A nil field keeps the
// previous value.
type InventoryChanges struct {
	Number    *string          `json:"number"`
	Status    *InventoryStatus `json:"status"`
	Warehouse *Reference       `json:"warehouse"`
	CreatedBy *Reference       `json:"createdBy"`
	Comment   *string          `json:"comment"`
	CreatedAt *string          `json:"createdAt"`
}

// HasChanges reports whether any field is set.
func (c *InventoryChanges) HasChanges() bool {
	return c.Number != nil || c.Status != nil || c.Warehouse != nil ||
		c.CreatedBy != nil || c.Comment != nil || c.CreatedAt != nil
}

// InventoryItemChanges is a partial line-item update. Quantities are
// pointers so an explicit 0 is distinguishable from an absent field.
type InventoryItemChanges struct {
	InventoryID      *string  `json:"inventoryId"`
	ProductID        *string  `json:"productId"`
	ProductName      *string  `json:"productName"`
	SectionID        *string  `json:"sectionId"`
	SectionName      *string  `json:"sectionName"`
	ExpectedQuantity *float64 `json:"expectedQuantity"`
	ActualQuantity   *float64 `json:"actualQuantity"`
}

// HasChanges reports whether any field is set.
func (c *InventoryItemChanges) HasChanges() bool {
	return c.InventoryID != nil || c.ProductID != nil || c.ProductName != nil ||
		c.SectionID != nil || c.SectionName != nil ||
		c.ExpectedQuantity != nil || c.ActualQuantity != nil
}
