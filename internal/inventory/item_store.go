package inventory

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/storage"
	"github.com/EldarTem/inventoryTrack/pkg/models"
)

// ItemStore manages the counted lines of stock counts, mirrored to durable
// storage after every mutation. Lines are matched by their own id, never by
// product id.
type ItemStore struct {
	mu      sync.Mutex
	storage storage.Store
	log     *zap.Logger
	records []models.InventoryItem
}

func NewItemStore(s storage.Store, log *zap.Logger) *ItemStore {
	return &ItemStore{storage: s, log: log}
}

// Initialize reloads line items from durable storage. Malformed content
// means an empty start; Initialize never fails.
func (s *ItemStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	raw, ok, err := s.storage.Read(storage.KeyInventoryItems)
	if err != nil {
		s.log.Warn("failed to read inventory items", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	var records []models.InventoryItem
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("discarding malformed inventory items snapshot", zap.Error(err))
		return
	}
	s.records = records
}

// FetchAll returns every line item in creation order.
func (s *ItemStore) FetchAll() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.InventoryItem, len(s.records))
	copy(out, s.records)
	return out
}

// FetchAllByInventory returns the lines of one stock count. Pure read.
func (s *ItemStore) FetchAllByInventory(inventoryID string) []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.InventoryItem, 0)
	for _, record := range s.records {
		if record.InventoryID == inventoryID {
			out = append(out, record)
		}
	}
	return out
}

// Create assigns a fresh id, defaults unset fields and appends the line.
func (s *ItemStore) Create(changes models.InventoryItemChanges) models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := newItem(changes)
	s.records = append(s.records, item)
	s.persist()
	return item
}

// CreateBulk appends one line per element and persists once.
func (s *ItemStore) CreateBulk(batch []models.InventoryItemChanges) []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]models.InventoryItem, 0, len(batch))
	for _, changes := range batch {
		item := newItem(changes)
		s.records = append(s.records, item)
		created = append(created, item)
	}
	s.persist()
	return created
}

// Update merges the supplied fields over the existing line. An explicitly
// supplied quantity always replaces the previous one, including an
// explicit 0; only a wholly absent field keeps the previous value. A
// missing id is a no-op, not an error.
func (s *ItemStore) Update(id string, changes models.InventoryItemChanges) (models.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		applyItemChanges(&s.records[i], changes)
		s.persist()
		return s.records[i], true
	}
	return models.InventoryItem{}, false
}

// Remove deletes a single line.
func (s *ItemStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persist()
			return
		}
	}
}

// RemoveByInventory deletes every line of one stock count. The header
// store calls it when a header is removed.
func (s *ItemStore) RemoveByInventory(inventoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, record := range s.records {
		if record.InventoryID != inventoryID {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(s.records) {
		return
	}
	s.records = kept
	s.persist()
}

func newItem(c models.InventoryItemChanges) models.InventoryItem {
	item := models.InventoryItem{ID: uuid.NewString()}
	applyItemChanges(&item, c)
	return item
}

func applyItemChanges(item *models.InventoryItem, c models.InventoryItemChanges) {
	if c.InventoryID != nil {
		item.InventoryID = *c.InventoryID
	}
	if c.ProductID != nil {
		item.ProductID = *c.ProductID
	}
	if c.ProductName != nil {
		item.ProductName = *c.ProductName
	}
	if c.SectionID != nil {
		item.SectionID = *c.SectionID
	}
	if c.SectionName != nil {
		item.SectionName = *c.SectionName
	}
	if c.ExpectedQuantity != nil {
		item.ExpectedQuantity = *c.ExpectedQuantity
	}
	if c.ActualQuantity != nil {
		item.ActualQuantity = *c.ActualQuantity
	}
}

// persist mirrors the records to durable storage; callers hold the lock.
func (s *ItemStore) persist() {
	data, err := json.Marshal(s.records)
	if err != nil {
		s.log.Warn("failed to serialize inventory items", zap.Error(err))
		return
	}
	if err := s.storage.Write(storage.KeyInventoryItems, string(data)); err != nil {
		s.log.Warn("failed to persist inventory items", zap.Error(err))
	}
}
