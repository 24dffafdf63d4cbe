package inventory

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/storage"
	"github.com/EldarTem/inventoryTrack/pkg/models"
)

// Store manages stock-count headers. Records are kept in creation order and
// mirrored to durable storage after every mutation. Removing a header
// cascades to its line items through the item store.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	items   *ItemStore
	log     *zap.Logger
	records []models.Inventory
}

func NewStore(s storage.Store, items *ItemStore, log *zap.Logger) *Store {
	return &Store{storage: s, items: items, log: log}
}

// Initialize reloads headers from durable storage. Malformed content means
// an empty start; Initialize never fails.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	raw, ok, err := s.storage.Read(storage.KeyInventories)
	if err != nil {
		s.log.Warn("failed to read inventories", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	var records []models.Inventory
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		s.log.Warn("discarding malformed inventories snapshot", zap.Error(err))
		return
	}
	s.records = records
}

// FetchAll returns every header in creation order.
func (s *Store) FetchAll() []models.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Inventory, len(s.records))
	copy(out, s.records)
	return out
}

// Fetch returns a single header by id.
func (s *Store) Fetch(id string) (models.Inventory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i != -1 {
		return s.records[i], true
	}
	return models.Inventory{}, false
}

// Create assigns a fresh id, fills unset fields with their defaults and
// appends the header.
func (s *Store) Create(changes models.InventoryChanges) models.Inventory {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := models.Inventory{
		ID:        uuid.NewString(),
		Status:    models.InventoryStatusDraft,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	applyInventoryChanges(&inv, changes)
	s.records = append(s.records, inv)
	s.persist()
	return inv
}

// Update merges the supplied fields over the existing header. A missing id
// is a no-op, not an error.
func (s *Store) Update(id string, changes models.InventoryChanges) (models.Inventory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Inventory{}, false
	}
	applyInventoryChanges(&s.records[i], changes)
	s.persist()
	return s.records[i], true
}

// Remove deletes the header and cascades to every line item that
// references it.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i != -1 {
		s.records = append(s.records[:i], s.records[i+1:]...)
		s.persist()
	}
	s.mu.Unlock()

	s.items.RemoveByInventory(id)
}

// Complete marks the header completed. Completing an already completed
// header reaffirms the status; the draft state is never restored.
func (s *Store) Complete(id string) (models.Inventory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Inventory{}, false
	}
	s.records[i].Status = models.InventoryStatusCompleted
	s.persist()
	return s.records[i], true
}

func (s *Store) indexOf(id string) int {
	for i, record := range s.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}

// persist mirrors the records to durable storage; callers hold the lock.
func (s *Store) persist() {
	data, err := json.Marshal(s.records)
	if err != nil {
		s.log.Warn("failed to serialize inventories", zap.Error(err))
		return
	}
	if err := s.storage.Write(storage.KeyInventories, string(data)); err != nil {
		s.log.Warn("failed to persist inventories", zap.Error(err))
	}
}

func applyInventoryChanges(inv *models.Inventory, c models.InventoryChanges) {
	if c.Number != nil {
		inv.Number = *c.Number
	}
	if c.Status != nil {
		inv.Status = *c.Status
	}
	if c.Warehouse != nil {
		inv.Warehouse = *c.Warehouse
	}
	if c.CreatedBy != nil {
		inv.CreatedBy = *c.CreatedBy
	}
	if c.Comment != nil {
		inv.Comment = *c.Comment
	}
	if c.CreatedAt != nil {
		inv.CreatedAt = *c.CreatedAt
	}
}
