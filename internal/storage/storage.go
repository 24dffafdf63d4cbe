package storage

// Keys under which the client state stores mirror their content.
const (
	KeySession        = "session"
	KeyInventories    = "inventories"
	KeyInventoryItems = "inventory_items"
)

// Store is the durable key/value storage shared by the session and
// inventory stores. Semantics follow browser localStorage: last successful
// write wins, no cross-process locking.
type Store interface {
	// Read returns the stored value and whether the key was present.
	Read(key string) (string, bool, error)
	Write(key, value string) error
	// Erase removes the key. Erasing an absent key is not an error.
	Erase(key string) error
}
