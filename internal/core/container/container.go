package container

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/api"
	"github.com/EldarTem/inventoryTrack/internal/guard"
	"github.com/EldarTem/inventoryTrack/internal/inventory"
	"github.com/EldarTem/inventoryTrack/internal/session"
	"github.com/EldarTem/inventoryTrack/internal/storage"
)

// Container wires the client core: durable storage, the session store with
// its remote authenticator, the navigation guard and the stock-count
// stores, plus the HTTP handlers exposing them.
type Container struct {
	Storage        storage.Store
	Sessions       *session.Store
	Guard          *guard.Guard
	Inventories    *inventory.Store
	InventoryItems *inventory.ItemStore

	SessionHandler   *session.Handler
	GuardHandler     *guard.Handler
	InventoryHandler *inventory.Handler
}

// NewAppContainer builds the container, restores the persisted session and
// reloads the stock-count state, mirroring what the browser client did at
// startup.
func NewAppContainer(apiBaseURL, stateDir string, log *zap.Logger) (*Container, error) {
	store, err := storage.NewFileStore(stateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open state directory: %w", err)
	}

	authClient := api.NewAuthClient(api.NewClient(apiBaseURL))
	sessions := session.NewStore(store, authClient, log)
	sessions.Restore()

	items := inventory.NewItemStore(store, log)
	items.Initialize()
	inventories := inventory.NewStore(store, items, log)
	inventories.Initialize()

	navigationGuard := guard.New(sessions, log)

	return &Container{
		Storage:          store,
		Sessions:         sessions,
		Guard:            navigationGuard,
		Inventories:      inventories,
		InventoryItems:   items,
		SessionHandler:   session.NewHandler(sessions, log),
		GuardHandler:     guard.NewHandler(navigationGuard),
		InventoryHandler: inventory.NewHandler(inventories, items),
	}, nil
}
