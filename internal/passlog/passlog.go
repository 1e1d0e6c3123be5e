// Package passlog stores pass lifecycle events in a database backend.
package passlog

import (
	"fmt"
	"sync"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// passEventsTable is the name of the table for recorded pass events.
const passEventsTable = "pass_events"

// Global Manager instance for main logic.
var (
	Manager   = &PassLogStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// PassLogStoreManager manages the active PassLogStore instance.
type PassLogStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	events       contract.PassLogStore
}

var _ contract.PassLogManager = &PassLogStoreManager{} // Compile-time check

// GetEventStore returns the event PassLogStore.
func (mgr *PassLogStoreManager) GetEventStore() contract.PassLogStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.events
}

// InitLogging initializes the global pass log manager. Safe to call more than
// once; only the first call takes effect.
func InitLogging(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewPassLogStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize pass logging: %w", err)
			return
		}
		Manager.Lock()
		defer Manager.Unlock()
		Manager.events = store
	})

	return initErr
}

// CloseLogging should be called on application shutdown.
func CloseLogging() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.events != nil {
			_ = Manager.events.Close()
		}
	})
}
