// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/arissops/passclock/schema"
)

// PassLogStore defines the interface for pass event storage.
// This allows mocking the store for testing.
type PassLogStore interface {
	// Append records a single pass lifecycle event.
	Append(ev schema.PassEvent) error

	// List returns the most recent events, newest first, up to limit.
	List(limit int) ([]schema.PassEvent, error)

	// Clear removes all recorded events.
	Clear() error

	// GetStatus returns status information about the pass log store.
	GetStatus() (schema.PassLogStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// PassLogManager defines the interface for managing the pass log store.
// This allows the persistence layer to be mocked for testing.
type PassLogManager interface {
	GetEventStore() PassLogStore
}
