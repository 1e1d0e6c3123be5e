package passlog

import (
	"github.com/stretchr/testify/mock"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// MockPassLogManager is a mock implementation of PassLogManager for testing.
type MockPassLogManager struct {
	mock.Mock
}

var _ contract.PassLogManager = &MockPassLogManager{} // Compile-time check

// GetEventStore implements the PassLogManager interface.
func (m *MockPassLogManager) GetEventStore() contract.PassLogStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.PassLogStore)
	return store
}

// MockPassLogStore is a mock implementation of PassLogStore for testing.
type MockPassLogStore struct {
	mock.Mock
}

var _ contract.PassLogStore = &MockPassLogStore{} // Compile-time check

// Append implements the PassLogStore interface.
func (m *MockPassLogStore) Append(ev schema.PassEvent) error {
	args := m.Called(ev)
	return args.Error(0)
}

// List implements the PassLogStore interface.
func (m *MockPassLogStore) List(limit int) ([]schema.PassEvent, error) {
	args := m.Called(limit)
	events, _ := args.Get(0).([]schema.PassEvent)
	return events, args.Error(1)
}

// Clear implements the PassLogStore interface.
func (m *MockPassLogStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the PassLogStore interface.
func (m *MockPassLogStore) GetStatus() (schema.PassLogStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.PassLogStatus), args.Error(1)
}

// Close implements the PassLogStore interface.
func (m *MockPassLogStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
