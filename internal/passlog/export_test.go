package passlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// withEventStore swaps the global manager's store for the test's lifetime.
func withEventStore(t *testing.T, store contract.PassLogStore) {
	t.Helper()
	Manager.Lock()
	prev := Manager.events
	Manager.events = store
	Manager.Unlock()
	t.Cleanup(func() {
		Manager.Lock()
		Manager.events = prev
		Manager.Unlock()
	})
}

// TestExecutePassLogExport exports recorded events to a Parquet file.
func TestExecutePassLogExport(t *testing.T) {
	store := newSQLiteStore(t)
	withEventStore(t, store)

	require.NoError(t, store.Append(makeEvent(schema.EventScheduleLoaded, -30*time.Minute)))
	require.NoError(t, store.Append(makeEvent(schema.EventAOSReached, 0)))

	outputFile := filepath.Join(t.TempDir(), "events.parquet")
	require.NoError(t, ExecutePassLogExport(outputFile))

	info, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestExecutePassLogExportNoOutput requires an output file path.
func TestExecutePassLogExportNoOutput(t *testing.T) {
	assert.Error(t, ExecutePassLogExport(""))
}

// TestExecutePassLogExportEmpty refuses to export an empty log.
func TestExecutePassLogExportEmpty(t *testing.T) {
	store := newSQLiteStore(t)
	withEventStore(t, store)

	err := ExecutePassLogExport(filepath.Join(t.TempDir(), "events.parquet"))
	assert.Error(t, err)
}

// TestExecutePassLogExportMockStatus verifies error propagation from the store.
func TestExecutePassLogExportMockStatus(t *testing.T) {
	mockStore := &MockPassLogStore{}
	mockStore.On("GetStatus").Return(schema.PassLogStatus{}, assert.AnError)
	withEventStore(t, mockStore)

	err := ExecutePassLogExport(filepath.Join(t.TempDir(), "events.parquet"))
	assert.Error(t, err)
	mockStore.AssertExpectations(t)
}
