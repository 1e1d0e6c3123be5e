package passlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// newSQLiteStore opens a store backed by a throwaway database file.
func newSQLiteStore(t *testing.T) contract.PassLogStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "passclock_log.db")
	store, err := NewPassLogStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func makeEvent(evType schema.EventType, offset time.Duration) schema.PassEvent {
	aos := time.Date(2024, 9, 4, 17, 0, 0, 0, time.UTC)
	return schema.PassEvent{
		EventTime: aos.Add(offset),
		EventType: evType,
		AOS:       aos,
		LOS:       aos.Add(10 * time.Minute),
		Detail:    "test event",
	}
}

// TestStoreAppendAndList round-trips events through SQLite and checks the
// newest-first ordering.
func TestStoreAppendAndList(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Append(makeEvent(schema.EventScheduleLoaded, -30*time.Minute)))
	require.NoError(t, store.Append(makeEvent(schema.EventAOSReached, 0)))
	require.NoError(t, store.Append(makeEvent(schema.EventLOSReached, 10*time.Minute)))

	events, err := store.List(10)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, schema.EventLOSReached, events[0].EventType)
	assert.Equal(t, schema.EventAOSReached, events[1].EventType)
	assert.Equal(t, schema.EventScheduleLoaded, events[2].EventType)
	assert.Equal(t, "test event", events[0].Detail)
	assert.True(t, events[0].AOS.Before(events[0].LOS))
}

// TestStoreListLimit honors the row limit.
func TestStoreListLimit(t *testing.T) {
	store := newSQLiteStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(makeEvent(schema.EventAOSReached, time.Duration(i)*time.Minute)))
	}

	events, err := store.List(2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

// TestStoreClear wipes the table but keeps the store usable.
func TestStoreClear(t *testing.T) {
	store := newSQLiteStore(t)

	require.NoError(t, store.Append(makeEvent(schema.EventAOSReached, 0)))
	require.NoError(t, store.Clear())

	events, err := store.List(10)
	require.NoError(t, err)
	assert.Empty(t, events)

	// Still accepts new events after a clear.
	require.NoError(t, store.Append(makeEvent(schema.EventLOSReached, 10*time.Minute)))
	events, err = store.List(10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

// TestStoreGetStatus reports counts and first/last event times.
func TestStoreGetStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalEvents)

	first := makeEvent(schema.EventScheduleLoaded, -30*time.Minute)
	last := makeEvent(schema.EventLOSReached, 10*time.Minute)
	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(last))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEvents)
	assert.Equal(t, first.EventTime.Unix(), status.FirstEvent.Unix())
	assert.Equal(t, last.EventTime.Unix(), status.LastEvent.Unix())
}

// TestStoreNoneBackend is a silent no-op for every operation.
func TestStoreNoneBackend(t *testing.T) {
	store, err := NewPassLogStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.NoError(t, store.Append(makeEvent(schema.EventAOSReached, 0)))

	events, err := store.List(10)
	require.NoError(t, err)
	assert.Empty(t, events)

	assert.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Zero(t, status.TotalEvents)
}

// TestStoreUnsupportedBackend rejects unknown backend names.
func TestStoreUnsupportedBackend(t *testing.T) {
	_, err := NewPassLogStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
}

// TestMigrateSQLiteUpAndDown applies the migrations to a fresh database and
// rolls them back.
func TestMigrateSQLiteUpAndDown(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	require.NoError(t, MigratePassLog(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigratePassLog(schema.SQLiteBackend, dbPath, 0))
}

// TestMigrateNoneBackend refuses to run without a database.
func TestMigrateNoneBackend(t *testing.T) {
	err := MigratePassLog(schema.NoneBackend, "", -1)
	assert.Error(t, err)
}
