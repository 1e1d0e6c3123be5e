package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arissops/passclock/core"
	"github.com/arissops/passclock/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetPlainStateLabel maps every timer state to its display word.
func TestGetPlainStateLabel(t *testing.T) {
	tests := []struct {
		state schema.TimerState
		want  string
	}{
		{schema.StateRunning, RunningValue},
		{schema.StateWarning, WarningValue},
		{schema.StateAlert, AlertValue},
		{schema.StateStopped, StoppedValue},
		{schema.StateNotStarted, NotStartedValue},
		{schema.StateFrozen, FrozenValue},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetPlainStateLabel(tt.state))
	}
}

// TestGetColorStateLabel keeps the plain word inside the colored string.
func TestGetColorStateLabel(t *testing.T) {
	for _, state := range []schema.TimerState{
		schema.StateRunning,
		schema.StateWarning,
		schema.StateAlert,
		schema.StateStopped,
		schema.StateNotStarted,
		schema.StateFrozen,
	} {
		colored := GetColorStateLabel(state)
		assert.Contains(t, colored, GetPlainStateLabel(state))
	}
}

// TestStateColor never returns nil so callers can Sprint unconditionally.
func TestStateColor(t *testing.T) {
	for _, state := range []schema.TimerState{
		schema.StateRunning,
		schema.StateWarning,
		schema.StateAlert,
		schema.StateStopped,
		schema.StateNotStarted,
		schema.StateFrozen,
	} {
		assert.NotNil(t, StateColor(state))
	}
}

// TestZoneAbbrev covers whole-hour, fractional, and zero offsets.
func TestZoneAbbrev(t *testing.T) {
	tests := []struct {
		offset float64
		want   string
	}{
		{0, "UTC"},
		{-5, "UTC-5"},
		{9, "UTC+9"},
		{-2.5, "UTC-2.5"},
		{5.5, "UTC+5.5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneAbbrev(tt.offset))
	}
}

// TestParseBoolString accepts the documented spellings and rejects others.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

// TestSelectOutputFile returns stdout for empty paths and creates real files
// otherwise.
func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.json")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.NotEqual(t, os.Stdout, f)
}

// TestGetLogDBFilePath resolves under the home directory.
func TestGetLogDBFilePath(t *testing.T) {
	path := GetLogDBFilePath()
	assert.True(t, strings.HasSuffix(path, ".passclock_log.db"))
}

// TestWriteDefaultScheduleFile writes a sample schedule that the loader
// accepts without errors, and refuses to overwrite it.
func TestWriteDefaultScheduleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passclock_config.txt")
	require.NoError(t, WriteDefaultScheduleFile(path))

	loc := time.FixedZone("EST", -5*3600)
	sched, errs, err := core.LoadFile(path, loc)
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, -5.0, sched.SchoolOffsetHours)
	assert.True(t, sched.AOS.Before(sched.LOS))

	// Second write must not clobber the existing file.
	assert.Error(t, WriteDefaultScheduleFile(path))
}

// TestWriteReadmeFile writes the companion readme.
func TestWriteReadmeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passclock_readme.txt")
	require.NoError(t, WriteReadmeFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "passclock")
}
