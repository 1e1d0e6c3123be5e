//go:build basic

// Package integration contains integration tests for passclock.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
// Or use: make test-integration
package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noLogEnv disables pass logging so tests leave no database behind.
var noLogEnv = []string{"PASSCLOCK_LOG_BACKEND=none"}

// TestInitCheckPredicts runs the init, check and predicts commands end to end
// and verifies the predicts output against the schedule file on disk.
func TestInitCheckPredicts(t *testing.T) {
	workDir := t.TempDir()

	// init writes the sample schedule and readme
	out, err := runPassclockCommand(t, workDir, noLogEnv, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created schedule file")
	require.FileExists(t, filepath.Join(workDir, "passclock_config.txt"))
	require.FileExists(t, filepath.Join(workDir, "passclock_readme.txt"))

	// The sample schedule must pass validation
	out, err = runPassclockCommand(t, workDir, noLogEnv, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Schedule OK")

	// Export predicts as CSV and parse it back
	csvPath := filepath.Join(workDir, "pass.csv")
	_, err = runPassclockCommand(t, workDir, noLogEnv,
		"predicts", "--output", "csv", "--output-file", csvPath)
	require.NoError(t, err)

	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "expected header plus AOS and LOS rows")
	assert.Equal(t, []string{"event", "local", "utc", "school"}, records[0])
	assert.Equal(t, "AOS", records[1][0])
	assert.Equal(t, "LOS", records[2][0])

	// Every column of a row describes the same instant in a different zone
	schoolZone := time.FixedZone("school", -5*3600)
	for _, row := range records[1:] {
		local, err := time.ParseInLocation("2006-01-02 15:04:05", row[1], time.Local)
		require.NoError(t, err)
		utc, err := time.ParseInLocation("2006-01-02 15:04:05", row[2], time.UTC)
		require.NoError(t, err)
		school, err := time.ParseInLocation("2006-01-02 15:04:05", row[3], schoolZone)
		require.NoError(t, err)

		assert.True(t, local.Equal(utc), "local %s and utc %s disagree", row[1], row[2])
		assert.True(t, local.Equal(school), "local %s and school %s disagree", row[1], row[3])
	}
}

// TestCheckRejectsBadSchedule verifies that check exits non-zero when LOS does
// not come after AOS.
func TestCheckRejectsBadSchedule(t *testing.T) {
	workDir := t.TempDir()

	schedule := strings.Join([]string{
		"# reversed pass window",
		"STZ,-5",
		"AOS,2026-03-01 15:00:00",
		"LOS,2026-03-01 14:00:00",
	}, "\n") + "\n"
	schedulePath := filepath.Join(workDir, "passclock_config.txt")
	require.NoError(t, os.WriteFile(schedulePath, []byte(schedule), 0o644))

	out, err := runPassclockCommand(t, workDir, noLogEnv, "check")
	require.Error(t, err, "check must exit non-zero for a reversed window")
	assert.Contains(t, out, "Problem")
}
