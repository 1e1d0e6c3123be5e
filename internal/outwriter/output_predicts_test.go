package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// predictsConfig returns a config that writes to a temp file in the given
// format.
func predictsConfig(t *testing.T, output schema.OutputMode) (*contract.Config, string) {
	t.Helper()
	outFile := filepath.Join(t.TempDir(), "predicts.out")
	return &contract.Config{
		Output:     output,
		OutputFile: outFile,
		Location:   time.FixedZone("EST", -5*3600),
	}, outFile
}

func predictsSchedule() *schema.PassSchedule {
	loc := time.FixedZone("EST", -5*3600)
	return &schema.PassSchedule{
		SchoolOffsetHours: -5,
		AOS:               time.Date(2024, 9, 4, 12, 0, 0, 0, loc),
		LOS:               time.Date(2024, 9, 4, 12, 10, 0, 0, loc),
	}
}

// TestWritePredictsTable renders both events with local and UTC times.
func TestWritePredictsTable(t *testing.T) {
	cfg, outFile := predictsConfig(t, schema.TextOut)
	require.NoError(t, WritePredictResults(predictsSchedule(), cfg))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "AOS")
	assert.Contains(t, out, "LOS")
	assert.Contains(t, out, "2024-09-04 12:00:00")
	// 12:00 EST resolves to 17:00 UTC.
	assert.Contains(t, out, "2024-09-04 17:00:00")
	assert.Contains(t, out, "Pass duration: 10m0s")
}

// TestWritePredictsCSV emits a header and one row per event.
func TestWritePredictsCSV(t *testing.T) {
	cfg, outFile := predictsConfig(t, schema.CSVOut)
	require.NoError(t, WritePredictResults(predictsSchedule(), cfg))

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"event", "local", "utc", "school"}, records[0])
	assert.Equal(t, "AOS", records[1][0])
	assert.Equal(t, "LOS", records[2][0])
	assert.Equal(t, "2024-09-04 17:00:00", records[1][2])
	// School offset -5 matches the station zone here, so school == local.
	assert.Equal(t, records[1][1], records[1][3])
}

// TestWritePredictsJSON round-trips through the JSON structure.
func TestWritePredictsJSON(t *testing.T) {
	cfg, outFile := predictsConfig(t, schema.JSONOut)
	require.NoError(t, WritePredictResults(predictsSchedule(), cfg))

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var decoded struct {
		Events []struct {
			Event string `json:"event"`
			Local string `json:"local"`
			UTC   string `json:"utc"`
		} `json:"events"`
		DurationSeconds float64 `json:"duration_seconds"`
		SchoolOffset    float64 `json:"school_offset_hours"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Events, 2)
	assert.Equal(t, "AOS", decoded.Events[0].Event)
	assert.Equal(t, 600.0, decoded.DurationSeconds)
	assert.Equal(t, -5.0, decoded.SchoolOffset)
}

// TestWritePredictsParquetRejected directs parquet users to log export.
func TestWritePredictsParquetRejected(t *testing.T) {
	cfg, _ := predictsConfig(t, schema.ParquetOut)
	err := WritePredictResults(predictsSchedule(), cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "log export"))
}
