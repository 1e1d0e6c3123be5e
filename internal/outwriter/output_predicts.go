package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// WritePredictResults outputs the AOS/LOS predicts, dispatching based on the
// output format configured.
func WritePredictResults(sched *schema.PassSchedule, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONPredicts(w, sched)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPredicts(w, sched)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported by the log export command")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePredictsTable(w, sched)
		}, "Wrote table")
	}
}

// predictRow is one event row in the predicts output.
type predictRow struct {
	Event  string `json:"event"`
	Local  string `json:"local"`
	UTC    string `json:"utc"`
	School string `json:"school"`
}

// buildPredictRows derives the display rows for both pass events.
func buildPredictRows(sched *schema.PassSchedule) []predictRow {
	events := []struct {
		name string
		at   time.Time
	}{
		{"AOS", sched.AOS},
		{"LOS", sched.LOS},
	}

	rows := make([]predictRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, predictRow{
			Event:  ev.name,
			Local:  schema.FormatInstant(ev.at),
			UTC:    schema.FormatInstant(ev.at.UTC()),
			School: schema.FormatInstant(sched.SchoolTime(ev.at)),
		})
	}
	return rows
}

// writePredictsTable generates and writes the human-readable predicts table.
func writePredictsTable(w io.Writer, sched *schema.PassSchedule) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Event", "Local", "UTC", fmt.Sprintf("School (%s)", contract.ZoneAbbrev(sched.SchoolOffsetHours))})

	var data [][]string
	for _, row := range buildPredictRows(sched) {
		data = append(data, []string{row.Event, row.Local, row.UTC, row.School})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Pass duration: %v\n", sched.Duration())
	return err
}

// writeCSVPredicts writes the predicts in CSV format.
func writeCSVPredicts(w io.Writer, sched *schema.PassSchedule) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"event", "local", "utc", "school"}); err != nil {
		return err
	}
	for _, row := range buildPredictRows(sched) {
		if err := csvWriter.Write([]string{row.Event, row.Local, row.UTC, row.School}); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONPredicts writes the predicts in JSON format.
func writeJSONPredicts(w io.Writer, sched *schema.PassSchedule) error {
	type jsonPredicts struct {
		Events          []predictRow `json:"events"`
		DurationSeconds float64      `json:"duration_seconds"`
		SchoolOffset    float64      `json:"school_offset_hours"`
	}

	return writeJSON(w, jsonPredicts{
		Events:          buildPredictRows(sched),
		DurationSeconds: sched.Duration().Seconds(),
		SchoolOffset:    sched.SchoolOffsetHours,
	})
}
