package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// WritePassLogResults outputs recorded pass events, dispatching based on the
// output format configured.
func WritePassLogResults(events []schema.PassEvent, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONPassLog(w, events)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPassLog(w, events)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported by the log export command")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePassLogTable(w, events)
		}, "Wrote table")
	}
}

// WritePassLogStatus prints store health information to the writer.
func WritePassLogStatus(w io.Writer, status schema.PassLogStatus) error {
	if _, err := fmt.Fprintf(w, "Backend: %s\n", status.Backend); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Connected: %t\n", status.Connected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total events: %d\n", status.TotalEvents); err != nil {
		return err
	}
	if status.TotalEvents > 0 {
		if _, err := fmt.Fprintf(w, "First event: %s\n", schema.FormatInstant(status.FirstEvent)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Last event: %s\n", schema.FormatInstant(status.LastEvent)); err != nil {
			return err
		}
	}
	return nil
}

// writePassLogTable generates and writes the human-readable event table.
func writePassLogTable(w io.Writer, events []schema.PassEvent) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, "No pass events recorded")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Time (UTC)", "Event", "AOS (UTC)", "LOS (UTC)", "Detail"})

	var data [][]string
	for _, ev := range events {
		data = append(data, []string{
			schema.FormatInstant(ev.EventTime.UTC()),
			string(ev.EventType),
			schema.FormatInstant(ev.AOS.UTC()),
			schema.FormatInstant(ev.LOS.UTC()),
			ev.Detail,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d events, newest first\n", len(events))
	return err
}

// writeCSVPassLog writes the events in CSV format.
func writeCSVPassLog(w io.Writer, events []schema.PassEvent) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write([]string{"event_time_utc", "event_type", "aos_utc", "los_utc", "detail"}); err != nil {
		return err
	}
	for _, ev := range events {
		rec := []string{
			schema.FormatInstant(ev.EventTime.UTC()),
			string(ev.EventType),
			schema.FormatInstant(ev.AOS.UTC()),
			schema.FormatInstant(ev.LOS.UTC()),
			ev.Detail,
		}
		if err := csvWriter.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONPassLog writes the events in JSON format.
func writeJSONPassLog(w io.Writer, events []schema.PassEvent) error {
	type jsonPassEvent struct {
		EventTime string `json:"event_time_utc"`
		EventType string `json:"event_type"`
		AOS       string `json:"aos_utc"`
		LOS       string `json:"los_utc"`
		Detail    string `json:"detail,omitempty"`
	}

	output := make([]jsonPassEvent, len(events))
	for i, ev := range events {
		output[i] = jsonPassEvent{
			EventTime: schema.FormatInstant(ev.EventTime.UTC()),
			EventType: string(ev.EventType),
			AOS:       schema.FormatInstant(ev.AOS.UTC()),
			LOS:       schema.FormatInstant(ev.LOS.UTC()),
			Detail:    ev.Detail,
		}
	}

	return writeJSON(w, output)
}
