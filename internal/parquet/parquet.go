// Package parquet provides data structures and functions for exporting pass
// log data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/arissops/passclock/schema"
)

// PassEventRecord represents a single recorded pass lifecycle event.
// This struct maps to the pass_events database table.
type PassEventRecord struct {
	// EventTime is when the transition was observed (stored as TIMESTAMP with nanosecond precision)
	EventTime time.Time `parquet:"event_time,snappy"`

	// EventType identifies the transition (schedule_loaded, aos_reached, los_reached)
	EventType string `parquet:"event_type,snappy"`

	// AOSTime is the schedule's acquisition of signal instant
	AOSTime time.Time `parquet:"aos_time,snappy"`

	// LOSTime is the schedule's loss of signal instant
	LOSTime time.Time `parquet:"los_time,snappy"`

	// Detail contains free-form context for the event (nullable)
	Detail *string `parquet:"detail,optional,snappy"`
}

// WritePassEventsParquet writes a slice of PassEventRecord structs to a Parquet file.
func WritePassEventsParquet(data []PassEventRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the PassEventRecord struct tags
	writer := parquet.NewGenericWriter[PassEventRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertPassEventRecords converts schema.PassEvent to PassEventRecord for Parquet export.
func ConvertPassEventRecords(events []schema.PassEvent) []PassEventRecord {
	result := make([]PassEventRecord, len(events))
	for i, ev := range events {
		rec := PassEventRecord{
			EventTime: ev.EventTime,
			EventType: string(ev.EventType),
			AOSTime:   ev.AOS,
			LOSTime:   ev.LOS,
		}
		if ev.Detail != "" {
			detail := ev.Detail
			rec.Detail = &detail
		}
		result[i] = rec
	}
	return result
}
