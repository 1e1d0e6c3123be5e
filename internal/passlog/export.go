package passlog

import (
	"errors"
	"fmt"

	"github.com/arissops/passclock/internal/parquet"
)

// ExecutePassLogExport exports all recorded pass events to a Parquet file.
func ExecutePassLogExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the event store
	store := Manager.GetEventStore()
	if store == nil {
		return errors.New("pass logging is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get pass log status: %w", err)
	}

	if status.TotalEvents == 0 {
		return errors.New("no pass events found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total pass events: %d\n", status.TotalEvents)

	// Retrieve all events
	events, err := store.List(status.TotalEvents)
	if err != nil {
		return fmt.Errorf("failed to retrieve pass events: %w", err)
	}

	// Convert to Parquet format and write
	records := parquet.ConvertPassEventRecords(events)
	if err := parquet.WritePassEventsParquet(records, outputFile); err != nil {
		return fmt.Errorf("failed to write pass events: %w", err)
	}
	fmt.Printf("Exported %d pass events to: %s\n", len(records), outputFile)

	return nil
}
