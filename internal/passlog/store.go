package passlog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/arissops/passclock/internal/contract"
	"github.com/arissops/passclock/schema"
)

// PassLogStoreImpl handles durable event storage using various database backends.
type PassLogStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.PassLogStore = &PassLogStoreImpl{} // Compile-time check

// NewPassLogStore initializes and returns a new PassLogStore based on the
// backend type.
func NewPassLogStore(backend schema.DatabaseBackend, connStr string) (contract.PassLogStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetLogDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite pass log at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL pass log: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL pass log: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled logging
		return &PassLogStoreImpl{
			db:         nil,
			backend:    backend,
			driverName: "",
			connStr:    connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported pass log backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", passEventsTable, err)
	}

	return &PassLogStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				event_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				event_time BIGINT NOT NULL,
				event_type VARCHAR(64) NOT NULL,
				aos_time BIGINT NOT NULL,
				los_time BIGINT NOT NULL,
				detail TEXT
			);
		`, passEventsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				event_id BIGSERIAL PRIMARY KEY,
				event_time BIGINT NOT NULL,
				event_type TEXT NOT NULL,
				aos_time BIGINT NOT NULL,
				los_time BIGINT NOT NULL,
				detail TEXT
			);
		`, passEventsTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				event_id INTEGER PRIMARY KEY AUTOINCREMENT,
				event_time INTEGER NOT NULL,
				event_type TEXT NOT NULL,
				aos_time INTEGER NOT NULL,
				los_time INTEGER NOT NULL,
				detail TEXT
			);
		`, passEventsTable)
	}
}

// getPlaceholders returns n parameter placeholders for the backend.
func (ps *PassLogStoreImpl) getPlaceholders(n int) []string {
	out := make([]string, n)
	for i := range out {
		if ps.backend == schema.PostgreSQLBackend {
			out[i] = fmt.Sprintf("$%d", i+1)
		} else {
			out[i] = "?"
		}
	}
	return out
}

// Append records a single pass lifecycle event.
func (ps *PassLogStoreImpl) Append(ev schema.PassEvent) error {
	// Skip for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	ph := ps.getPlaceholders(5)
	query := fmt.Sprintf(
		`INSERT INTO %s (event_time, event_type, aos_time, los_time, detail) VALUES (%s, %s, %s, %s, %s)`,
		passEventsTable, ph[0], ph[1], ph[2], ph[3], ph[4])

	_, err := ps.db.Exec(query,
		ev.EventTime.Unix(), string(ev.EventType), ev.AOS.Unix(), ev.LOS.Unix(), ev.Detail)
	if err != nil {
		return fmt.Errorf("failed to append pass event: %w", err)
	}
	return nil
}

// List returns the most recent events, newest first, up to limit.
func (ps *PassLogStoreImpl) List(limit int) ([]schema.PassEvent, error) {
	// Empty result for NoneBackend
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, nil
	}

	ph := ps.getPlaceholders(1)
	query := fmt.Sprintf(
		`SELECT event_time, event_type, aos_time, los_time, detail FROM %s ORDER BY event_time DESC, event_id DESC LIMIT %s`,
		passEventsTable, ph[0])

	rows, err := ps.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pass events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []schema.PassEvent
	for rows.Next() {
		var evTime, aosTime, losTime int64
		var evType string
		var detail sql.NullString
		if err := rows.Scan(&evTime, &evType, &aosTime, &losTime, &detail); err != nil {
			return nil, fmt.Errorf("failed to scan pass event: %w", err)
		}
		events = append(events, schema.PassEvent{
			EventTime: time.Unix(evTime, 0).UTC(),
			EventType: schema.EventType(evType),
			AOS:       time.Unix(aosTime, 0).UTC(),
			LOS:       time.Unix(losTime, 0).UTC(),
			Detail:    detail.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pass events: %w", err)
	}
	return events, nil
}

// Clear removes all recorded events.
func (ps *PassLogStoreImpl) Clear() error {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil
	}

	query := fmt.Sprintf("DELETE FROM %s", passEventsTable)
	if _, err := ps.db.Exec(query); err != nil {
		return fmt.Errorf("failed to clear pass events: %w", err)
	}
	return nil
}

// Close closes the underlying DB connection.
func (ps *PassLogStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// GetStatus returns status information about the pass log store.
func (ps *PassLogStoreImpl) GetStatus() (schema.PassLogStatus, error) {
	status := schema.PassLogStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", passEventsTable)
	row := ps.db.QueryRow(countQuery)
	if err := row.Scan(&status.TotalEvents); err != nil {
		return status, fmt.Errorf("failed to get total events: %w", err)
	}

	if status.TotalEvents == 0 {
		return status, nil
	}

	firstQuery := fmt.Sprintf("SELECT MIN(event_time) FROM %s", passEventsTable)
	row = ps.db.QueryRow(firstQuery)
	var firstTs int64
	if err := row.Scan(&firstTs); err != nil {
		return status, fmt.Errorf("failed to get first event time: %w", err)
	}
	status.FirstEvent = time.Unix(firstTs, 0).UTC()

	lastQuery := fmt.Sprintf("SELECT MAX(event_time) FROM %s", passEventsTable)
	row = ps.db.QueryRow(lastQuery)
	var lastTs int64
	if err := row.Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last event time: %w", err)
	}
	status.LastEvent = time.Unix(lastTs, 0).UTC()

	return status, nil
}
