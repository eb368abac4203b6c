// Package trace records per-customer checkout traces into a SQLite database
// for offline analysis. The simulation only sees the CheckoutObserver hook;
// everything SQLite-specific stays here.
package trace

import (
	"database/sql"
	"fmt"

	// SQLite driver, used through database/sql.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
)

// CheckoutRecord is one row of the checkouts table: a single served customer.
type CheckoutRecord struct {
	RunID       string
	Customer    string
	Line        int
	NumItems    int
	ServiceTime int64
	ArrivalTime int64
	Checkout    int64
	Wait        int64
}

// batchSize is the number of buffered rows that triggers a flush.
const batchSize = 1000

// Recorder buffers checkout records and writes them to SQLite in batches.
// Every row carries the recorder's run ID, so several runs can share one
// database file. Not safe for concurrent use; the simulation is
// single-threaded, so no locking is needed.
type Recorder struct {
	db    *sql.DB
	runID string
	rows  []CheckoutRecord
}

// NewRecorder opens (or creates) the database at path and prepares the
// checkouts and runs tables.
func NewRecorder(path string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening trace database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS checkouts (
		run_id TEXT,
		customer TEXT,
		line INTEGER,
		num_items INTEGER,
		service_time INTEGER,
		arrival_time INTEGER,
		checkout_time INTEGER,
		wait INTEGER
	);
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		num_customers INTEGER,
		total_time INTEGER,
		max_wait INTEGER
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating trace tables: %w", err)
	}

	return &Recorder{db: db, runID: xid.New().String()}, nil
}

// RunID returns the identifier stamped on every row this recorder writes.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record buffers one checkout row, flushing when the buffer fills.
func (r *Recorder) Record(rec CheckoutRecord) error {
	rec.RunID = r.runID
	r.rows = append(r.rows, rec)
	if len(r.rows) >= batchSize {
		return r.Flush()
	}
	return nil
}

// Flush writes all buffered rows inside a single transaction.
func (r *Recorder) Flush() error {
	if len(r.rows) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning trace transaction: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO checkouts (run_id, customer, line, num_items, service_time,
			arrival_time, checkout_time, wait) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing trace insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range r.rows {
		if _, err := stmt.Exec(rec.RunID, rec.Customer, rec.Line, rec.NumItems,
			rec.ServiceTime, rec.ArrivalTime, rec.Checkout, rec.Wait); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting trace row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing trace rows: %w", err)
	}
	r.rows = r.rows[:0]
	return nil
}

// RecordSummary writes the run's aggregate statistics into the runs table.
func (r *Recorder) RecordSummary(numCustomers int, totalTime, maxWait int64) error {
	_, err := r.db.Exec(
		`INSERT INTO runs (run_id, num_customers, total_time, max_wait) VALUES (?, ?, ?, ?)`,
		r.runID, numCustomers, totalTime, maxWait)
	if err != nil {
		return fmt.Errorf("recording run summary: %w", err)
	}
	return nil
}

// Close flushes any buffered rows and closes the database.
func (r *Recorder) Close() error {
	if err := r.Flush(); err != nil {
		r.db.Close()
		return err
	}
	return r.db.Close()
}
