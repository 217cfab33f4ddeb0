package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jgoulah/rentaldash/internal/loader"
	"github.com/jgoulah/rentaldash/pkg/models"
	_ "modernc.org/sqlite"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
	path string
}

var _ loader.Source = (*DB)(nil)

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn, path: dbPath}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_rentals (
		date TEXT PRIMARY KEY,
		working_day INTEGER NOT NULL,
		holiday INTEGER NOT NULL,
		weekday INTEGER NOT NULL,
		weather INTEGER NOT NULL,
		rentals INTEGER NOT NULL,
		imported_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS hourly_rentals (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		time_of_day TEXT NOT NULL,
		rentals INTEGER NOT NULL,
		imported_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_hourly_date ON hourly_rentals(date);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// ReplaceDaily swaps the stored day table for records in a single transaction
func (db *DB) ReplaceDaily(records []models.DailyRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM daily_rentals`); err != nil {
		return fmt.Errorf("clearing daily rentals: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO daily_rentals (date, working_day, holiday, weekday, weather, rentals, imported_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	importedAt := time.Now().UTC().Format(time.RFC3339)
	for _, r := range records {
		_, err := stmt.Exec(r.Date.Format(models.DateLayout), boolInt(r.WorkingDay), boolInt(r.Holiday),
			int(r.Weekday), int(r.Weather), r.Rentals, importedAt)
		if err != nil {
			return fmt.Errorf("inserting daily rentals for %s: %w", r.Date.Format(models.DateLayout), err)
		}
	}

	return tx.Commit()
}

// ReplaceHourly swaps the stored hour table for records in a single transaction
func (db *DB) ReplaceHourly(records []models.HourlyRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM hourly_rentals`); err != nil {
		return fmt.Errorf("clearing hourly rentals: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO hourly_rentals (date, time_of_day, rentals, imported_at)
	VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	importedAt := time.Now().UTC().Format(time.RFC3339)
	for _, r := range records {
		if _, err := stmt.Exec(r.Date.Format(models.DateLayout), r.TimeOfDay.String(), r.Rentals, importedAt); err != nil {
			return fmt.Errorf("inserting hourly rentals for %s: %w", r.Date.Format(models.DateLayout), err)
		}
	}

	return tx.Commit()
}

// LoadDailyRecords retrieves the whole day table, ordered by date
func (db *DB) LoadDailyRecords() ([]models.DailyRecord, error) {
	rows, err := db.conn.Query(`
	SELECT date, working_day, holiday, weekday, weather, rentals
	FROM daily_rentals
	ORDER BY date
	`)
	if err != nil {
		return nil, &loader.LoadError{Path: db.path, Err: fmt.Errorf("querying daily rentals: %w", err)}
	}
	defer rows.Close()

	var results []models.DailyRecord
	for rows.Next() {
		var r models.DailyRecord
		var dateStr string
		var working, holiday int

		if err := rows.Scan(&dateStr, &working, &holiday, &r.Weekday, &r.Weather, &r.Rentals); err != nil {
			return nil, &loader.LoadError{Path: db.path, Err: fmt.Errorf("scanning row: %w", err)}
		}

		r.Date, err = time.Parse(models.DateLayout, dateStr)
		if err != nil {
			return nil, &loader.LoadError{Path: db.path, Err: fmt.Errorf("parsing date: %w", err)}
		}
		r.WorkingDay = working != 0
		r.Holiday = holiday != 0

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, &loader.LoadError{Path: db.path, Err: err}
	}
	return results, nil
}

// LoadHourlyRecords retrieves the whole hour table, ordered by date
func (db *DB) LoadHourlyRecords() ([]models.HourlyRecord, error) {
	rows, err := db.conn.Query(`
	SELECT date, time_of_day, rentals
	FROM hourly_rentals
	ORDER BY date, id
	`)
	if err != nil {
		return nil, &loader.LoadError{Path: db.path, Err: fmt.Errorf("querying hourly rentals: %w", err)}
	}
	defer rows.Close()

	var results []models.HourlyRecord
	for rows.Next() {
		var r models.HourlyRecord
		var dateStr, bucket string

		if err := rows.Scan(&dateStr, &bucket, &r.Rentals); err != nil {
			return nil, &loader.LoadError{Path: db.path, Err: fmt.Errorf("scanning row: %w", err)}
		}

		r.Date, err = time.Parse(models.DateLayout, dateStr)
		if err != nil {
			return nil, &loader.LoadError{Path: db.path, Err: fmt.Errorf("parsing date: %w", err)}
		}
		r.TimeOfDay, err = models.ParseTimeOfDay(bucket)
		if err != nil {
			return nil, &loader.LoadError{Path: db.path, Err: err}
		}

		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, &loader.LoadError{Path: db.path, Err: err}
	}
	return results, nil
}

// Stats describes what is currently stored
type Stats struct {
	DailyCount  int
	HourlyCount int
	Span        models.DateWindow // zero when the day table is empty
}

// Stats returns record counts and the observed date span of the day table
func (db *DB) Stats() (Stats, error) {
	var stats Stats

	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM daily_rentals`).Scan(&stats.DailyCount); err != nil {
		return stats, fmt.Errorf("counting daily rentals: %w", err)
	}
	if err := db.conn.QueryRow(`SELECT COUNT(*) FROM hourly_rentals`).Scan(&stats.HourlyCount); err != nil {
		return stats, fmt.Errorf("counting hourly rentals: %w", err)
	}
	if stats.DailyCount == 0 {
		return stats, nil
	}

	var minStr, maxStr string
	if err := db.conn.QueryRow(`SELECT MIN(date), MAX(date) FROM daily_rentals`).Scan(&minStr, &maxStr); err != nil {
		return stats, fmt.Errorf("querying date span: %w", err)
	}

	start, err := time.Parse(models.DateLayout, minStr)
	if err != nil {
		return stats, fmt.Errorf("parsing date: %w", err)
	}
	end, err := time.Parse(models.DateLayout, maxStr)
	if err != nil {
		return stats, fmt.Errorf("parsing date: %w", err)
	}
	stats.Span = models.DateWindow{Start: start, End: end}

	return stats, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
