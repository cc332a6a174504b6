// ABOUTME: SQLite database connection and lifecycle management.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required) with per-operation transactions.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// ErrStorageUnavailable is returned when the database cannot be opened or reached.
var ErrStorageUnavailable = errors.New("storage unavailable")

// timestampLayout is fixed-width so that lexical order matches time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB wraps the SQLite connection pool. Each operation takes its own
// transaction from the pool and releases it before returning.
type DB struct {
	db     *sql.DB
	dbPath string
	log    zerolog.Logger
	now    func() time.Time
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger used for storage diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(d *DB) { d.log = l }
}

// WithClock overrides the clock used for created_at stamps.
func WithClock(now func() time.Time) Option {
	return func(d *DB) { d.now = now }
}

// Open opens or creates a SQLite database at the given path and ensures the schema.
func Open(dbPath string, opts ...Option) (*DB, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}

	d := &DB{
		db:     db,
		dbPath: dbPath,
		log:    zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", ErrStorageUnavailable, err)
	}

	// Set file permissions
	if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w", err)
	}

	if err := d.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: initialize schema: %v", ErrStorageUnavailable, err)
	}

	d.log.Debug().Str("path", dbPath).Msg("database ready")
	return d, nil
}

// OpenDefault opens the database at the default XDG data path.
func OpenDefault(opts ...Option) (*DB, error) {
	return Open(DefaultDBPath(), opts...)
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitness")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "fitness_tracker.db")
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Close closes the database connection pool.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// dsn applies pragmas on every pooled connection, not just the first one.
func dsn(dbPath string) string {
	return dbPath +
		"?_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=synchronous(NORMAL)"
}

// withTx runs fn inside a transaction, committing on success and
// rolling back on any error.
func (d *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (d *DB) timestamp() string {
	return formatTimestamp(d.now())
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTimestamp accepts our own layout, RFC3339 variants, and SQLite's
// CURRENT_TIMESTAMP format.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
