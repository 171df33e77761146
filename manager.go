// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds manager configuration options.
type Config struct {
	// Strict surfaces every failure as a returned error. When false, failures
	// are logged, recorded for LastErr, and the operation returns its failure
	// value (false or an empty result) with a nil error.
	Strict bool

	// Logger for operational logging and failure diagnostics.
	// Uses slog.Default() if nil.
	Logger *slog.Logger

	// BusyTimeout is how long SQLite waits on a locked database before
	// failing a statement. Default: 5s.
	BusyTimeout time.Duration

	// ConnectTimeout bounds opening and verifying the connection.
	// Default: 5s.
	ConnectTimeout time.Duration
}

// defaults returns a copy of cfg with default values applied.
func (cfg Config) defaults() Config {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	return cfg
}

// Manager owns at most one SQLite connection and exposes generic CRUD and
// schema operations on it.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	cfg  Config
	path string

	// db and conn are both set while connected and both nil otherwise.
	// conn is the pinned connection every statement runs on.
	db   *sql.DB
	conn *sql.Conn

	lastErr error
}

// New returns a disconnected manager.
func New(cfg Config) *Manager {
	return &Manager{cfg: cfg.defaults()}
}

// IsConnected reports whether the manager holds an open connection.
func (m *Manager) IsConnected() bool {
	return m.conn != nil
}

// Path returns the path of the current connection, or of the last one
// attempted.
func (m *Manager) Path() string {
	return m.path
}

// Strict reports whether failures are returned as errors.
func (m *Manager) Strict() bool {
	return m.cfg.Strict
}

func (m *Manager) String() string {
	status := "disconnected"
	if m.IsConnected() {
		status = "connected"
	}
	return fmt.Sprintf("database: %s\nstatus: %s", m.path, status)
}

// Connect opens the database at path. Use ":memory:" for an in-memory
// database. A missing file is created; its parent directory must exist.
//
// Connecting while already connected fails with ErrAlreadyConnected and
// leaves the open connection untouched.
func (m *Manager) Connect(ctx context.Context, path string) (bool, error) {
	const op = "connect"
	if m.IsConnected() {
		return false, m.fail(op, fmt.Errorf("%s %s: %w", op, path, ErrAlreadyConnected))
	}
	m.path = path
	if !isMemoryPath(path) {
		if err := validatePath(path); err != nil {
			return false, m.fail(op, fmt.Errorf("%s: %w: %w", op, ErrValidation, err))
		}
	}

	db, conn, err := m.open(ctx, path)
	if err != nil {
		return false, m.fail(op, engineError(op, err))
	}
	m.db, m.conn = db, conn
	m.lastErr = nil

	m.cfg.Logger.Info("connected", "path", path)
	return true, nil
}

// open opens the engine handle and pins a single connection on it.
func (m *Manager) open(ctx context.Context, path string) (*sql.DB, *sql.Conn, error) {
	dsn := buildDSN(path, connectionPragmas(m.cfg.BusyTimeout))
	m.cfg.Logger.Debug("opening database", "driver", driverName, "dsn", dsn)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}

	// Ensure cleanup on error
	success := false
	defer func() {
		if !success {
			db.Close()
		}
	}()

	// One connection for the lifetime of the manager; an in-memory
	// database lives only as long as it does.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	openCtx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	conn, err := db.Conn(openCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("conn: %w", err)
	}
	if err := conn.PingContext(openCtx); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}

	success = true
	return db, conn, nil
}

// Close releases the connection and then the engine handle. It is safe to
// call at any time, including when never connected.
func (m *Manager) Close() error {
	var errs []error
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close conn: %w", err))
		}
		m.conn = nil
	}
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		m.db = nil
		m.cfg.Logger.Info("closed", "path", m.path)
	}
	return errors.Join(errs...)
}

// exec runs a statement that returns no rows.
func (m *Manager) exec(ctx context.Context, c execer, query string, args ...any) error {
	m.cfg.Logger.Debug("exec", "query", query, "args", len(args))
	_, err := c.ExecContext(ctx, query, args...)
	return err
}

// queryRows runs a statement and collects every row.
func (m *Manager) queryRows(ctx context.Context, c querier, query string, args ...any) ([]Row, error) {
	m.cfg.Logger.Debug("query", "query", query, "args", len(args))
	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRows(rows)
}

// scanRows converts every remaining row into a Row.
func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var result []Row
	for rows.Next() {
		cells := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, c := range cells {
			row[i] = ValueOf(c)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// withTx runs fn in a transaction on conn, rolling back when fn fails.
func withTx(ctx context.Context, conn *sql.Conn, fn func(tx *sql.Tx) error) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// isMemoryPath returns true if path indicates an in-memory database.
func isMemoryPath(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:")
}

// uriBase returns the URI filename for path. A "file::memory:" URI is kept
// as given, with its parameters; a file path is escaped so that '?', '#'
// and '%' stay part of the name.
func uriBase(path string) string {
	switch {
	case path == ":memory:":
		return "file::memory:"
	case isMemoryPath(path):
		return path
	}
	return "file:" + uriEscaper.Replace(path)
}

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// validatePath checks that a path can hold a database file.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("database path is empty")
	}
	if isDirectory(path) {
		return fmt.Errorf("%s: path is a directory", path)
	}
	dir := filepath.Dir(path)
	if !isDirectory(dir) {
		return fmt.Errorf("%s: parent directory does not exist", dir)
	}
	return nil
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
