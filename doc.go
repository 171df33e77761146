// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package sqlitemgr provides a connection manager with generic CRUD and
// schema operations over a single embedded SQLite database.
//
// The package implements a small, uniform surface where:
//   - A Manager owns at most one connection, opened by Connect and released by Close
//   - Every other operation requires a connection and fails with ErrNotConnected otherwise
//   - Rows and conditions are ordered column/value mappings, always bound as parameters
//   - Failures follow one policy: returned as errors (strict) or logged (lenient)
//
// # Basic Usage
//
//	m := sqlitemgr.New(sqlitemgr.Config{Strict: true})
//	if _, err := m.Connect(ctx, "/var/lib/app/app.db"); err != nil {
//	    return err
//	}
//	defer m.Close()
//
//	_, err := m.CreateTable(ctx, "people", []sqlitemgr.ColumnDef{
//	    {Name: "id", Type: "INTEGER"},
//	    {Name: "name", Type: "TEXT"},
//	}, true)
//	_, err = m.Insert(ctx, "people", sqlitemgr.Mapping{
//	    {Column: "id", Value: sqlitemgr.Int(1)},
//	    {Column: "name", Value: sqlitemgr.Text("a")},
//	})
//	rows, err := m.Search(ctx, "people", sqlitemgr.Mapping{{Column: "name", Value: sqlitemgr.Text("a")}})
//
// Use wraps connect, work and close for callers that want the connection
// released on every path.
//
// # Error Policy
//
// With Config.Strict set, a failed operation returns its failure value
// (false or a nil slice) together with an error that matches one of
// ErrNotConnected, ErrAlreadyConnected, ErrEngine or ErrValidation.
// Without it, the same failure is logged at error level on Config.Logger,
// the error is kept for LastErr, and the failure value is returned with a
// nil error.
//
// # Identifiers
//
// Table and column names are written into statements as given. They are
// not quoted or checked and must come from a trusted source. Values are
// never written into statement text, except by CustomQuery, which runs its
// argument verbatim.
//
// # Driver Support
//
// This package supports two SQLite drivers via build tags:
//   - modernc.org/sqlite (default, pure Go, no CGO)
//   - github.com/mattn/go-sqlite3 (CGO, use -tags mattn)
//
// The selected driver is imported by this package.
package sqlitemgr
