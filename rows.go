// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"context"
	"database/sql"
)

// maxBoundArgs is SQLite's default limit on bound parameters per statement.
const maxBoundArgs = 32766

// ReadTable returns every row of table.
func (m *Manager) ReadTable(ctx context.Context, table string) ([]Row, error) {
	return run(ctx, m, "read table", func(ctx context.Context, conn *sql.Conn) ([]Row, error) {
		rows, err := m.queryRows(ctx, conn, buildSelect(table))
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			m.cfg.Logger.Debug("no rows", "table", table)
		}
		return rows, nil
	})
}

// Search returns the rows of table whose columns equal every value in cond.
func (m *Manager) Search(ctx context.Context, table string, cond Mapping) ([]Row, error) {
	return run(ctx, m, "search", func(ctx context.Context, conn *sql.Conn) ([]Row, error) {
		query, args, err := buildSearch(table, cond)
		if err != nil {
			return nil, err
		}
		return m.queryRows(ctx, conn, query, args...)
	})
}

// Insert adds one row to table.
func (m *Manager) Insert(ctx context.Context, table string, data Mapping) (bool, error) {
	return run(ctx, m, "insert", func(ctx context.Context, conn *sql.Conn) (bool, error) {
		query, args, err := buildInsert(table, data)
		if err != nil {
			return false, err
		}
		if err := m.exec(ctx, conn, query, args...); err != nil {
			return false, err
		}
		return true, nil
	})
}

// BulkInsert adds every mapping in rows to table in one transaction. All
// mappings must have the same set of columns; their order may differ. An empty list is
// rejected with ErrValidation before any statement is issued.
func (m *Manager) BulkInsert(ctx context.Context, table string, rows []Mapping) (bool, error) {
	return run(ctx, m, "bulk insert", func(ctx context.Context, conn *sql.Conn) (bool, error) {
		// validate the whole list up front so nothing is written on a bad row
		if _, _, err := buildBulkInsert(table, rows); err != nil {
			return false, err
		}

		perStmt := max(1, maxBoundArgs/len(rows[0]))
		err := withTx(ctx, conn, func(tx *sql.Tx) error {
			for start := 0; start < len(rows); start += perStmt {
				end := min(start+perStmt, len(rows))
				query, args, err := buildBulkInsert(table, rows[start:end])
				if err != nil {
					return err
				}
				if err := m.exec(ctx, tx, query, args...); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return false, err
		}
		m.cfg.Logger.Debug("bulk insert", "table", table, "rows", len(rows))
		return true, nil
	})
}

// Update sets the columns in data on every row of table matching cond.
func (m *Manager) Update(ctx context.Context, table string, data, cond Mapping) (bool, error) {
	return run(ctx, m, "update", func(ctx context.Context, conn *sql.Conn) (bool, error) {
		query, args, err := buildUpdate(table, data, cond)
		if err != nil {
			return false, err
		}
		if err := m.exec(ctx, conn, query, args...); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Delete removes every row of table matching cond.
func (m *Manager) Delete(ctx context.Context, table string, cond Mapping) (bool, error) {
	return run(ctx, m, "delete", func(ctx context.Context, conn *sql.Conn) (bool, error) {
		query, args, err := buildDelete(table, cond)
		if err != nil {
			return false, err
		}
		if err := m.exec(ctx, conn, query, args...); err != nil {
			return false, err
		}
		return true, nil
	})
}

// CustomQuery executes query verbatim and returns any rows it produces.
func (m *Manager) CustomQuery(ctx context.Context, query string) ([]Row, error) {
	return run(ctx, m, "custom query", func(ctx context.Context, conn *sql.Conn) ([]Row, error) {
		return m.queryRows(ctx, conn, query)
	})
}
