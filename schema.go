// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"context"
	"database/sql"
	"slices"
)

// ListTableNames returns the user tables in catalog order. SQLite's own
// sqlite_* tables are not included.
func (m *Manager) ListTableNames(ctx context.Context) ([]string, error) {
	return run(ctx, m, "list tables", func(ctx context.Context, conn *sql.Conn) ([]string, error) {
		rows, err := m.queryRows(ctx, conn, buildListTables())
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(rows))
		for _, row := range rows {
			names = append(names, row[0].Str())
		}
		return names, nil
	})
}

// GetColumnNames returns the column names of table in schema order. A
// table that does not exist has no columns.
func (m *Manager) GetColumnNames(ctx context.Context, table string) ([]string, error) {
	return run(ctx, m, "get columns", func(ctx context.Context, conn *sql.Conn) ([]string, error) {
		return m.columnNames(ctx, conn, table)
	})
}

// DescribeTable returns the catalog description of every column of table.
func (m *Manager) DescribeTable(ctx context.Context, table string) ([]ColumnInfo, error) {
	return run(ctx, m, "describe table", func(ctx context.Context, conn *sql.Conn) ([]ColumnInfo, error) {
		return m.tableInfo(ctx, conn, table)
	})
}

// tableInfo reads PRAGMA table_info. Its columns are
// cid, name, type, notnull, dflt_value, pk.
func (m *Manager) tableInfo(ctx context.Context, c querier, table string) ([]ColumnInfo, error) {
	rows, err := m.queryRows(ctx, c, buildTableInfo(table))
	if err != nil {
		return nil, err
	}
	cols := make([]ColumnInfo, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		cols = append(cols, ColumnInfo{
			Name:       row[1].Str(),
			Type:       row[2].Str(),
			NotNull:    row[3].Int64() != 0,
			Default:    row[4],
			PrimaryKey: row[5].Int64() != 0,
		})
	}
	return cols, nil
}

func (m *Manager) columnNames(ctx context.Context, c querier, table string) ([]string, error) {
	info, err := m.tableInfo(ctx, c, table)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(info))
	for i, col := range info {
		names[i] = col.Name
	}
	return names, nil
}

// CreateTable creates table with the given columns. When applyConstraints
// is set, columns declared INTEGER, REAL or NUMERIC get a CHECK clause that
// rejects values of any other storage class.
func (m *Manager) CreateTable(ctx context.Context, table string, cols []ColumnDef, applyConstraints bool) (bool, error) {
	return run(ctx, m, "create table", func(ctx context.Context, conn *sql.Conn) (bool, error) {
		query, err := buildCreateTable(table, cols, applyConstraints)
		if err != nil {
			return false, err
		}
		if err := m.exec(ctx, conn, query); err != nil {
			return false, err
		}
		m.cfg.Logger.Debug("table created", "table", table)
		return true, nil
	})
}

// AddColumn appends a column to table.
func (m *Manager) AddColumn(ctx context.Context, table, name, declType string) (bool, error) {
	return run(ctx, m, "add column", func(ctx context.Context, conn *sql.Conn) (bool, error) {
		if err := m.exec(ctx, conn, buildAddColumn(table, name, declType)); err != nil {
			return false, err
		}
		return true, nil
	})
}

// DropColumn removes a column by rebuilding table without it. The rebuild
// runs in one transaction; on failure the table is left as it was.
//
// The rebuilt table keeps the data and column affinities of the kept
// columns but loses their constraints, keys and defaults.
func (m *Manager) DropColumn(ctx context.Context, table, name string) (bool, error) {
	const op = "drop column"
	return run(ctx, m, op, func(ctx context.Context, conn *sql.Conn) (bool, error) {
		cols, err := m.columnNames(ctx, conn, table)
		if err != nil {
			return false, err
		}
		if !slices.Contains(cols, name) {
			return false, validationError(op, "column %q does not exist in table %q", name, table)
		}
		keep := slices.DeleteFunc(slices.Clone(cols), func(c string) bool { return c == name })
		if len(keep) == 0 {
			return false, validationError(op, "cannot drop %q, the only column of %q", name, table)
		}

		err = withTx(ctx, conn, func(tx *sql.Tx) error {
			for _, stmt := range buildRebuild(table, keep) {
				if err := m.exec(ctx, tx, stmt); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return false, err
		}
		return true, nil
	})
}

// DropTable removes table if it exists.
func (m *Manager) DropTable(ctx context.Context, table string) (bool, error) {
	return run(ctx, m, "drop table", func(ctx context.Context, conn *sql.Conn) (bool, error) {
		if err := m.exec(ctx, conn, buildDropTable(table)); err != nil {
			return false, err
		}
		return true, nil
	})
}
