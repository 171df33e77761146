// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"fmt"
	"strings"
)

// Statement builders. Identifiers are written into the statement text as
// given; values are always returned as bound arguments.

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// whereClause returns "a = ? AND b = ?" for the columns of cond.
func whereClause(cond Mapping) string {
	terms := make([]string, len(cond))
	for i, f := range cond {
		terms[i] = f.Column + " = ?"
	}
	return strings.Join(terms, " AND ")
}

func buildListTables() string {
	return `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'`
}

func buildTableInfo(table string) string {
	return fmt.Sprintf("PRAGMA table_info(%s)", table)
}

func buildSelect(table string) string {
	return fmt.Sprintf("SELECT * FROM %s", table)
}

func buildSearch(table string, cond Mapping) (string, []any, error) {
	if len(cond) == 0 {
		return "", nil, validationError("search", "condition must not be empty")
	}
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s", table, whereClause(cond))
	return query, cond.Args(), nil
}

func buildInsert(table string, data Mapping) (string, []any, error) {
	if len(data) == 0 {
		return "", nil, validationError("insert", "data must not be empty")
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(data.Columns(), ", "), placeholders(len(data)))
	return query, data.Args(), nil
}

// buildBulkInsert returns a single multi-row INSERT for rows. Every row must
// carry the same set of columns as the first one, in any order; values are
// bound in the first row's column order.
func buildBulkInsert(table string, rows []Mapping) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, validationError("bulk insert", "data list must not be empty")
	}
	cols := rows[0].Columns()
	if len(cols) == 0 {
		return "", nil, validationError("bulk insert", "row 0 has no columns")
	}
	tuple := "(" + placeholders(len(cols)) + ")"
	tuples := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(cols))
	for i, row := range rows {
		if !sameColumns(cols, row) {
			return "", nil, validationError("bulk insert", "row %d columns %v do not match %v", i, row.Columns(), cols)
		}
		tuples[i] = tuple
		for _, col := range cols {
			v, _ := row.Get(col)
			args = append(args, v.Any())
		}
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(cols, ", "), strings.Join(tuples, ", "))
	return query, args, nil
}

// sameColumns reports whether row holds exactly the columns in cols.
func sameColumns(cols []string, row Mapping) bool {
	if len(cols) != len(row) {
		return false
	}
	for _, col := range cols {
		if _, ok := row.Get(col); !ok {
			return false
		}
	}
	return true
}

// buildUpdate binds the data values first, then the condition values.
func buildUpdate(table string, data, cond Mapping) (string, []any, error) {
	if len(data) == 0 {
		return "", nil, validationError("update", "data must not be empty")
	}
	if len(cond) == 0 {
		return "", nil, validationError("update", "condition must not be empty")
	}
	sets := make([]string, len(data))
	for i, f := range data {
		sets[i] = f.Column + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(sets, ", "), whereClause(cond))
	args := append(data.Args(), cond.Args()...)
	return query, args, nil
}

func buildDelete(table string, cond Mapping) (string, []any, error) {
	if len(cond) == 0 {
		return "", nil, validationError("delete", "condition must not be empty")
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE %s", table, whereClause(cond))
	return query, cond.Args(), nil
}

func buildCreateTable(table string, cols []ColumnDef, applyConstraints bool) (string, error) {
	if len(cols) == 0 {
		return "", validationError("create table", "column list must not be empty")
	}
	defs := make([]string, len(cols))
	for i, c := range cols {
		def := strings.TrimSpace(c.Name + " " + c.Type)
		if applyConstraints {
			if check := columnConstraint(c.Name, c.Type); check != "" {
				def += " " + check
			}
		}
		defs[i] = def
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", ")), nil
}

// columnConstraint returns the CHECK clause for the first token of the
// declared type, or "" when the type carries no constraint.
func columnConstraint(name, declType string) string {
	fields := strings.Fields(declType)
	if len(fields) == 0 {
		return ""
	}
	switch strings.ToUpper(fields[0]) {
	case "INTEGER":
		return fmt.Sprintf("CHECK(typeof(%s) = 'integer')", name)
	case "REAL":
		return fmt.Sprintf("CHECK(typeof(%s) = 'real')", name)
	case "NUMERIC":
		return fmt.Sprintf("CHECK(typeof(%s) IN ('integer', 'real'))", name)
	}
	return ""
}

func buildAddColumn(table, name, declType string) string {
	return strings.TrimSpace(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, name, declType))
}

func buildDropTable(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

// buildRebuild returns the statements that drop a column by copying the
// kept columns into a temporary table and renaming it over the original.
func buildRebuild(table string, keep []string) []string {
	temp := table + "_temp"
	return []string{
		fmt.Sprintf("CREATE TABLE %s AS SELECT %s FROM %s", temp, strings.Join(keep, ", "), table),
		fmt.Sprintf("DROP TABLE %s", table),
		fmt.Sprintf("ALTER TABLE %s RENAME TO %s", temp, table),
	}
}
