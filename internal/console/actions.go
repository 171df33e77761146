// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package console

import (
	"context"
	"io"
	"strings"

	"github.com/mdhender/sqlitemgr"
)

func (s *Session) connect(ctx context.Context) error {
	path, err := s.require("Database path")
	if err != nil {
		return err
	}
	ok, err := s.mgr.Connect(ctx, path)
	return s.outcome(ok, err, "connected to %s", path)
}

func (s *Session) disconnect(ctx context.Context) error {
	if err := s.mgr.Close(); err != nil {
		return err
	}
	s.ok("disconnected")
	return nil
}

func (s *Session) listTables(ctx context.Context) error {
	names, err := s.mgr.ListTableNames(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		if cause := s.mgr.LastErr(); cause != nil {
			return cause
		}
		s.warn("no tables found")
		return nil
	}
	s.info("tables: %s", strings.Join(names, ", "))
	return nil
}

func (s *Session) describeTable(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	cols, err := s.mgr.DescribeTable(ctx, table)
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		if cause := s.mgr.LastErr(); cause != nil {
			return cause
		}
		s.warn("table %s has no columns", table)
		return nil
	}
	for _, c := range cols {
		var flags []string
		if c.PrimaryKey {
			flags = append(flags, "primary key")
		}
		if c.NotNull {
			flags = append(flags, "not null")
		}
		if !c.Default.IsNull() {
			flags = append(flags, "default "+c.Default.String())
		}
		s.printf("%-20s %-12s %s\n", c.Name, c.Type, strings.Join(flags, ", "))
	}
	return nil
}

func (s *Session) readTable(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	rows, err := s.mgr.ReadTable(ctx, table)
	return s.printRows(rows, err, "no rows found")
}

func (s *Session) search(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	cond, err := s.askMapping("Condition")
	if err != nil {
		return err
	}
	rows, err := s.mgr.Search(ctx, table, cond)
	return s.printRows(rows, err, "no matching rows")
}

func (s *Session) insert(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	data, err := s.askMapping("Data")
	if err != nil {
		return err
	}
	ok, err := s.mgr.Insert(ctx, table, data)
	return s.outcome(ok, err, "row inserted into %s", table)
}

func (s *Session) update(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	s.info("values to set")
	data, err := s.askMapping("Data")
	if err != nil {
		return err
	}
	s.info("condition selecting the rows to update")
	cond, err := s.askMapping("Condition")
	if err != nil {
		return err
	}
	ok, err := s.mgr.Update(ctx, table, data, cond)
	return s.outcome(ok, err, "rows updated in %s", table)
}

func (s *Session) delete(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	s.info("condition selecting the rows to delete")
	cond, err := s.askMapping("Condition")
	if err != nil {
		return err
	}
	ok, err := s.mgr.Delete(ctx, table, cond)
	return s.outcome(ok, err, "rows deleted from %s", table)
}

func (s *Session) createTable(ctx context.Context) error {
	table, err := s.require("New table name")
	if err != nil {
		return err
	}
	s.info("enter columns and their types (INTEGER, REAL, NUMERIC, TEXT, ...)")
	var cols []sqlitemgr.ColumnDef
	for {
		name, ok := s.ask("Column name (blank to finish)")
		if !ok {
			return io.EOF
		}
		if name == "" {
			break
		}
		typ, ok := s.ask("Type of " + name)
		if !ok {
			return io.EOF
		}
		cols = append(cols, sqlitemgr.ColumnDef{Name: name, Type: typ})
	}
	answer, ok := s.ask("Add type checks for numeric columns? [y/N]")
	if !ok {
		return io.EOF
	}
	constraints := strings.HasPrefix(strings.ToLower(answer), "y")

	ok, err = s.mgr.CreateTable(ctx, table, cols, constraints)
	return s.outcome(ok, err, "table %s created", table)
}

func (s *Session) addColumn(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	name, err := s.require("New column name")
	if err != nil {
		return err
	}
	typ, ok := s.ask("Type of " + name)
	if !ok {
		return io.EOF
	}
	ok, err = s.mgr.AddColumn(ctx, table, name, typ)
	return s.outcome(ok, err, "column %s added to %s", name, table)
}

func (s *Session) dropColumn(ctx context.Context) error {
	table, err := s.require("Table name")
	if err != nil {
		return err
	}
	name, err := s.require("Column to drop")
	if err != nil {
		return err
	}
	ok, err := s.mgr.DropColumn(ctx, table, name)
	return s.outcome(ok, err, "column %s dropped from %s", name, table)
}

func (s *Session) dropTable(ctx context.Context) error {
	table, err := s.require("Table to drop")
	if err != nil {
		return err
	}
	ok, err := s.mgr.DropTable(ctx, table)
	return s.outcome(ok, err, "table %s dropped", table)
}

func (s *Session) customQuery(ctx context.Context) error {
	query, err := s.require("SQL")
	if err != nil {
		return err
	}
	rows, err := s.mgr.CustomQuery(ctx, query)
	return s.printRows(rows, err, "no results")
}

func (s *Session) exit(ctx context.Context) error {
	if s.mgr.IsConnected() {
		if err := s.disconnect(ctx); err != nil {
			return err
		}
	}
	s.printf("bye\n")
	s.done = true
	return nil
}
