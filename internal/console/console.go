// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package console implements the interactive, menu-driven front end.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mdhender/sqlitemgr"
)

// Session is the state carried through the menu loop.
type Session struct {
	mgr *sqlitemgr.Manager
	in  *bufio.Scanner
	out io.Writer

	done bool
}

// NewSession returns a session driving mgr, reading answers from in and
// writing prompts and results to out.
func NewSession(mgr *sqlitemgr.Manager, in io.Reader, out io.Writer) *Session {
	return &Session{
		mgr: mgr,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// action is one menu entry.
type action struct {
	key       string
	label     string
	connected bool // offered only while connected; otherwise only while disconnected
	always    bool
	run       func(s *Session, ctx context.Context) error
}

var actions = []action{
	{key: "connect", label: "Connect to a database", run: (*Session).connect},
	{key: "disconnect", label: "Disconnect", connected: true, run: (*Session).disconnect},
	{key: "tables", label: "List tables", connected: true, run: (*Session).listTables},
	{key: "describe", label: "Describe a table", connected: true, run: (*Session).describeTable},
	{key: "read", label: "Read a table", connected: true, run: (*Session).readTable},
	{key: "search", label: "Search a table", connected: true, run: (*Session).search},
	{key: "insert", label: "Insert a row", connected: true, run: (*Session).insert},
	{key: "update", label: "Update rows", connected: true, run: (*Session).update},
	{key: "delete", label: "Delete rows", connected: true, run: (*Session).delete},
	{key: "create", label: "Create a table", connected: true, run: (*Session).createTable},
	{key: "add-column", label: "Add a column", connected: true, run: (*Session).addColumn},
	{key: "drop-column", label: "Drop a column", connected: true, run: (*Session).dropColumn},
	{key: "drop-table", label: "Drop a table", connected: true, run: (*Session).dropTable},
	{key: "query", label: "Run a custom query", connected: true, run: (*Session).customQuery},
	{key: "exit", label: "Exit", always: true, run: (*Session).exit},
}

// available returns the actions offered in the current state.
func (s *Session) available() []action {
	var list []action
	for _, a := range actions {
		if a.always || a.connected == s.mgr.IsConnected() {
			list = append(list, a)
		}
	}
	return list
}

// Run shows the menu until the user exits or input ends. The connection,
// if any, is closed before returning.
func (s *Session) Run(ctx context.Context) error {
	defer s.mgr.Close()

	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		list := s.available()
		s.printf("\n")
		for i, a := range list {
			s.printf("%2d) %-12s %s\n", i+1, a.key, a.label)
		}
		choice, ok := s.ask("Select an option")
		if !ok {
			break
		}
		a, found := pick(list, choice)
		if !found {
			s.warn("unknown option %q", choice)
			continue
		}
		if err := a.run(s, ctx); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			s.fail(err)
		}
	}
	return s.in.Err()
}

// pick finds an action by menu number or key.
func pick(list []action, choice string) (action, bool) {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(list) {
		return list[n-1], true
	}
	for _, a := range list {
		if strings.EqualFold(a.key, choice) {
			return a, true
		}
	}
	return action{}, false
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) ok(format string, args ...any) {
	s.printf("[ok] "+format+"\n", args...)
}

func (s *Session) info(format string, args ...any) {
	s.printf("[info] "+format+"\n", args...)
}

func (s *Session) warn(format string, args ...any) {
	s.printf("[warn] "+format+"\n", args...)
}

func (s *Session) fail(err error) {
	s.printf("[error] %v\n", err)
}

// ask prompts for one line. It returns false when input is exhausted.
func (s *Session) ask(prompt string) (string, bool) {
	s.printf("%s: ", prompt)
	if !s.in.Scan() {
		s.printf("\n")
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// require prompts until a non-blank answer is given.
func (s *Session) require(prompt string) (string, error) {
	for {
		answer, ok := s.ask(prompt)
		if !ok {
			return "", io.EOF
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// askMapping collects column/value pairs until a blank column name.
func (s *Session) askMapping(what string) (sqlitemgr.Mapping, error) {
	var m sqlitemgr.Mapping
	for {
		col, ok := s.ask(what + " column (blank to finish)")
		if !ok {
			return nil, io.EOF
		}
		if col == "" {
			return m, nil
		}
		val, ok := s.ask(fmt.Sprintf("Value for %q", col))
		if !ok {
			return nil, io.EOF
		}
		m = m.Set(col, sqlitemgr.ParseValue(val))
	}
}

// outcome reports the result of an operation returning a success flag.
func (s *Session) outcome(ok bool, err error, format string, args ...any) error {
	if err != nil {
		return err
	}
	if !ok {
		if cause := s.mgr.LastErr(); cause != nil {
			return cause
		}
		return errors.New("operation failed")
	}
	s.ok(format, args...)
	return nil
}

func (s *Session) printRows(rows []sqlitemgr.Row, err error, empty string) error {
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		if cause := s.mgr.LastErr(); cause != nil {
			return cause
		}
		s.warn("%s", empty)
		return nil
	}
	for _, r := range rows {
		s.printf("%s\n", r)
	}
	s.info("%d row(s)", len(rows))
	return nil
}
