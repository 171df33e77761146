// Copyright (c) 2026 Michael D Henderson. All rights reserved.

//go:build mattn

package sqlitemgr

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver
)

// driverName is the database/sql driver registered by mattn/go-sqlite3.
const driverName = "sqlite3"

// pragma represents a SQLite pragma setting.
type pragma struct {
	name  string
	value string
}

// connectionPragmas returns the pragmas applied to every connection.
func connectionPragmas(busyTimeout time.Duration) []pragma {
	return []pragma{
		{name: "_foreign_keys", value: "1"},
		{name: "_busy_timeout", value: fmt.Sprint(busyTimeout.Milliseconds())},
		{name: "_journal_mode", value: "DELETE"},
	}
}

// buildDSN constructs a DSN for github.com/mattn/go-sqlite3.
// mattn uses the syntax: file:path?_foreign_keys=1&_journal_mode=DELETE
func buildDSN(path string, pragmas []pragma) string {
	var sb strings.Builder

	base := uriBase(path)
	sb.WriteString(base)

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	for _, p := range pragmas {
		sb.WriteString(sep)
		sep = "&"
		fmt.Fprintf(&sb, "%s=%s", p.name, p.value)
	}

	return sb.String()
}
