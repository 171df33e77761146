// Copyright (c) 2026 Michael D Henderson. All rights reserved.

//go:build !mattn

package sqlitemgr

import (
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// driverName is the database/sql driver registered by modernc.org/sqlite.
const driverName = "sqlite"

// pragma represents a SQLite pragma setting.
type pragma struct {
	name  string
	value string
}

// connectionPragmas returns the pragmas applied to every connection.
// The rollback journal is kept in DELETE mode so no -wal/-shm files are
// left next to the database.
func connectionPragmas(busyTimeout time.Duration) []pragma {
	return []pragma{
		{name: "foreign_keys", value: "ON"},
		{name: "busy_timeout", value: fmt.Sprint(busyTimeout.Milliseconds())},
		{name: "journal_mode", value: "DELETE"},
	}
}

// buildDSN constructs a DSN for modernc.org/sqlite.
// modernc uses the syntax: file:path?_pragma=name(value)&_pragma=name2(value2)
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
		fmt.Fprintf(&sb, "_pragma=%s(%s)", p.name, p.value)
	}

	return sb.String()
}
