// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"context"
	"database/sql"
	"fmt"
)

// operation is the body of a data or schema operation. It receives the
// pinned connection and returns the result or the failure.
type operation[T any] func(ctx context.Context, conn *sql.Conn) (T, error)

// run applies the connection guard and the error policy to fn. Every
// operation except Connect and Close goes through here.
//
// When the manager is not connected fn is never called. Failures from fn
// that are not already classified are wrapped as ErrEngine. In strict mode
// the error is returned with the zero T; otherwise the error is logged,
// recorded for LastErr, and the zero T is returned with a nil error.
func run[T any](ctx context.Context, m *Manager, op string, fn operation[T]) (T, error) {
	var zero T
	if m.conn == nil {
		return zero, m.fail(op, fmt.Errorf("%s: %w", op, ErrNotConnected))
	}
	v, err := fn(ctx, m.conn)
	if err != nil {
		return zero, m.fail(op, engineError(op, err))
	}
	m.lastErr = nil
	return v, nil
}

// fail records err and applies the configured policy to it.
func (m *Manager) fail(op string, err error) error {
	m.lastErr = err
	if m.cfg.Strict {
		return err
	}
	m.cfg.Logger.Error("operation failed", "op", op, "error", err)
	return nil
}

// LastErr returns the error of the most recent failed operation, or nil if
// the most recent operation succeeded. In lenient mode it is the only way
// to see why an operation returned its failure value.
func (m *Manager) LastErr() error {
	return m.lastErr
}
