// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned by every operation except Connect and
	// Close when the manager has no open connection.
	ErrNotConnected = errors.New("not connected")

	// ErrAlreadyConnected is returned by Connect when a connection is open.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrEngine wraps any failure reported by SQLite.
	ErrEngine = errors.New("engine error")

	// ErrValidation is returned for inputs rejected before reaching SQLite.
	ErrValidation = errors.New("validation error")
)

// engineError wraps err so that both ErrEngine and the driver error are
// reachable through errors.Is and errors.As.
func engineError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrEngine) || errors.Is(err, ErrValidation) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrEngine, err)
}

func validationError(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrValidation, fmt.Sprintf(format, args...))
}
