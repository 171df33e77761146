// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package sqlitemgr

import (
	"context"
	"errors"
	"fmt"
)

// Use connects a new manager to path, calls fn with it, and closes it
// whether or not fn succeeds. A failed connect is returned as an error
// even when cfg is lenient.
func Use(ctx context.Context, cfg Config, path string, fn func(m *Manager) error) (err error) {
	m := New(cfg)
	defer func() {
		err = errors.Join(err, m.Close())
	}()

	ok, err := m.Connect(ctx, path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("use %s: %w", path, m.LastErr())
	}
	return fn(m)
}
