// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sqlite3 "github.com/vsqlite/sqlite3"
)

// mustOpen opens a private in-memory database and closes it when the
// test finishes.
func mustOpen(t *testing.T) *sqlite3.Conn {
	t.Helper()
	c, err := sqlite3.Open("", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}
