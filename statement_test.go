// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !sqlite3_custom_bindings

package sqlite3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlite3 "github.com/vsqlite/sqlite3"
)

func TestPrepare_EmptyQuery(t *testing.T) {
	c := mustOpen(t)

	_, err := c.Prepare("")
	var merr *sqlite3.MisuseError
	require.ErrorAs(t, err, &merr)

	// Exec goes through Prepare and fails the same way
	err = c.Exec("")
	require.ErrorAs(t, err, &merr)
}

func TestPrepare_SyntaxError(t *testing.T) {
	c := mustOpen(t)

	_, err := c.Prepare("SELEC 1")
	var serr *sqlite3.Error
	require.ErrorAs(t, err, &serr)
	assert.NotEmpty(t, serr.Message)
}

func TestStmt_Metadata(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (id INTEGER, name TEXT)"))

	s, err := c.Prepare("SELECT id, name FROM t WHERE id = ?")
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, "SELECT id, name FROM t WHERE id = ?", s.String())
	assert.Equal(t, 1, s.BindParameterCount())
	assert.Equal(t, 2, s.ColumnCount())
	assert.Equal(t, "id", s.ColumnName(0))
	assert.Equal(t, "name", s.ColumnName(1))
}

func TestStmt_FetchCursor(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (id INTEGER, name TEXT)"))
	require.NoError(t, c.Exec("INSERT INTO t VALUES (?, ?)", 1, "alice"))
	require.NoError(t, c.Exec("INSERT INTO t VALUES (?, ?)", 2, sqlite3.Null[string]{}))

	s, err := c.Prepare("SELECT id, name FROM t ORDER BY id")
	require.NoError(t, err)
	defer s.Close()

	var id int
	var name sqlite3.Null[string]

	ok, err := s.Fetch(&id, &name)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, id)
	assert.True(t, name.Valid)
	assert.Equal(t, "alice", name.V)

	ok, err = s.Fetch(&id, &name)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, id)
	assert.False(t, name.Valid)

	// exactly one false after the last row...
	ok, err = s.Fetch(&id, &name)
	require.NoError(t, err)
	assert.False(t, ok)

	// ...and the statement stays exhausted until Reset
	ok, err = s.Fetch(&id, &name)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Reset())
	ok, err = s.Fetch(&id, &name)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestStmt_ExhaustionSurvivesRepeatedFetch(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (id INTEGER)"))
	require.NoError(t, c.Exec("INSERT INTO t VALUES (1)"))

	s, err := c.Prepare("SELECT id FROM t")
	require.NoError(t, err)
	defer s.Close()

	var id int
	ok, err := s.Fetch(&id)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.Fetch(&id)
	require.NoError(t, err)
	require.False(t, ok)

	// the engine would happily re-run a finished statement on the
	// next step; the cursor must not, no matter how often it is asked
	for i := 0; i < 3; i++ {
		ok, err = s.Fetch(&id)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	// Execute resets first, so it starts a fresh run; its step leaves
	// the first row pending for extraction
	require.NoError(t, s.Execute())
	ok, err = s.Fetch(&id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, id)

	ok, err = s.Fetch(&id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStmt_ExecuteRebindsFromScratch(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (id INTEGER, name TEXT)"))

	ins, err := c.Prepare("INSERT INTO t VALUES (?, ?)")
	require.NoError(t, err)
	defer ins.Close()

	require.NoError(t, ins.Execute(1, "alice"))
	require.NoError(t, ins.Execute(2, "bob"))

	// no arguments means no bindings: both slots insert as NULL
	require.NoError(t, ins.Execute())

	sel, err := c.Prepare("SELECT count(*), count(id) FROM t")
	require.NoError(t, err)
	defer sel.Close()

	var rows, withID int
	ok, err := sel.Fetch(&rows, &withID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, withID)
}

func TestStmt_StepStates(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (id INTEGER)"))
	require.NoError(t, c.Exec("INSERT INTO t VALUES (1)"))

	s, err := c.Prepare("SELECT id FROM t")
	require.NoError(t, err)
	defer s.Close()

	row, err := s.Step()
	require.NoError(t, err)
	assert.True(t, row)

	row, err = s.Step()
	require.NoError(t, err)
	assert.False(t, row)
}

func TestStmt_StepConstraintError(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)"))
	require.NoError(t, c.Exec("INSERT INTO t VALUES (1)"))

	s, err := c.Prepare("INSERT INTO t VALUES (?)")
	require.NoError(t, err)
	defer s.Close()

	err = s.Execute(1)
	var serr *sqlite3.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 19, serr.Code()) // SQLITE_CONSTRAINT
	assert.NotEqual(t, serr.Code(), serr.ExtendedCode())

	// no row is pending after a failed step
	ok, err := s.Fetch()
	require.Error(t, err)
	assert.False(t, ok)

	// Reset reports the failed step once more (sqlite3_reset
	// semantics); after that the statement is clean again
	require.Error(t, s.Reset())
	require.NoError(t, s.Execute(2))

	var n int
	sel, err := c.Prepare("SELECT count(*) FROM t")
	require.NoError(t, err)
	defer sel.Close()
	ok, err = sel.Fetch(&n)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestStmt_ClearBindings(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (a, b)"))

	ins, err := c.Prepare("INSERT INTO t VALUES (?, ?)")
	require.NoError(t, err)
	defer ins.Close()

	require.NoError(t, ins.Bind(1, "x"))
	require.NoError(t, ins.Reset())
	require.NoError(t, ins.ClearBindings())
	_, err = ins.Step()
	require.NoError(t, err)

	sel, err := c.Prepare("SELECT a, b FROM t")
	require.NoError(t, err)
	defer sel.Close()

	var a, b sqlite3.Null[int64]
	ok, err := sel.Fetch(&a, &b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, a.Valid)
	assert.False(t, b.Valid)
}

func TestStmt_ColumnTypes(t *testing.T) {
	c := mustOpen(t)
	require.NoError(t, c.Exec("CREATE TABLE t (a, b, c, d, e)"))
	require.NoError(t, c.Exec("INSERT INTO t VALUES (?, ?, ?, ?, ?)",
		1, 2.5, "x", []byte{0xff}, nil))

	s, err := c.Prepare("SELECT a, b, c, d, e FROM t")
	require.NoError(t, err)
	defer s.Close()

	row, err := s.Step()
	require.NoError(t, err)
	require.True(t, row)

	assert.Equal(t, sqlite3.TypeInteger, s.ColumnType(0))
	assert.Equal(t, sqlite3.TypeFloat, s.ColumnType(1))
	assert.Equal(t, sqlite3.TypeText, s.ColumnType(2))
	assert.Equal(t, sqlite3.TypeBlob, s.ColumnType(3))
	assert.Equal(t, sqlite3.TypeNull, s.ColumnType(4))
	assert.Equal(t, 1, s.ColumnBytes(2))
}

func TestStmt_TeardownOrder(t *testing.T) {
	c, err := sqlite3.Open("", 0)
	require.NoError(t, err)

	s, err := c.Prepare("SELECT 1")
	require.NoError(t, err)

	// statement before connection is the legal order; both are
	// idempotent
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
