// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3

// ColumnType is the storage class of a result column in the current
// row, one of TypeInteger, TypeFloat, TypeText, TypeBlob, TypeNull.
type ColumnType int

// Stmt is a precompiled statement. It owns the native statement
// through a scoped Handle and keeps a non-owning reference to the
// connection it was compiled on, which it needs to read error state.
//
// canFetch records whether a result row is pending extraction: set
// only right after a Step that yielded a row, cleared by Reset,
// Execute and a consuming Fetch. done records that the statement has
// run to completion; it keeps Fetch from stepping again, since the
// engine would auto-reset a finished statement and re-run the query.
// Only Reset clears it.
type Stmt struct {
	stmt     Handle[*sqlStatement]
	conn     *Conn
	canFetch bool
	done     bool
}

// Close finalizes the statement and frees all associated resources.
// Safe to call more than once. Results still being processed are
// abandoned.
func (s *Stmt) Close() error {
	s.canFetch = false
	s.done = false
	s.stmt.Release()
	return nil
}

// String returns the original query text the statement was compiled
// from.
func (s *Stmt) String() string {
	return s.stmt.Get().sqlSQL()
}

// Reset makes the statement ready for re-binding parameters and
// re-execution. Bound parameter values are kept; use ClearBindings
// to drop them.
func (s *Stmt) Reset() error {
	if rc := s.stmt.Get().sqlReset(); rc != StatusOk {
		return s.conn.error()
	}
	s.canFetch = false
	s.done = false
	return nil
}

// ClearBindings resets all parameters back to NULL.
func (s *Stmt) ClearBindings() error {
	if rc := s.stmt.Get().sqlClearBindings(); rc != StatusOk {
		return s.conn.error()
	}
	return nil
}

// Step evaluates the statement up to the next result row. It returns
// (true, nil) when a row is available for extraction, (false, nil)
// when the statement has run to completion, and a translated engine
// error otherwise.
func (s *Stmt) Step() (bool, error) {
	switch rc := s.stmt.Get().sqlStep(); rc {
	case StatusRow:
		s.canFetch = true
		return true, nil
	case StatusDone:
		s.canFetch = false
		s.done = true
		return false, nil
	default:
		s.canFetch = false
		return false, s.conn.error()
	}
}

// Bind binds the arguments to the statement's parameter slots at
// consecutive positions 1, 2, 3, ... matching the order of "?"
// placeholders in the query. Each argument is converted by the rule
// registered for its type; values implementing Binder are dispatched
// to their own rule first.
func (s *Stmt) Bind(args ...any) error {
	for i, arg := range args {
		if err := bindValue(s, i+1, arg); err != nil {
			return err
		}
	}
	return nil
}

// Scan extracts the current row into the destinations at consecutive
// column positions 0, 1, 2, ... Destinations must be pointers of a
// registered type, a []byte view, or implement ColumnScanner.
// Extraction itself cannot fail: a type mismatch follows the
// engine's coercion rules instead of raising an error.
func (s *Stmt) Scan(dsts ...any) error {
	for i, dst := range dsts {
		if err := scanValue(s, i, dst); err != nil {
			return err
		}
	}
	return nil
}

// BindAt binds a single value at the given 1-based parameter slot.
// Binder implementations use it to delegate to a registered rule.
func (s *Stmt) BindAt(index int, arg any) error {
	return bindValue(s, index, arg)
}

// ScanAt extracts a single value from the given 0-based column.
// ColumnScanner implementations use it to delegate to a registered
// rule.
func (s *Stmt) ScanAt(column int, dst any) error {
	return scanValue(s, column, dst)
}

// Execute runs the statement from scratch: Reset, ClearBindings,
// Bind of the given arguments (if any), then a single Step. Every
// execution rebinds fully; there is no partial parameter reuse
// across calls.
func (s *Stmt) Execute(args ...any) error {
	if err := s.Reset(); err != nil {
		return err
	}
	if err := s.ClearBindings(); err != nil {
		return err
	}
	if len(args) > 0 {
		if err := s.Bind(args...); err != nil {
			return err
		}
	}
	_, err := s.Step()
	return err
}

// Fetch consumes exactly one result row: if no row is pending it
// steps once, then extracts the pending row into dsts and reports
// true. Once the statement is exhausted Fetch keeps reporting false
// until Reset.
func (s *Stmt) Fetch(dsts ...any) (bool, error) {
	if s.done {
		return false, nil
	}
	if !s.canFetch {
		if _, err := s.Step(); err != nil {
			return false, err
		}
	}

	if s.canFetch {
		if err := s.Scan(dsts...); err != nil {
			return false, err
		}
		s.canFetch = false
		return true, nil
	}

	return false, nil
}

// BindParameterCount returns the number of parameter slots in the
// statement.
func (s *Stmt) BindParameterCount() int {
	return s.stmt.Get().sqlBindParameterCount()
}

// ColumnCount returns the number of columns the statement produces.
func (s *Stmt) ColumnCount() int {
	return s.stmt.Get().sqlColumnCount()
}

// ColumnName returns the name of a result column. The leftmost
// column is number 0.
func (s *Stmt) ColumnName(column int) string {
	return s.stmt.Get().sqlColumnName(column)
}

// ColumnType returns the storage class of a column in the current
// row. Note that SQLite leaves the value undefined once a type
// conversion has happened on that column.
func (s *Stmt) ColumnType(column int) ColumnType {
	return s.stmt.Get().sqlColumnType(column)
}

// ColumnBytes returns the byte length of a blob or UTF-8 text value
// in a column of the current row.
func (s *Stmt) ColumnBytes(column int) int {
	return s.stmt.Get().sqlColumnBytes(column)
}

// bindStatus translates a bind result code, reading the error off
// the owning connection.
func (s *Stmt) bindStatus(rc int) error {
	if rc != StatusOk {
		return s.conn.error()
	}
	return nil
}

// Typed bind and column primitives. The conversion registry is built
// on these, and Binder/ColumnScanner implementations use them to
// reach the engine directly. Binds report engine failures; column
// reads cannot fail, a type mismatch follows the engine's coercion
// rules.

// BindNull binds SQL NULL at the given 1-based slot.
func (s *Stmt) BindNull(index int) error {
	return s.bindStatus(s.stmt.Get().sqlBindNull(index))
}

// BindInt binds a 32-bit SQL integer.
func (s *Stmt) BindInt(index int, value int32) error {
	return s.bindStatus(s.stmt.Get().sqlBindInt(index, value))
}

// BindInt64 binds a 64-bit SQL integer.
func (s *Stmt) BindInt64(index int, value int64) error {
	return s.bindStatus(s.stmt.Get().sqlBindInt64(index, value))
}

// BindDouble binds a SQL real.
func (s *Stmt) BindDouble(index int, value float64) error {
	return s.bindStatus(s.stmt.Get().sqlBindDouble(index, value))
}

// BindText binds SQL text; the engine copies the bytes before the
// call returns.
func (s *Stmt) BindText(index int, value string) error {
	return s.bindStatus(s.stmt.Get().sqlBindText(index, value))
}

// BindBlob binds a SQL blob; the engine copies the bytes before the
// call returns. A nil slice binds an empty blob, not NULL.
func (s *Stmt) BindBlob(index int, value []byte) error {
	return s.bindStatus(s.stmt.Get().sqlBindBlob(index, value))
}

// ColumnInt reads a column of the current row as a 32-bit integer.
func (s *Stmt) ColumnInt(column int) int32 {
	return s.stmt.Get().sqlColumnInt(column)
}

// ColumnInt64 reads a column of the current row as a 64-bit integer.
func (s *Stmt) ColumnInt64(column int) int64 {
	return s.stmt.Get().sqlColumnInt64(column)
}

// ColumnDouble reads a column of the current row as a float64.
func (s *Stmt) ColumnDouble(column int) float64 {
	return s.stmt.Get().sqlColumnDouble(column)
}

// ColumnText reads a column of the current row as a string, copied
// into Go-managed memory and sized to the column's byte length.
func (s *Stmt) ColumnText(column int) string {
	return s.stmt.Get().sqlColumnText(column)
}

// ColumnBlob reads a column of the current row as a fresh byte
// slice sized to the column's byte length. A NULL column yields nil.
func (s *Stmt) ColumnBlob(column int) []byte {
	return s.stmt.Get().sqlColumnBlob(column)
}
