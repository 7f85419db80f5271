// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3

import "time"

// Conn is an open connection to a single SQLite database. It owns
// the native connection through a scoped Handle; the connection must
// outlive every Stmt prepared from it.
type Conn struct {
	db Handle[*sqlConnection]
}

// error fills in an Error with information about the last error from
// SQLite on this connection.
func (c *Conn) error() error {
	h := c.db.Get()
	return &Error{
		Message:  h.sqlErrorMessage(),
		Extended: h.sqlExtendedErrorCode(),
	}
}

// Close releases the native connection. It is safe to call more than
// once; every call after the first is a no-op. Statements still open
// when Close is called keep the underlying connection alive until
// they are finalized (sqlite3_close_v2 semantics), but using them is
// a lifetime violation on the caller's part.
func (c *Conn) Close() error {
	c.db.Release()
	return nil
}

// Prepare compiles the query into a Stmt. Empty query text is
// rejected with a MisuseError before reaching the engine.
func (c *Conn) Prepare(query string) (*Stmt, error) {
	if query == "" {
		return nil, &MisuseError{"Prepare: empty query text"}
	}
	if !c.db.Valid() {
		return nil, &MisuseError{"Prepare: connection is closed"}
	}

	h, rc := c.db.Get().sqlPrepare(query)
	if rc != StatusOk {
		err := c.error()
		// we are not supposed to get a handle on error, but
		// sqlite3_open follows a different rule, so we indulge
		// in paranoia and make sure
		if h.handle != nil {
			_ = h.sqlFinalize()
		}
		return nil, err
	}

	s := &Stmt{stmt: NewHandle[*sqlStatement](nil), conn: c}
	s.stmt.Acquire(h, func(st *sqlStatement) { _ = st.sqlFinalize() })
	return s, nil
}

// Exec prepares the query, executes it once with the given
// parameters and finalizes it again. No statement is cached or
// reused across calls.
func (c *Conn) Exec(query string, args ...any) error {
	s, err := c.Prepare(query)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Execute(args...)
}

// LastInsertRowID returns the rowid of the most recent successful
// INSERT on this connection.
func (c *Conn) LastInsertRowID() int64 {
	return c.db.Get().sqlLastInsertRowID()
}

// Changes returns the number of rows changed, inserted or deleted by
// the most recently completed statement.
func (c *Conn) Changes() int {
	return c.db.Get().sqlChanges()
}

// BusyTimeout sets how long the engine retries when a table is
// locked before giving up with SQLITE_BUSY. A non-positive duration
// disables the handler.
func (c *Conn) BusyTimeout(d time.Duration) {
	c.db.Get().sqlBusyTimeout(int(d / time.Millisecond))
}
