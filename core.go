// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3

// OpenFlags select the mode a database is opened in. The values can
// be or'd together and passed to Open. See the SQLite documentation
// at http://www.sqlite.org/c3ref/open.html for details.
type OpenFlags int

const (
	OpenReadOnly     OpenFlags = 0x00000001
	OpenReadWrite    OpenFlags = 0x00000002
	OpenCreate       OpenFlags = 0x00000004
	OpenURI          OpenFlags = 0x00000040
	OpenMemory       OpenFlags = 0x00000080
	OpenNoMutex      OpenFlags = 0x00008000
	OpenFullMutex    OpenFlags = 0x00010000
	OpenSharedCache  OpenFlags = 0x00020000
	OpenPrivateCache OpenFlags = 0x00040000
	OpenNoFollow     OpenFlags = 0x01000000
)

// InMemory is the filename that opens a private in-memory database.
// An empty filename passed to Open resolves to it.
const InMemory = ":memory:"

// after we run into a locked database/table, we'll retry for this
// long before giving up with SQLITE_BUSY
const defaultTimeoutMilliseconds = 16 * 1000

// Version returns the version string of the linked SQLite library.
func Version() string {
	return sqlVersion()
}

// VersionNumber returns the version of the linked SQLite library as
// a single integer, e.g. 3046001 for 3.46.1.
func VersionNumber() int {
	return sqlVersionNumber()
}

// SourceID identifies the exact source tree the linked SQLite
// library was built from.
func SourceID() string {
	return sqlSourceID()
}

// Open creates a connection to the database in the named file. An
// empty name opens a private in-memory database. Zero flags default
// to OpenReadWrite|OpenCreate. On failure no usable connection is
// returned; the half-open native handle SQLite may hand back on
// error is read for its message and closed again.
func Open(name string, flags OpenFlags) (*Conn, error) {
	if name == "" {
		name = InMemory
	}
	if flags == 0 {
		flags = OpenReadWrite | OpenCreate
	}

	h, rc := sqlOpen(name, int(flags))
	if rc != StatusOk {
		err := &Error{Message: h.sqlErrorMessage(), Extended: h.sqlExtendedErrorCode()}
		// secondary error from the cleanup close is ignored
		_ = h.sqlClose()
		return nil, err
	}

	conn := &Conn{db: NewHandle[*sqlConnection](nil)}
	conn.db.Acquire(h, func(c *sqlConnection) { _ = c.sqlClose() })

	if rc := h.sqlBusyTimeout(defaultTimeoutMilliseconds); rc != StatusOk {
		err := conn.error()
		conn.Close()
		return nil, err
	}

	// Ask for extended result codes on the regular errcode call;
	// masking out the high bits turns them back into basic codes.
	if rc := h.sqlExtendedResultCodes(true); rc != StatusOk {
		err := conn.error()
		conn.Close()
		return nil, err
	}

	return conn, nil
}
