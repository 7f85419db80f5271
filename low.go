// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3

/*
#include <stdlib.h>

#ifdef USE_WINSQLITE3
#include <winsqlite/winsqlite3.h>
#else
#include <sqlite3.h>
#endif

// needed since sqlite3_column_text() returns const unsigned char*
// for some wack-a-doodle reason
static const char *wsq_column_text(sqlite3_stmt *stmt, int column)
{
	return (const char *) sqlite3_column_text(stmt, column);
}

// needed to work around the void(*)(void*) callback that is the
// last argument to sqlite3_bind_text(); SQLITE_TRANSIENT forces
// SQLite to make a private copy of the data
static int wsq_bind_text(sqlite3_stmt *stmt, int index, const char *text, int n)
{
	if (n > 0) {
		return sqlite3_bind_text(stmt, index, text, n, SQLITE_TRANSIENT);
	}
	return sqlite3_bind_text(stmt, index, "", 0, SQLITE_STATIC);
}

// same workaround for sqlite3_bind_blob(); an empty blob has to go
// through sqlite3_bind_zeroblob() since passing a null pointer with
// SQLITE_TRANSIENT binds NULL instead
static int wsq_bind_blob(sqlite3_stmt *stmt, int index, const void *data, int n)
{
	if (n > 0) {
		return sqlite3_bind_blob(stmt, index, data, n, SQLITE_TRANSIENT);
	}
	return sqlite3_bind_zeroblob(stmt, index, 0);
}
*/
import "C"
import "unsafe"

// Status codes the wrapper dispatches on. SQLite has many more, but
// we only ever compare against these; everything else is reported
// through Error with the extended code intact.
const (
	StatusOk   = C.SQLITE_OK
	StatusRow  = C.SQLITE_ROW
	StatusDone = C.SQLITE_DONE
)

// Storage classes as reported by sqlite3_column_type().
const (
	TypeInteger ColumnType = C.SQLITE_INTEGER
	TypeFloat   ColumnType = C.SQLITE_FLOAT
	TypeText    ColumnType = C.SQLITE_TEXT
	TypeBlob    ColumnType = C.SQLITE_BLOB
	TypeNull    ColumnType = C.SQLITE_NULL
)

// Wrappers around the most important SQLite types.

type sqlConnection struct {
	handle *C.sqlite3
}

type sqlStatement struct {
	handle *C.sqlite3_stmt
	// connection the statement was compiled on; needed to read
	// errmsg/errcode, which SQLite keeps per connection
	db *C.sqlite3
}

// Wrappers around the most important SQLite functions.

func sqlVersion() string {
	return C.GoString(C.sqlite3_libversion())
}

func sqlVersionNumber() int {
	return int(C.sqlite3_libversion_number())
}

func sqlSourceID() string {
	return C.GoString(C.sqlite3_sourceid())
}

func sqlOpen(name string, flags int) (conn *sqlConnection, rc int) {
	conn = new(sqlConnection)

	p := C.CString(name)
	rc = int(C.sqlite3_open_v2(p, &conn.handle, C.int(flags), nil))
	C.free(unsafe.Pointer(p))

	// We can get a handle even if there's an error, see
	// http://www.sqlite.org/c3ref/open.html for details.
	// The caller reads the error off it, then closes it.
	return conn, rc
}

func (c *sqlConnection) sqlClose() int {
	// close_v2 defers the close until outstanding statements are
	// finalized instead of failing with SQLITE_BUSY
	return int(C.sqlite3_close_v2(c.handle))
}

func (c *sqlConnection) sqlChanges() int {
	return int(C.sqlite3_changes(c.handle))
}

func (c *sqlConnection) sqlLastInsertRowID() int64 {
	return int64(C.sqlite3_last_insert_rowid(c.handle))
}

func (c *sqlConnection) sqlBusyTimeout(milliseconds int) int {
	return int(C.sqlite3_busy_timeout(c.handle, C.int(milliseconds)))
}

func (c *sqlConnection) sqlExtendedResultCodes(on bool) int {
	v := 0
	if on {
		v = 1
	}
	return int(C.sqlite3_extended_result_codes(c.handle, C.int(v)))
}

func (c *sqlConnection) sqlErrorMessage() string {
	return C.GoString(C.sqlite3_errmsg(c.handle))
}

func (c *sqlConnection) sqlExtendedErrorCode() int {
	return int(C.sqlite3_extended_errcode(c.handle))
}

func (c *sqlConnection) sqlPrepare(query string) (stmt *sqlStatement, rc int) {
	stmt = &sqlStatement{db: c.handle}

	p := C.CString(query)
	rc = int(C.sqlite3_prepare_v2(c.handle, p, C.int(len(query)), &stmt.handle, nil))
	C.free(unsafe.Pointer(p))

	return stmt, rc
}

func (s *sqlStatement) sqlFinalize() int {
	return int(C.sqlite3_finalize(s.handle))
}

func (s *sqlStatement) sqlReset() int {
	return int(C.sqlite3_reset(s.handle))
}

func (s *sqlStatement) sqlClearBindings() int {
	return int(C.sqlite3_clear_bindings(s.handle))
}

func (s *sqlStatement) sqlStep() int {
	return int(C.sqlite3_step(s.handle))
}

func (s *sqlStatement) sqlSQL() string {
	return C.GoString(C.sqlite3_sql(s.handle))
}

func (s *sqlStatement) sqlBindParameterCount() int {
	return int(C.sqlite3_bind_parameter_count(s.handle))
}

func (s *sqlStatement) sqlColumnCount() int {
	return int(C.sqlite3_column_count(s.handle))
}

func (s *sqlStatement) sqlColumnName(column int) string {
	return C.GoString(C.sqlite3_column_name(s.handle, C.int(column)))
}

func (s *sqlStatement) sqlColumnType(column int) ColumnType {
	return ColumnType(C.sqlite3_column_type(s.handle, C.int(column)))
}

func (s *sqlStatement) sqlColumnBytes(column int) int {
	return int(C.sqlite3_column_bytes(s.handle, C.int(column)))
}

func (s *sqlStatement) sqlBindNull(index int) int {
	return int(C.sqlite3_bind_null(s.handle, C.int(index)))
}

func (s *sqlStatement) sqlBindInt(index int, value int32) int {
	return int(C.sqlite3_bind_int(s.handle, C.int(index), C.int(value)))
}

func (s *sqlStatement) sqlBindInt64(index int, value int64) int {
	return int(C.sqlite3_bind_int64(s.handle, C.int(index), C.sqlite3_int64(value)))
}

func (s *sqlStatement) sqlBindDouble(index int, value float64) int {
	return int(C.sqlite3_bind_double(s.handle, C.int(index), C.double(value)))
}

func (s *sqlStatement) sqlBindText(index int, value string) int {
	p := C.CString(value)
	rc := int(C.wsq_bind_text(s.handle, C.int(index), p, C.int(len(value))))
	C.free(unsafe.Pointer(p))
	return rc
}

func (s *sqlStatement) sqlBindBlob(index int, value []byte) int {
	if len(value) == 0 {
		return int(C.wsq_bind_blob(s.handle, C.int(index), nil, 0))
	}
	return int(C.wsq_bind_blob(s.handle, C.int(index), unsafe.Pointer(&value[0]), C.int(len(value))))
}

func (s *sqlStatement) sqlColumnInt(column int) int32 {
	return int32(C.sqlite3_column_int(s.handle, C.int(column)))
}

func (s *sqlStatement) sqlColumnInt64(column int) int64 {
	return int64(C.sqlite3_column_int64(s.handle, C.int(column)))
}

func (s *sqlStatement) sqlColumnDouble(column int) float64 {
	return float64(C.sqlite3_column_double(s.handle, C.int(column)))
}

// sqlColumnText copies the column's text into a Go string. The byte
// length comes from sqlite3_column_bytes, so embedded zero bytes
// survive the trip.
func (s *sqlStatement) sqlColumnText(column int) string {
	n := C.sqlite3_column_bytes(s.handle, C.int(column))
	p := C.wsq_column_text(s.handle, C.int(column))
	if p == nil {
		return ""
	}
	return C.GoStringN(p, n)
}

// sqlColumnBlob copies the column's blob into Go-managed memory.
// A NULL column yields nil, an empty blob an empty slice.
func (s *sqlStatement) sqlColumnBlob(column int) []byte {
	if s.sqlColumnType(column) == TypeNull {
		return nil
	}
	n := C.sqlite3_column_bytes(s.handle, C.int(column))
	if n == 0 {
		return []byte{}
	}
	p := C.sqlite3_column_blob(s.handle, C.int(column))
	if p == nil {
		return []byte{}
	}
	return C.GoBytes(p, n)
}
