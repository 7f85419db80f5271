// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlite3 is a thin, type-safe binding of the SQLite3 C API.
//
// Please see http://www.sqlite.org/c3ref/intro.html for all the
// missing details. Our documentation is focused on binding details,
// not on SQLite in general.
//
// # Supported Types
//
// Parameters bind by Go type: booleans and integral types narrower
// than 8 bytes as 32-bit SQL integers, int/int64/uint/uint64 as
// 64-bit integers, floats as SQL reals, strings as SQL text and
// []byte as SQL blobs; text and blob bytes are copied by the engine
// before the bind call returns. Columns extract through pointers of
// the same types; a non-pointer []byte destination is treated as a
// fixed-size view and receives at most its own length. Null[T] maps
// absent values to SQL NULL in both directions. Types outside this
// set are rejected before the engine is touched, unless they
// implement Binder (and ColumnScanner for reading) themselves; the
// sqlite3_custom_bindings build tag removes the default set
// entirely, leaving only the interface path.
//
// # Binding Query Parameters
//
// SQL queries can contain "?" parameter slots that are bound to
// values in Bind, Execute or Exec. Slots are matched to values
// strictly left to right, at positions 1, 2, 3 and so on; column
// extraction runs left to right from position 0. SQLite has more
// parameter variations that we don't support: they would make the
// API more complex for very little gain.
//
// # Executing and Fetching
//
// Execute always runs a statement from scratch: reset, clear
// bindings, rebind, step. Fetch is a one-row-lookahead cursor: every
// call consumes exactly one result row and advances exactly once,
// returning false once the rows are exhausted and staying exhausted
// until Reset.
//
// # Errors
//
// Every engine status other than OK/ROW/DONE is returned as *Error,
// carrying the engine's message and extended result code; a
// statement's error state is read through the connection it was
// compiled on. Invalid usage that never reaches the engine (empty
// query text, unsupported types) is reported as *MisuseError.
// Nothing is retried and nothing is recovered in place.
//
// # Concurrency
//
// This layer adds no locking. A Conn and the Stmts prepared from it
// must not be used from multiple goroutines concurrently; whether
// distinct connections may run concurrently is governed by the
// engine's threading mode, selected through the OpenNoMutex and
// OpenFullMutex flags. A Conn must outlive every Stmt prepared from
// it; the handles are single-owner and do no reference counting, so
// that lifetime rule is the caller's to keep.
//
// # Low-Level API
//
// The file low.go contains the low-level API for SQLite. It is not
// exposed, and you should only have to worry about it if you're
// hunting for bugs in the binding. All cgo shims live there; the
// winsqlite3 build tag switches linkage from the standalone
// libsqlite3 to the engine distribution bundled with Windows.
package sqlite3
