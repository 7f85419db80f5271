// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3

// Error is the failure reported whenever a native call returns
// anything other than its designated success statuses. It carries
// the engine's message text and the extended result code read off
// the owning connection; the primary code is the extended code's
// low byte.
type Error struct {
	Message  string
	Extended int
}

func (e *Error) Error() string {
	return "sqlite3: " + e.Message
}

// Code returns the primary result code, e.g. 19 (SQLITE_CONSTRAINT)
// for the extended code 1555 (SQLITE_CONSTRAINT_PRIMARYKEY).
func (e *Error) Code() int {
	return e.Extended & 0xff
}

// ExtendedCode returns the extended result code.
func (e *Error) ExtendedCode() int {
	return e.Extended
}

// MisuseError is raised for invalid usage detected before the engine
// is touched, such as preparing an empty query or binding a value of
// an unregistered type. It carries no engine result code.
type MisuseError struct {
	Message string
}

func (e *MisuseError) Error() string {
	return "sqlite3: misuse: " + e.Message
}
