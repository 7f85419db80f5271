// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !winsqlite3

package sqlite3

// Default linkage: the standalone SQLite distribution installed on
// the system. Build with -tags winsqlite3 to target the engine
// bundled with Windows instead.

/*
#cgo LDFLAGS: -lsqlite3
*/
import "C"
