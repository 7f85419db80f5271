// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build winsqlite3

package sqlite3

// Linkage against winsqlite3.dll, the SQLite build that ships with
// Windows 10 and later. The calling surface is identical to the
// standalone distribution; only the header and import library differ.

/*
#cgo CFLAGS: -DUSE_WINSQLITE3
#cgo LDFLAGS: -lwinsqlite3
*/
import "C"
