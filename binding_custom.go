// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build sqlite3_custom_bindings

package sqlite3

import "fmt"

// With the sqlite3_custom_bindings tag the default conversion table
// is compiled out: every bound value must implement Binder and every
// destination ColumnScanner. Null[T] keeps its NULL handling, but a
// present value delegates to T, which must then carry its own rules.

func bindDefault(s *Stmt, index int, arg any) error {
	return &MisuseError{fmt.Sprintf("Bind: no Binder implementation for type %T at index %d", arg, index)}
}

func scanDefault(s *Stmt, column int, dst any) error {
	return &MisuseError{fmt.Sprintf("Scan: no ColumnScanner implementation for type %T at column %d", dst, column)}
}
