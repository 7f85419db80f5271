// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlite3

// The conversion registry is a closed set of per-type rules, one
// bind rule (value -> parameter slot) and one column rule (result
// slot -> value) per supported type. The default entries live in
// binding_default.go; values implementing Binder or ColumnScanner
// bypass them, which is the extension point for user-defined types.
// A value of any other type is rejected with a MisuseError before
// the engine is touched.

// Binder is implemented by values that know how to bind themselves
// to a statement's parameter slot. Index is 1-based.
type Binder interface {
	BindParameter(s *Stmt, index int) error
}

// ColumnScanner is implemented by destinations that know how to
// extract themselves from a result column. Column is 0-based.
type ColumnScanner interface {
	ScanColumn(s *Stmt, column int) error
}

func bindValue(s *Stmt, index int, arg any) error {
	if b, ok := arg.(Binder); ok {
		return b.BindParameter(s, index)
	}
	return bindDefault(s, index, arg)
}

func scanValue(s *Stmt, column int, dst any) error {
	if sc, ok := dst.(ColumnScanner); ok {
		return sc.ScanColumn(s, column)
	}
	return scanDefault(s, column, dst)
}

// Null is an optional value of type T. An invalid Null binds as SQL
// NULL; a NULL result column scans into an invalid Null. Present
// values delegate to T's conversion rule, so Null nests and extends
// to user types implementing Binder/ColumnScanner.
type Null[T any] struct {
	V     T
	Valid bool
}

// NullOf returns a valid Null holding v.
func NullOf[T any](v T) Null[T] {
	return Null[T]{V: v, Valid: true}
}

func (n Null[T]) BindParameter(s *Stmt, index int) error {
	if !n.Valid {
		return s.BindNull(index)
	}
	return bindValue(s, index, n.V)
}

func (n *Null[T]) ScanColumn(s *Stmt, column int) error {
	if s.ColumnType(column) == TypeNull {
		var zero T
		n.V = zero
		n.Valid = false
		return nil
	}
	n.Valid = true
	return scanValue(s, column, &n.V)
}
