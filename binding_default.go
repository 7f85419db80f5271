// Copyright 2025 The vsqlite Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !sqlite3_custom_bindings

package sqlite3

import "fmt"

// Default conversion rules. Integral types narrower than 8 bytes go
// through the 32-bit integer calls with C-cast conversion, the rest
// through the 64-bit calls. Text and blobs are bound transient: the
// engine copies the bytes before the call returns.

func bindDefault(s *Stmt, index int, arg any) error {
	switch arg := arg.(type) {
	case nil:
		return s.BindNull(index)
	case bool:
		if arg {
			return s.BindInt(index, 1)
		}
		return s.BindInt(index, 0)
	case int8:
		return s.BindInt(index, int32(arg))
	case int16:
		return s.BindInt(index, int32(arg))
	case int32:
		return s.BindInt(index, arg)
	case uint8:
		return s.BindInt(index, int32(arg))
	case uint16:
		return s.BindInt(index, int32(arg))
	case uint32:
		return s.BindInt(index, int32(arg))
	case int:
		return s.BindInt64(index, int64(arg))
	case int64:
		return s.BindInt64(index, arg)
	case uint:
		return s.BindInt64(index, int64(arg))
	case uint64:
		return s.BindInt64(index, int64(arg))
	case float32:
		return s.BindDouble(index, float64(arg))
	case float64:
		return s.BindDouble(index, arg)
	case string:
		return s.BindText(index, arg)
	case []byte:
		// nil byte slices bind NULL, like a missing value
		if arg == nil {
			return s.BindNull(index)
		}
		return s.BindBlob(index, arg)
	default:
		return &MisuseError{fmt.Sprintf("Bind: unsupported parameter type %T at index %d", arg, index)}
	}
}

func scanDefault(s *Stmt, column int, dst any) error {
	switch dst := dst.(type) {
	case *bool:
		*dst = s.ColumnInt(column) != 0
	case *int8:
		*dst = int8(s.ColumnInt(column))
	case *int16:
		*dst = int16(s.ColumnInt(column))
	case *int32:
		*dst = s.ColumnInt(column)
	case *uint8:
		*dst = uint8(s.ColumnInt(column))
	case *uint16:
		*dst = uint16(s.ColumnInt(column))
	case *uint32:
		*dst = uint32(s.ColumnInt(column))
	case *int:
		*dst = int(s.ColumnInt64(column))
	case *int64:
		*dst = s.ColumnInt64(column)
	case *uint:
		*dst = uint(s.ColumnInt64(column))
	case *uint64:
		*dst = uint64(s.ColumnInt64(column))
	case *float32:
		*dst = float32(s.ColumnDouble(column))
	case *float64:
		*dst = s.ColumnDouble(column)
	case *string:
		*dst = s.ColumnText(column)
	case *[]byte:
		// grows or shrinks to the column's byte length
		*dst = s.ColumnBlob(column)
	case []byte:
		// fixed-size mutable view: copy what fits
		copy(dst, s.ColumnBlob(column))
	default:
		return &MisuseError{fmt.Sprintf("Scan: unsupported destination type %T at column %d", dst, column)}
	}
	return nil
}
