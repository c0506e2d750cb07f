// Package types holds the closed set of column data types and the tagged
// value variant that carries one of them (or NULL) across the storage and
// operator layers. Grounded on the original DYOD teaching database's
// all_type_variant.hpp / data_type.hpp: a fixed, compile-time-enumerable
// set of column types dispatched by a tag rather than open polymorphism
// (DESIGN NOTES §9 of the spec).
package types

import (
	"fmt"
	"strconv"

	"github.com/dolthub/colstore/d"
)

// DataType is the closed set of column data types. The zero value is
// intentionally invalid so a forgotten initialization fails loudly.
type DataType uint8

const (
	_ DataType = iota
	Int32
	Int64
	Float32
	Float64
	String
)

// String returns the engine's own type-name tokens, the way the original
// StorageManager::print prints "int"/"long"/"float"/"double"/"string"
// rather than Go's native type names.
func (t DataType) String() string {
	switch t {
	case Int32:
		return "int"
	case Int64:
		return "long"
	case Float32:
		return "float"
	case Float64:
		return "double"
	case String:
		return "string"
	default:
		return "invalid"
	}
}

// ParseDataType resolves a type-name token (as produced by String) back
// into a DataType, failing invalid-argument on an unknown tag.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "int":
		return Int32, nil
	case "long":
		return Int64, nil
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	case "string":
		return String, nil
	default:
		return 0, d.New(d.InvalidArgument, "unknown type tag %q", s)
	}
}

// Identifiers. RowId = (ChunkId, ChunkOffset) per §3.
type (
	ColumnId     uint16
	ChunkId      uint32
	ChunkOffset  uint32
	ValueId      uint32
)

// InvalidValueID is the sentinel meaning "not found" from a dictionary
// lookup (§3, §4.3).
const InvalidValueID ValueId = 1<<32 - 1

// RowId addresses a single row within a table.
type RowId struct {
	ChunkId     ChunkId
	ChunkOffset ChunkOffset
}

func (r RowId) String() string {
	return strconv.FormatUint(uint64(r.ChunkId), 10) + ":" + strconv.FormatUint(uint64(r.ChunkOffset), 10)
}

// Less gives RowId a total order: chunk id first, then offset within the
// chunk. Used when position lists need to be sorted or compared.
func (r RowId) Less(o RowId) bool {
	if r.ChunkId != o.ChunkId {
		return r.ChunkId < o.ChunkId
	}
	return r.ChunkOffset < o.ChunkOffset
}

// NullRowId is the sentinel row id meaning "this reference is NULL"
// (§4.4).
var NullRowId = RowId{ChunkId: 1<<32 - 1, ChunkOffset: 1<<32 - 1}

func (r RowId) IsNull() bool { return r == NullRowId }

// Value is a tagged value: exactly one of the five data types, or NULL.
// Modeled after the original's AllTypeVariant (a std::variant over the
// closed type set plus a NullValue marker).
type Value struct {
	typ    DataType
	isNull bool
	i32    int32
	i64    int64
	f32    float32
	f64    float64
	str    string
}

// Null constructs the NULL value.
func Null() Value { return Value{isNull: true} }

func NewInt32(v int32) Value    { return Value{typ: Int32, i32: v} }
func NewInt64(v int64) Value    { return Value{typ: Int64, i64: v} }
func NewFloat32(v float32) Value { return Value{typ: Float32, f32: v} }
func NewFloat64(v float64) Value { return Value{typ: Float64, f64: v} }
func NewString(v string) Value  { return Value{typ: String, str: v} }

func (v Value) IsNull() bool  { return v.isNull }
func (v Value) Type() DataType { return v.typ }

func (v Value) Int32() int32     { return v.i32 }
func (v Value) Int64() int64     { return v.i64 }
func (v Value) Float32() float32 { return v.f32 }
func (v Value) Float64() float64 { return v.f64 }
func (v Value) String() string {
	if v.isNull {
		return "NULL"
	}
	switch v.typ {
	case Int32:
		return strconv.FormatInt(int64(v.i32), 10)
	case Int64:
		return strconv.FormatInt(v.i64, 10)
	case Float32:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case Float64:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case String:
		return v.str
	default:
		return "<invalid>"
	}
}

// NarrowTo converts v losslessly into the target data type, failing
// type-mismatch if the conversion is not representable. A NULL value
// narrows to NULL at any type. Matches §3 "type-narrow with lossless
// numeric conversion where compatible (fail otherwise)".
func (v Value) NarrowTo(target DataType) (Value, error) {
	if v.isNull {
		return Value{typ: target, isNull: true}, nil
	}
	if v.typ == target {
		return v, nil
	}
	switch target {
	case Int32:
		switch v.typ {
		case Int64:
			if v.i64 < -(1<<31) || v.i64 > (1<<31-1) {
				break
			}
			return NewInt32(int32(v.i64)), nil
		}
	case Int64:
		switch v.typ {
		case Int32:
			return NewInt64(int64(v.i32)), nil
		}
	case Float32:
		switch v.typ {
		case Float64:
			f := float32(v.f64)
			if float64(f) == v.f64 {
				return NewFloat32(f), nil
			}
		}
	case Float64:
		switch v.typ {
		case Float32:
			return NewFloat64(float64(v.f32)), nil
		}
	}
	return Value{}, d.New(d.TypeMismatch, "cannot narrow %s value %s to %s", v.typ, v.String(), target)
}

// Equal reports whether two values of the same underlying type are equal.
// NULL is never equal to anything, including another NULL, matching SQL
// three-valued logic expectations baked into the scan operator's nullable
// handling (predicates always skip nulls rather than matching them).
func (v Value) Equal(o Value) bool {
	if v.isNull || o.isNull {
		return false
	}
	if v.typ != o.typ {
		return false
	}
	switch v.typ {
	case Int32:
		return v.i32 == o.i32
	case Int64:
		return v.i64 == o.i64
	case Float32:
		return v.f32 == o.f32
	case Float64:
		return v.f64 == o.f64
	case String:
		return v.str == o.str
	default:
		return false
	}
}

// GoString supports debugging ("%#v") without leaking the unexported
// fields layout.
func (v Value) GoString() string {
	if v.isNull {
		return "types.Null()"
	}
	return fmt.Sprintf("types.Value{%s: %s}", v.typ, v.String())
}
