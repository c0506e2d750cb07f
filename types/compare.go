package types

import (
	"strings"

	"github.com/dolthub/colstore/d"
)

// CompareOp is one of the six comparison operators the table scan
// operator supports (§4.8).
type CompareOp int

const (
	Eq CompareOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

func (op CompareOp) String() string {
	switch op {
	case Eq:
		return "="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

// Compare returns -1/0/1 for a<b/a==b/a>b. Both values must already share
// the same DataType (the scan operator narrows the search value to the
// column's type before calling this) and neither may be NULL; violating
// either is an invariant-violation since callers are expected to filter
// nulls and narrow types before comparing.
func Compare(a, b Value) int {
	d.PanicIfTrue(a.isNull || b.isNull, "Compare called with a NULL operand")
	d.PanicIfTrue(a.typ != b.typ, "Compare called with mismatched types %s and %s", a.typ, b.typ)
	switch a.typ {
	case Int32:
		return cmpOrdered(a.i32, b.i32)
	case Int64:
		return cmpOrdered(a.i64, b.i64)
	case Float32:
		return cmpOrdered(a.f32, b.f32)
	case Float64:
		return cmpOrdered(a.f64, b.f64)
	case String:
		return strings.Compare(a.str, b.str)
	default:
		panic("invariant-violation: unreachable data type in Compare")
	}
}

func cmpOrdered[T int32 | int64 | float32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Matches evaluates v <op> search, both required to be the same, non-NULL
// DataType. NaN operands are rejected (§4.3: "Ordering on floats excludes
// NaN"); valid input is specified as never containing one, so encountering
// one here is treated as bad caller input.
func Matches(v Value, op CompareOp, search Value) (bool, error) {
	if isFloatNaN(v) || isFloatNaN(search) {
		return false, d.New(d.InvalidArgument, "NaN is not ordered and cannot be compared")
	}
	c := Compare(v, search)
	switch op {
	case Eq:
		return c == 0, nil
	case Ne:
		return c != 0, nil
	case Lt:
		return c < 0, nil
	case Le:
		return c <= 0, nil
	case Gt:
		return c > 0, nil
	case Ge:
		return c >= 0, nil
	default:
		return false, d.New(d.InvalidArgument, "unknown comparison operator %d", op)
	}
}

func isFloatNaN(v Value) bool {
	switch v.typ {
	case Float32:
		return v.f32 != v.f32
	case Float64:
		return v.f64 != v.f64
	default:
		return false
	}
}
