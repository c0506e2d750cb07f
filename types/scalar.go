package types

import "github.com/dolthub/colstore/d"

// Scalar is the closed set of underlying Go types a column can be backed
// by, used to parameterize ValueSegment/DictionarySegment. It mirrors the
// DataType enum one-for-one.
type Scalar interface {
	int32 | int64 | float32 | float64 | string
}

// TypeTag returns the DataType tag corresponding to the scalar type
// parameter T.
func TypeTag[T Scalar]() DataType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case string:
		return String
	default:
		panic("invariant-violation: unreachable scalar type")
	}
}

// ValueOf wraps a raw scalar into a Value tagged with its DataType.
func ValueOf[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case int32:
		return NewInt32(x)
	case int64:
		return NewInt64(x)
	case float32:
		return NewFloat32(x)
	case float64:
		return NewFloat64(x)
	case string:
		return NewString(x)
	default:
		panic("invariant-violation: unreachable scalar type")
	}
}

// As narrows v into the scalar type T, failing type-mismatch if v is NULL
// or not representable. Segment append/compare paths use this to go from
// the caller-facing Value variant to the concrete backing type.
func As[T Scalar](v Value) (T, error) {
	var zero T
	if v.IsNull() {
		return zero, d.New(d.TypeMismatch, "cannot narrow NULL to %s", TypeTag[T]())
	}
	narrowed, err := v.NarrowTo(TypeTag[T]())
	if err != nil {
		return zero, err
	}
	switch any(zero).(type) {
	case int32:
		return any(narrowed.Int32()).(T), nil
	case int64:
		return any(narrowed.Int64()).(T), nil
	case float32:
		return any(narrowed.Float32()).(T), nil
	case float64:
		return any(narrowed.Float64()).(T), nil
	case string:
		return any(narrowed.String()).(T), nil
	default:
		panic("invariant-violation: unreachable scalar type")
	}
}

// Less is the total ordering §4.3 requires: ascending for numerics,
// lexicographic by code unit for strings. NaN is rejected by IsNaN rather
// than ordered, since the spec mandates valid input never contains one.
func Less[T Scalar](a, b T) bool {
	switch x := any(a).(type) {
	case int32:
		return x < any(b).(int32)
	case int64:
		return x < any(b).(int64)
	case float32:
		return x < any(b).(float32)
	case float64:
		return x < any(b).(float64)
	case string:
		return x < any(b).(string)
	default:
		panic("invariant-violation: unreachable scalar type")
	}
}

// IsNaN reports whether v is a NaN float. Always false for non-float T.
func IsNaN[T Scalar](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return x != x
	case float64:
		return x != x
	default:
		return false
	}
}
