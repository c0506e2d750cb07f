package storage

import (
	"unsafe"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// ValueSegment is the uncompressed encoding (C3): a dense vector of T plus
// a parallel null-flag vector. Grounded on the original value_segment.cpp:
// append() type-narrows the incoming AllTypeVariant, NULL requires
// nullable=true and still pushes a default-constructed T alongside a set
// null bit so values and nulls always stay the same length.
type ValueSegment[T types.Scalar] struct {
	values   []T
	nulls    []bool
	nullable bool
}

// NewValueSegment builds an empty, growable value segment.
func NewValueSegment[T types.Scalar](nullable bool) *ValueSegment[T] {
	return &ValueSegment[T]{nullable: nullable}
}

// Append pushes v onto the segment. NULL requires nullable=true
// (not-nullable otherwise); a non-null value must narrow losslessly to T
// (type-mismatch otherwise).
func (s *ValueSegment[T]) Append(v types.Value) error {
	if v.IsNull() {
		if !s.nullable {
			return d.New(d.NotNullable, "cannot append NULL to a non-nullable value segment")
		}
		var zero T
		s.values = append(s.values, zero)
		s.nulls = append(s.nulls, true)
		return nil
	}
	t, err := types.As[T](v)
	if err != nil {
		return err
	}
	s.values = append(s.values, t)
	s.nulls = append(s.nulls, false)
	return nil
}

// Size is the number of logical rows in the segment.
func (s *ValueSegment[T]) Size() int { return len(s.values) }

func (s *ValueSegment[T]) IsNullable() bool { return s.nullable }

func (s *ValueSegment[T]) IsNull(i int) bool {
	d.PanicIfFalse(i >= 0 && i < s.Size(), "value segment index %d out of range [0,%d)", i, s.Size())
	return s.nulls[i]
}

// Get returns the raw value at i, failing null-dereference if it is null.
func (s *ValueSegment[T]) Get(i int) (T, error) {
	var zero T
	if s.IsNull(i) {
		return zero, d.New(d.NullDereference, "value segment index %d is null", i)
	}
	return s.values[i], nil
}

// GetTyped returns (value, ok); ok is false when the cell is null.
func (s *ValueSegment[T]) GetTyped(i int) (T, bool) {
	if s.IsNull(i) {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// At implements Segment: NULL for a null cell, the wrapped value
// otherwise.
func (s *ValueSegment[T]) At(i int) types.Value {
	if s.IsNull(i) {
		return types.Null()
	}
	return types.ValueOf(s.values[i])
}

// Values exposes the raw backing slice (read-only by convention: callers
// in this module never mutate it after append).
func (s *ValueSegment[T]) Values() []T { return s.values }

// NullValues exposes the null-flag slice; fails not-nullable if the
// segment was built non-nullable, per §4.2.
func (s *ValueSegment[T]) NullValues() ([]bool, error) {
	if !s.nullable {
		return nil, d.New(d.NotNullable, "segment is not nullable")
	}
	return s.nulls, nil
}

func (s *ValueSegment[T]) EstimateMemoryUsage() uint64 {
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))
	if types.TypeTag[T]() == types.String {
		// strings additionally own their byte backing; account for it
		// rather than just the 16-byte header, the way the original's
		// estimate_memory_usage sums string.size() per element.
		var total uint64
		for _, v := range s.values {
			total += uint64(len(any(v).(string)))
		}
		return total + elemSize*uint64(len(s.values)) + uint64(len(s.nulls))
	}
	return elemSize*uint64(len(s.values)) + uint64(len(s.nulls))
}
