package storage

import (
	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// AttributeVector is a fixed-length sequence of ValueIds packed into the
// narrowest of {u8, u16, u32} that fits the maximum id it needs to hold
// (§4.1). It is immutable once the dictionary segment that owns it has
// finished construction; callers that need to grow one build a new,
// wider vector and copy rather than mutating in place, mirroring the
// original fixed_width_integer_vector<T>'s fixed backing store.
type AttributeVector struct {
	width int // 1, 2, or 4
	u8    []uint8
	u16   []uint16
	u32   []uint32
}

// maxU8 and maxU16 bound capacity per width: ids up to 2^8-1 fit a byte,
// up to 2^16-1 fit two bytes, up to 2^32-1 fit four; beyond that we
// cannot represent the id.
const (
	maxU8  = 1<<8 - 1
	maxU16 = 1<<16 - 1
)

// NewAttributeVector allocates a vector of length n wide enough to hold
// ids up to maxValueID (inclusive). Exceeding 2^32-1 fails
// capacity-exceeded.
func NewAttributeVector(n int, maxValueID uint64) (*AttributeVector, error) {
	switch {
	case maxValueID <= maxU8:
		return &AttributeVector{width: 1, u8: make([]uint8, n)}, nil
	case maxValueID <= maxU16:
		return &AttributeVector{width: 2, u16: make([]uint16, n)}, nil
	case maxValueID <= 1<<32-1:
		return &AttributeVector{width: 4, u32: make([]uint32, n)}, nil
	default:
		return nil, d.New(d.CapacityExceeded, "dictionary requires value id %d, exceeds 32-bit value-id space", maxValueID)
	}
}

// Len returns the number of ids stored.
func (a *AttributeVector) Len() int {
	switch a.width {
	case 1:
		return len(a.u8)
	case 2:
		return len(a.u16)
	default:
		return len(a.u32)
	}
}

// WidthBytes is the per-element storage width (1, 2, or 4).
func (a *AttributeVector) WidthBytes() int { return a.width }

// Get returns the ValueId stored at index i.
func (a *AttributeVector) Get(i int) types.ValueId {
	d.PanicIfFalse(i >= 0 && i < a.Len(), "attribute vector index %d out of range [0,%d)", i, a.Len())
	switch a.width {
	case 1:
		return types.ValueId(a.u8[i])
	case 2:
		return types.ValueId(a.u16[i])
	default:
		return types.ValueId(a.u32[i])
	}
}

// Set writes v at index i. v must fit in the vector's width; this is an
// invariant the dictionary-segment builder guarantees by sizing the
// vector from the final id count before any Set call.
func (a *AttributeVector) Set(i int, v types.ValueId) {
	d.PanicIfFalse(i >= 0 && i < a.Len(), "attribute vector index %d out of range [0,%d)", i, a.Len())
	switch a.width {
	case 1:
		d.PanicIfFalse(uint64(v) <= maxU8, "value id %d does not fit in 1-byte attribute vector", v)
		a.u8[i] = uint8(v)
	case 2:
		d.PanicIfFalse(uint64(v) <= maxU16, "value id %d does not fit in 2-byte attribute vector", v)
		a.u16[i] = uint16(v)
	default:
		a.u32[i] = uint32(v)
	}
}

// EstimateMemoryUsage is width_bytes * len (§4.1).
func (a *AttributeVector) EstimateMemoryUsage() uint64 {
	return uint64(a.width) * uint64(a.Len())
}
