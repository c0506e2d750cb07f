package storage

import (
	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// columnOps is a per-DataType vtable closing over the monomorphised
// generic functions for that concrete Go type. It is the "template
// monomorphisation by data type" DESIGN NOTES call for: a compile-time
// generated switch over the closed type set, built once, instead of a
// runtime type switch repeated at every call site that needs to go from
// a DataType tag to a concrete ValueSegment[T]/DictionarySegment[T].
type columnOps struct {
	newValueSegment func(nullable bool) Segment
	appendValue     func(seg Segment, v types.Value) error
	compress        func(seg Segment) (Segment, error)
}

func newColumnOps[T types.Scalar]() columnOps {
	return columnOps{
		newValueSegment: func(nullable bool) Segment {
			return NewValueSegment[T](nullable)
		},
		appendValue: func(seg Segment, v types.Value) error {
			vs, ok := seg.(*ValueSegment[T])
			d.PanicIfFalse(ok, "append dispatch: segment is not a value segment of the expected type")
			return vs.Append(v)
		},
		compress: func(seg Segment) (Segment, error) {
			vs, ok := seg.(*ValueSegment[T])
			d.PanicIfFalse(ok, "compress dispatch: segment is not a value segment of the expected type")
			return BuildDictionarySegment[T](vs)
		},
	}
}

var opsByType = map[types.DataType]columnOps{
	types.Int32:   newColumnOps[int32](),
	types.Int64:   newColumnOps[int64](),
	types.Float32: newColumnOps[float32](),
	types.Float64: newColumnOps[float64](),
	types.String:  newColumnOps[string](),
}

func opsFor(dt types.DataType) columnOps {
	ops, ok := opsByType[dt]
	d.PanicIfFalse(ok, "no column ops registered for data type %s", dt)
	return ops
}
