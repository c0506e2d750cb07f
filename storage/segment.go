package storage

import "github.com/dolthub/colstore/types"

// Segment is the common contract every physical column encoding
// satisfies, per the DESIGN NOTES' "object with a small method set"
// option: indexed read, length, and a memory estimate, with
// encoding-specific behavior living entirely behind these three methods
// so operator code (table scan) never needs to know which concrete
// encoding it holds beyond a single type switch.
type Segment interface {
	// At returns the variant at row offset i within the segment,
	// tunneling through reference segments as needed. NULL is returned
	// for a null cell rather than an error; only Get-style accessors on
	// the concrete typed segments fail on null.
	At(i int) types.Value
	Size() int
	EstimateMemoryUsage() uint64
}
