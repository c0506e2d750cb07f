package storage

import (
	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// Chunk is an ordered sequence of segments, one per column, all of
// uniform length (§3 C6). Grounded on the original chunk.cpp: add_segment
// extends the schema at construction time, append() fans a row out to
// every segment and is atomic at row granularity (a failure on column k
// must not leave columns 0..k-1 with an extra value).
type Chunk struct {
	segments []Segment
}

// NewChunk allocates a chunk with one empty value segment per column in
// schema, matching the column order (§3 "the order of segments matches
// the table's column order").
func NewChunk(schema *Schema) *Chunk {
	segs := make([]Segment, schema.ColumnCount())
	for i := 0; i < schema.ColumnCount(); i++ {
		ops := opsFor(schema.ColumnType(types.ColumnId(i)))
		segs[i] = ops.newValueSegment(schema.ColumnNullable(types.ColumnId(i)))
	}
	return &Chunk{segments: segs}
}

// newChunkFromSegments wraps already-built segments (used when publishing
// a compressed chunk, and by the scan operator's single-chunk output).
func newChunkFromSegments(segs []Segment) *Chunk {
	return &Chunk{segments: segs}
}

func (c *Chunk) ColumnCount() int { return len(c.segments) }

// Size is the segment length, identical across every column in the chunk.
func (c *Chunk) Size() int {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].Size()
}

func (c *Chunk) Segment(col types.ColumnId) Segment {
	d.PanicIfFalse(int(col) < len(c.segments), "column id %d out of range [0,%d)", col, len(c.segments))
	return c.segments[col]
}

// append fans row out to every column's segment. schema gives the
// DataType tag needed to dispatch to the right appendValue closure.
// row.len must equal ColumnCount(); a release build trusts the caller
// (Table.Append), which always calls this with a freshly-sized row, so a
// mismatch is an invariant-violation rather than a caller-facing error,
// matching §4.5's "Debug-time assertions are encouraged; release
// behaviour on length mismatch is unspecified."
func (c *Chunk) append(schema *Schema, row []types.Value) error {
	d.PanicIfTrue(len(row) != len(c.segments), "row has %d values, chunk has %d columns", len(row), len(c.segments))

	// Validate every column before mutating any segment, so a
	// type-mismatch or not-nullable failure on column k never leaves
	// columns 0..k-1 with a value appended and the rest untouched.
	for i, v := range row {
		col := types.ColumnId(i)
		if v.IsNull() {
			if !schema.ColumnNullable(col) {
				return d.New(d.NotNullable, "column %q does not accept NULL", schema.ColumnName(col))
			}
			continue
		}
		if _, err := v.NarrowTo(schema.ColumnType(col)); err != nil {
			return err
		}
	}

	for i, v := range row {
		ops := opsFor(schema.ColumnType(types.ColumnId(i)))
		d.PanicIfTrue(ops.appendValue(c.segments[i], v) != nil,
			"append failed after validation passed for column %d", i)
	}
	return nil
}
