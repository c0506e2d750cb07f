package storage

import (
	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// PositionList is an immutable, shared sequence of RowIds produced by an
// operator (§3 C5, GLOSSARY "Position list"). Built once by the scan
// operator and never mutated afterwards, so sharing it across multiple
// ReferenceSegments (one per output column) needs no copying.
type PositionList []types.RowId

// ReferenceSegment is a zero-copy view over another table: a triple of
// (referenced table, referenced column id, position list) (§4.4).
// referenced_table is always the materialised base table, never another
// reference table — scan operators guarantee this when building output
// (§4.8, Open Question resolution in §9).
type ReferenceSegment struct {
	referencedTable  *Table
	referencedColumn types.ColumnId
	positions        PositionList
}

// NewReferenceSegment builds a reference segment over table/column using
// positions. table must remain alive for as long as the segment is used;
// Go's garbage collector keeps it alive automatically as long as this
// segment (or the Table returned by ReferencedTable) is reachable, which
// is the natural translation of §5's "reference segments keep their base
// table alive" shared-ownership requirement.
func NewReferenceSegment(table *Table, column types.ColumnId, positions PositionList) *ReferenceSegment {
	d.PanicIfFalse(int(column) < table.ColumnCount(), "reference segment column id %d not present in referenced table schema", column)
	return &ReferenceSegment{referencedTable: table, referencedColumn: column, positions: positions}
}

func (r *ReferenceSegment) Size() int { return len(r.positions) }

func (r *ReferenceSegment) ReferencedTable() *Table { return r.referencedTable }

func (r *ReferenceSegment) ReferencedColumn() types.ColumnId { return r.referencedColumn }

func (r *ReferenceSegment) PositionList() PositionList { return r.positions }

// GetRowID resolves rid through the reference: NULL for the null row-id
// sentinel, otherwise the underlying segment's value at that row.
func (r *ReferenceSegment) GetRowID(rid types.RowId) types.Value {
	if rid.IsNull() {
		return types.Null()
	}
	chunk, err := r.referencedTable.Chunk(rid.ChunkId)
	d.PanicIfTrue(err != nil, "reference segment points at missing chunk %d: %v", rid.ChunkId, err)
	seg := chunk.Segment(r.referencedColumn)
	return seg.At(int(rid.ChunkOffset))
}

// At implements Segment: operator[](i) = get_row_id(pos_list[i]) (§4.4).
func (r *ReferenceSegment) At(i int) types.Value {
	d.PanicIfFalse(i >= 0 && i < len(r.positions), "reference segment index %d out of range [0,%d)", i, len(r.positions))
	return r.GetRowID(r.positions[i])
}

// EstimateMemoryUsage accounts only for the position list; the
// referenced table's storage is counted once, by the table that owns it.
func (r *ReferenceSegment) EstimateMemoryUsage() uint64 {
	return uint64(len(r.positions)) * 8 // two uint32 fields per RowId
}
