// Package operators holds the relational operators built on top of
// storage. Today that is exactly one: the table-scan predicate operator
// (§4.8 C8). Grounded on the original table_scan.cpp/.hpp, which
// dispatches across both column data type and segment encoding to
// produce a reference table over the scanned input's base table.
package operators

import (
	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/storage"
	"github.com/dolthub/colstore/types"
)

// Scan evaluates `column <op> search` over every row of table, returning
// a single-chunk table whose segments are reference segments into the
// materialized base table (never into an intermediate reference table).
// search must be non-NULL (invalid-argument otherwise) and must narrow
// losslessly into the scanned column's type (type-mismatch otherwise).
func Scan(table *storage.Table, column types.ColumnId, op types.CompareOp, search types.Value) (*storage.Table, error) {
	if search.IsNull() {
		return nil, d.New(d.InvalidArgument, "scan search value must not be NULL")
	}
	schema := table.Schema()
	if int(column) >= schema.ColumnCount() {
		return nil, d.New(d.InvalidArgument, "column id %d out of range [0,%d)", column, schema.ColumnCount())
	}
	colType := schema.ColumnType(column)
	narrowedSearch, err := search.NarrowTo(colType)
	if err != nil {
		return nil, err
	}

	matches := func(v types.Value) (bool, error) {
		return types.Matches(v, op, narrowedSearch)
	}

	var positions []types.RowId
	var baseTable *storage.Table

	for ci := 0; ci < table.ChunkCount(); ci++ {
		chunk, err := table.Chunk(types.ChunkId(ci))
		if err != nil {
			return nil, err
		}
		if err := storage.ScanChunk(chunk, column, types.ChunkId(ci), matches, &positions, &baseTable); err != nil {
			return nil, err
		}
	}

	// §4.8 step 3: the output base table is the input table itself
	// unless a scanned segment was a reference segment.
	if baseTable == nil {
		baseTable = table
	}

	baseSchema := baseTable.Schema()
	segs := make([]storage.Segment, baseSchema.ColumnCount())
	for c := 0; c < baseSchema.ColumnCount(); c++ {
		segs[c] = storage.NewReferenceSegment(baseTable, types.ColumnId(c), storage.PositionList(positions))
	}

	out := storage.NewTable(storage.WithLogger(table.Logger()))
	for c := 0; c < baseSchema.ColumnCount(); c++ {
		if err := out.AddColumn(baseSchema.ColumnName(types.ColumnId(c)), baseSchema.ColumnType(types.ColumnId(c)), baseSchema.ColumnNullable(types.ColumnId(c))); err != nil {
			return nil, err
		}
	}
	out.PublishScanResult(segs)
	return out, nil
}
