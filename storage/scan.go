package storage

import (
	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// ScanChunk walks one chunk's column, calling matches for every non-null
// cell and collecting the RowId of every match into positions. It is the
// single place encoding-specific dispatch for the scan operator lives
// (§4.8 "operator code must be structured so that encoding-specific paths
// live in one place per encoding" — DESIGN NOTES §9):
//
//   - ValueSegment / DictionarySegment: iterate this chunk's own rows and
//     record RowId{chunkID, offset}.
//   - ReferenceSegment: iterate its position list, resolving each entry
//     through the reference, and record the *original* RowId so results
//     never reference a reference (§9 Open Question resolution). The
//     segment's ReferencedTable becomes baseTable's output if it isn't
//     set yet; mixing reference segments that disagree on their base
//     table within one scan is an invalid-argument, since that would
//     violate the "all reference segments share one base table"
//     precondition from §4.8 step 3.
func ScanChunk(chunk *Chunk, col types.ColumnId, chunkID types.ChunkId, matches func(types.Value) (bool, error), positions *[]types.RowId, baseTable **Table) error {
	seg := chunk.Segment(col)

	if ref, ok := seg.(*ReferenceSegment); ok {
		if *baseTable == nil {
			*baseTable = ref.ReferencedTable()
		} else if *baseTable != ref.ReferencedTable() {
			return d.New(d.InvalidArgument, "scan input mixes reference segments with different base tables")
		}
		for _, rid := range ref.PositionList() {
			v := ref.GetRowID(rid)
			if v.IsNull() {
				continue
			}
			ok, err := matches(v)
			if err != nil {
				return err
			}
			if ok {
				*positions = append(*positions, rid)
			}
		}
		return nil
	}

	// ValueSegment and DictionarySegment both resolve through At(), which
	// already returns NULL for a null cell and the dictionary-decoded
	// value for a dictionary segment; the two encodings need no separate
	// code path once nulls and value access go through the common
	// Segment contract.
	for i := 0; i < seg.Size(); i++ {
		v := seg.At(i)
		if v.IsNull() {
			continue
		}
		ok, err := matches(v)
		if err != nil {
			return err
		}
		if ok {
			*positions = append(*positions, types.RowId{ChunkId: chunkID, ChunkOffset: types.ChunkOffset(i)})
		}
	}
	return nil
}
