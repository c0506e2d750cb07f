package storage

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/dolthub/colstore/types"
)

// Fingerprint computes an order-sensitive content hash over every cell of
// t, walking chunks in order and columns in schema order. Two tables with
// the same fingerprint are extremely likely to hold the same data
// regardless of which segment encoding backs each column, which is
// exactly the round-trip property §8 asks tests to check ("compressing a
// chunk then reading any row yields the same variant as before
// compression") without repeating a full cell-by-cell comparison in every
// test. It is a diagnostic convenience, not a content-addressing scheme:
// nothing in the core relies on fingerprints being collision-free.
func (t *Table) Fingerprint() uint64 {
	schema := t.Schema()
	h := xxhash.New()
	var buf [8]byte

	for ci := 0; ci < t.ChunkCount(); ci++ {
		chunk, err := t.Chunk(types.ChunkId(ci))
		if err != nil {
			continue // chunk list can only shrink conceptually never; defensive only
		}
		for col := 0; col < schema.ColumnCount(); col++ {
			seg := chunk.Segment(types.ColumnId(col))
			for row := 0; row < seg.Size(); row++ {
				v := seg.At(row)
				if v.IsNull() {
					_, _ = h.Write([]byte{0})
					continue
				}
				binary.LittleEndian.PutUint64(buf[:], uint64(v.Type()))
				_, _ = h.Write(buf[:1])
				_, _ = h.Write([]byte(v.String()))
			}
		}
	}
	return h.Sum64()
}
