package storage

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// Table is schema + an ordered chunk list + the append path + per-chunk
// compression (§3 C7). Column order is fixed after the first append;
// AddColumn is only legal while RowCount()==0 (§3 "Lifecycle").
//
// Concurrency (§5): appends are single-writer and take tableMu for the
// duration of the structural mutation (growing the chunk list, flipping
// tailSealed). Each chunk slot is an atomic.Pointer[Chunk] so a concurrent
// CompressChunk can publish a replacement chunk with one atomic store,
// visible to readers as a whole (the store is made under tableMu, so a
// Chunk call may wait for it briefly), without tearing a reader that is
// mid-read of the old chunk — Go's garbage
// collector keeps the old Chunk (and its segments) alive for exactly as
// long as a reader holds the pointer it loaded, which is the natural
// translation of the original's shared_ptr-based chunk handles.
type Table struct {
	tableMu sync.RWMutex
	schema  Schema
	chunks  []*atomic.Pointer[Chunk]
	cfg     Config

	tailSealed bool
}

// NewTable creates a table with an empty schema. Columns are added with
// AddColumn before the first row is appended.
func NewTable(opts ...Option) *Table {
	return &Table{cfg: newConfig(opts...)}
}

func (t *Table) Logger() *logrus.Logger { return t.cfg.Logger }

func (t *Table) TargetChunkSize() int { return t.cfg.TargetChunkSize }

// AddColumn extends the schema, and every existing chunk, with a new
// empty value segment. Legal only while the table has no rows (§3).
func (t *Table) AddColumn(name string, dt types.DataType, nullable bool) error {
	t.tableMu.Lock()
	defer t.tableMu.Unlock()

	if t.rowCountLocked() != 0 {
		return d.New(d.InvalidArgument, "cannot add column %q: table already has rows", name)
	}
	t.schema.addColumn(name, dt, nullable)
	for _, slot := range t.chunks {
		c := slot.Load()
		ops := opsFor(dt)
		c.segments = append(c.segments, ops.newValueSegment(nullable))
	}
	return nil
}

func (t *Table) ColumnCount() int {
	t.tableMu.RLock()
	defer t.tableMu.RUnlock()
	return t.schema.ColumnCount()
}

func (t *Table) ColumnName(id types.ColumnId) string {
	t.tableMu.RLock()
	defer t.tableMu.RUnlock()
	return t.schema.ColumnName(id)
}

func (t *Table) ColumnType(id types.ColumnId) types.DataType {
	t.tableMu.RLock()
	defer t.tableMu.RUnlock()
	return t.schema.ColumnType(id)
}

func (t *Table) ColumnNullable(id types.ColumnId) bool {
	t.tableMu.RLock()
	defer t.tableMu.RUnlock()
	return t.schema.ColumnNullable(id)
}

// Schema returns a defensive copy of the table's schema, used by
// operators building an output table that mirrors this one (§4.8).
func (t *Table) Schema() Schema {
	t.tableMu.RLock()
	defer t.tableMu.RUnlock()
	return t.schema.clone()
}

func (t *Table) ChunkCount() int {
	t.tableMu.RLock()
	defer t.tableMu.RUnlock()
	return len(t.chunks)
}

// Chunk returns the chunk at id. The returned pointer is a stable
// snapshot: if a concurrent CompressChunk later replaces this slot, the
// caller's reference keeps pointing at the chunk as it was when Chunk was
// called.
func (t *Table) Chunk(id types.ChunkId) (*Chunk, error) {
	t.tableMu.RLock()
	if int(id) >= len(t.chunks) {
		t.tableMu.RUnlock()
		return nil, d.New(d.InvalidArgument, "chunk id %d out of range [0,%d)", id, len(t.chunks))
	}
	slot := t.chunks[id]
	t.tableMu.RUnlock()
	return slot.Load(), nil
}

// RowCount is the sum of every chunk's size. The cheaper
// (chunk_count-1)*target_chunk_size + tail.size() formula is not used:
// compressing a tail chunk before it is full seals it, and the next
// append opens a new tail, so a non-tail chunk can hold fewer than
// target_chunk_size rows.
func (t *Table) RowCount() int {
	t.tableMu.RLock()
	defer t.tableMu.RUnlock()
	return t.rowCountLocked()
}

func (t *Table) rowCountLocked() int {
	total := 0
	for _, slot := range t.chunks {
		total += slot.Load().Size()
	}
	return total
}

// Append adds one row, opening a new tail chunk first if the current tail
// is full or has been sealed by a prior compression (§4.6).
func (t *Table) Append(row []types.Value) error {
	t.tableMu.Lock()
	defer t.tableMu.Unlock()

	if len(row) != t.schema.ColumnCount() {
		return d.New(d.InvalidArgument, "row has %d values, table has %d columns", len(row), t.schema.ColumnCount())
	}

	needNewTail := len(t.chunks) == 0 || t.tailSealed || t.chunks[len(t.chunks)-1].Load().Size() >= t.cfg.TargetChunkSize
	if needNewTail {
		ptr := &atomic.Pointer[Chunk]{}
		ptr.Store(NewChunk(&t.schema))
		t.chunks = append(t.chunks, ptr)
		t.tailSealed = false
	}

	tail := t.chunks[len(t.chunks)-1].Load()
	return tail.append(&t.schema, row)
}

// PublishScanResult installs segs (one reference segment per schema
// column) as the table's single chunk. Used only by operators.Scan to
// hand back a table whose schema was already built via AddColumn but
// whose single chunk of reference segments cannot go through the normal
// per-value Append path. The result is sealed immediately: appending raw
// values to a reference-segment chunk is not a supported operation (it
// would panic in the dispatch layer, since a reference segment is never
// a *ValueSegment[T]).
func (t *Table) PublishScanResult(segs []Segment) {
	t.tableMu.Lock()
	defer t.tableMu.Unlock()
	d.PanicIfTrue(len(t.chunks) != 0, "PublishScanResult called on a table that already has chunks")
	ptr := &atomic.Pointer[Chunk]{}
	ptr.Store(newChunkFromSegments(segs))
	t.chunks = append(t.chunks, ptr)
	t.tailSealed = true
}
