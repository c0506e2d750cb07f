package storage

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/internal/async"
	"github.com/dolthub/colstore/types"
)

// CompressChunk replaces chunk id's value segments with their
// dictionary-encoded equivalents, atomically from a reader's point of
// view (§4.7). Each column is compressed by its own goroutine; they only
// read the source chunk and only write their own result slot, so no
// synchronization is needed between them beyond the final join
// (errgroup.Wait). If any column fails, the whole compression aborts and
// the old chunk is left in place untouched.
func (t *Table) CompressChunk(ctx context.Context, id types.ChunkId) error {
	old, err := t.Chunk(id)
	if err != nil {
		return err
	}
	schema := t.Schema()
	n := schema.ColumnCount()

	results := make([]Segment, n)
	eg, egCtx := errgroup.WithContext(ctx)
	cancels := make([]context.CancelFunc, n)
	for i := 0; i < n; i++ {
		col := i
		cancels[col] = async.GoWithCancel(egCtx, eg, func(ctx context.Context) error {
			ops := opsFor(schema.ColumnType(types.ColumnId(col)))
			compressed, err := ops.compress(old.Segment(types.ColumnId(col)))
			if err != nil {
				return err
			}
			results[col] = compressed
			return nil
		})
	}

	joinErr := eg.Wait()
	for _, cancel := range cancels {
		cancel()
	}
	if joinErr != nil {
		t.cfg.Logger.WithError(joinErr).WithField("chunk_id", id).Warn("chunk compression failed, old chunk retained")
		return joinErr
	}

	newChunk := newChunkFromSegments(results)

	t.tableMu.Lock()
	defer t.tableMu.Unlock()
	d.PanicIfFalse(int(id) < len(t.chunks), "chunk id %d vanished during compression", id)
	t.chunks[id].Store(newChunk)
	if int(id) == len(t.chunks)-1 {
		t.tailSealed = true
	}
	t.cfg.Logger.WithField("chunk_id", id).Debug("chunk compression complete")
	return nil
}
