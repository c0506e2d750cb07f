package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

func TestTableAppendAndRetrieve(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := NewTable(WithTargetChunkSize(4))
	require.NoError(table.AddColumn("id", types.Int32, false))
	require.NoError(table.AddColumn("name", types.String, true))

	require.NoError(table.Append([]types.Value{types.NewInt32(1), types.NewString("a")}))
	require.NoError(table.Append([]types.Value{types.NewInt32(2), types.Null()}))

	assert.Equal(2, table.RowCount())
	assert.Equal(1, table.ChunkCount())

	chunk, err := table.Chunk(0)
	require.NoError(err)
	assert.Equal(types.NewInt32(2), chunk.Segment(0).At(1))
	assert.True(chunk.Segment(1).At(1).IsNull())
}

func TestTableAddColumnFailsAfterRows(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := NewTable()
	require.NoError(table.AddColumn("id", types.Int32, false))
	require.NoError(table.Append([]types.Value{types.NewInt32(1)}))

	err := table.AddColumn("late", types.String, true)
	assert.True(d.Is(err, d.InvalidArgument))
}

func TestTableOpensNewChunkWhenTailFull(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := NewTable(WithTargetChunkSize(2))
	require.NoError(table.AddColumn("id", types.Int32, false))
	for i := int32(0); i < 5; i++ {
		require.NoError(table.Append([]types.Value{types.NewInt32(i)}))
	}

	assert.Equal(5, table.RowCount())
	assert.Equal(3, table.ChunkCount())

	chunk0, err := table.Chunk(0)
	require.NoError(err)
	assert.Equal(2, chunk0.Size())

	chunk2, err := table.Chunk(2)
	require.NoError(err)
	assert.Equal(1, chunk2.Size())
}

func TestTableAppendWrongArity(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := NewTable()
	require.NoError(table.AddColumn("id", types.Int32, false))

	err := table.Append([]types.Value{types.NewInt32(1), types.NewInt32(2)})
	assert.True(d.Is(err, d.InvalidArgument))
}

func TestTableChunkOutOfRange(t *testing.T) {
	assert := assert.New(t)

	table := NewTable()
	_, err := table.Chunk(0)
	assert.True(d.Is(err, d.InvalidArgument))
}
