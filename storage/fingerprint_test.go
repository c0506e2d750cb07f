package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/types"
)

func TestFingerprintStableAcrossCompression(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := NewTable(WithTargetChunkSize(10))
	require.NoError(table.AddColumn("id", types.Int32, false))
	require.NoError(table.AddColumn("name", types.String, true))
	require.NoError(table.Append([]types.Value{types.NewInt32(1), types.NewString("a")}))
	require.NoError(table.Append([]types.Value{types.NewInt32(2), types.Null()}))

	before := table.Fingerprint()
	require.NoError(table.CompressChunk(context.Background(), 0))
	after := table.Fingerprint()

	assert.Equal(before, after)
}

func TestFingerprintDiffersOnDifferentData(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	t1 := NewTable()
	require.NoError(t1.AddColumn("id", types.Int32, false))
	require.NoError(t1.Append([]types.Value{types.NewInt32(1)}))

	t2 := NewTable()
	require.NoError(t2.AddColumn("id", types.Int32, false))
	require.NoError(t2.Append([]types.Value{types.NewInt32(2)}))

	assert.NotEqual(t1.Fingerprint(), t2.Fingerprint())
}
