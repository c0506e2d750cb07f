package operators

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/storage"
	"github.com/dolthub/colstore/types"
)

// scannedValues reads column 0 of every row result holds, for the
// table-driven comparisons below.
func scannedValues(t *testing.T, result *storage.Table) []string {
	t.Helper()
	var got []string
	for ci := 0; ci < result.ChunkCount(); ci++ {
		chunk, err := result.Chunk(types.ChunkId(ci))
		require.NoError(t, err)
		seg := chunk.Segment(0)
		for i := 0; i < seg.Size(); i++ {
			got = append(got, seg.At(i).String())
		}
	}
	return got
}

// requireValuesEqual compares want/got and, on mismatch, fails with a
// readable inline diff rather than two dumped slices.
func requireValuesEqual(t *testing.T, want, got []string) {
	t.Helper()
	if fmt.Sprint(want) == fmt.Sprint(got) {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(strings.Join(want, ","), strings.Join(got, ","), false)
	t.Fatalf("scanned values mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func newScanTable(t *testing.T) *storage.Table {
	t.Helper()
	table := storage.NewTable(storage.WithTargetChunkSize(3))
	require.NoError(t, table.AddColumn("id", types.Int32, false))
	require.NoError(t, table.AddColumn("name", types.String, true))
	rows := []struct {
		id   int32
		name string
		null bool
	}{
		{1, "a", false},
		{2, "b", false},
		{3, "", true},
		{4, "d", false},
		{5, "e", false},
	}
	for _, r := range rows {
		name := types.Null()
		if !r.null {
			name = types.NewString(r.name)
		}
		require.NoError(t, table.Append([]types.Value{types.NewInt32(r.id), name}))
	}
	return table
}

func TestScanOverValueSegment(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := newScanTable(t)
	result, err := Scan(table, 0, types.Ge, types.NewInt32(3))
	require.NoError(err)

	assert.Equal(3, result.RowCount())

	chunk, err := result.Chunk(0)
	require.NoError(err)
	assert.Equal(types.NewInt32(3), chunk.Segment(0).At(0))
	assert.Equal(types.NewInt32(4), chunk.Segment(0).At(1))
	assert.Equal(types.NewInt32(5), chunk.Segment(0).At(2))
}

func TestScanSkipsNullCells(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := newScanTable(t)
	result, err := Scan(table, 1, types.Eq, types.NewString("d"))
	require.NoError(err)
	assert.Equal(1, result.RowCount())
}

func TestScanOperatorTableDriven(t *testing.T) {
	cases := []struct {
		name   string
		col    types.ColumnId
		op     types.CompareOp
		search types.Value
		want   []string
	}{
		{"eq", 0, types.Eq, types.NewInt32(3), []string{"3"}},
		{"lt", 0, types.Lt, types.NewInt32(3), []string{"1", "2"}},
		{"gt", 0, types.Gt, types.NewInt32(3), []string{"4", "5"}},
		{"ge", 0, types.Ge, types.NewInt32(4), []string{"4", "5"}},
		{"le", 0, types.Le, types.NewInt32(2), []string{"1", "2"}},
		{"ne", 0, types.Ne, types.NewInt32(1), []string{"2", "3", "4", "5"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			table := newScanTable(t)
			result, err := Scan(table, c.col, c.op, c.search)
			require.NoError(t, err)
			requireValuesEqual(t, c.want, scannedValues(t, result))
		})
	}
}

func TestScanRejectsNullSearch(t *testing.T) {
	assert := assert.New(t)
	table := newScanTable(t)
	_, err := Scan(table, 0, types.Eq, types.Null())
	assert.True(d.Is(err, d.InvalidArgument))
}

func TestScanRejectsOutOfRangeColumn(t *testing.T) {
	assert := assert.New(t)
	table := newScanTable(t)
	_, err := Scan(table, 9, types.Eq, types.NewInt32(1))
	assert.True(d.Is(err, d.InvalidArgument))
}

// §8 scenario 6: a scan's output is itself scanned again, and the second
// scan's result must hold position lists referencing the *original* base
// table, never the intermediate reference table.
func TestScanChainingResolvesToOriginalBaseTable(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	base := newScanTable(t)

	firstPass, err := Scan(base, 0, types.Ge, types.NewInt32(2))
	require.NoError(err)

	secondPass, err := Scan(firstPass, 0, types.Le, types.NewInt32(4))
	require.NoError(err)

	assert.Equal(3, secondPass.RowCount()) // ids 2, 3, 4

	chunk, err := secondPass.Chunk(0)
	require.NoError(err)
	ref, ok := chunk.Segment(0).(*storage.ReferenceSegment)
	require.True(ok)
	assert.Same(base, ref.ReferencedTable())

	assert.Equal(types.NewInt32(2), chunk.Segment(0).At(0))
	assert.Equal(types.NewInt32(3), chunk.Segment(0).At(1))
	assert.Equal(types.NewInt32(4), chunk.Segment(0).At(2))
}
