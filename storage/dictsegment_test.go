package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/types"
)

// Mirrors the worked "dictionary encoding" scenario from §8: a nullable
// column with a repeated-value dictionary and an embedded null.
func TestBuildDictionarySegmentNullable(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := NewValueSegment[int32](true)
	for _, v := range []int32{10, 20, 10, 30, 0, 20, 10} {
		if v == 0 {
			require.NoError(src.Append(types.Null()))
			continue
		}
		require.NoError(src.Append(types.NewInt32(v)))
	}

	seg, err := BuildDictionarySegment[int32](src)
	require.NoError(err)

	assert.Equal([]int32{10, 20, 30}, seg.Dictionary())
	assert.Equal(types.ValueId(0), seg.NullValueID())
	assert.Equal(3, seg.UniqueValuesCount())

	want := []types.ValueId{1, 2, 1, 3, 0, 2, 1}
	for i, w := range want {
		assert.Equal(w, seg.AttributeVector().Get(i), "row %d", i)
	}

	assert.True(seg.IsNull(4))
	for _, i := range []int{0, 1, 2, 3, 5, 6} {
		assert.False(seg.IsNull(i))
	}

	v, err := seg.Get(1)
	assert.NoError(err)
	assert.Equal(int32(20), v)

	assert.Equal(types.ValueId(1), seg.LowerBound(20))
	assert.Equal(types.ValueId(2), seg.UpperBound(20))
	assert.Equal(types.ValueId(2), seg.LowerBound(25))
	assert.Equal(types.InvalidValueID, seg.LowerBound(40))
}

func TestBuildDictionarySegmentNonNullable(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := NewValueSegment[int32](false)
	for _, v := range []int32{20, 10, 20, 30} {
		require.NoError(src.Append(types.NewInt32(v)))
	}

	seg, err := BuildDictionarySegment[int32](src)
	require.NoError(err)

	assert.Equal([]int32{10, 20, 30}, seg.Dictionary())
	assert.Equal(types.InvalidValueID, seg.NullValueID())

	want := []types.ValueId{1, 0, 1, 2}
	for i, w := range want {
		assert.Equal(w, seg.AttributeVector().Get(i), "row %d", i)
	}
}

func TestBuildDictionarySegmentRejectsNaN(t *testing.T) {
	assert := assert.New(t)

	src := NewValueSegment[float64](false)
	require.NoError(t, src.Append(types.NewFloat64(1.0)))
	var nan float64
	nan = nan / nan
	require.NoError(t, src.Append(types.NewFloat64(nan)))

	_, err := BuildDictionarySegment[float64](src)
	assert.True(d.Is(err, d.InvalidArgument))
}

func TestDictionarySegmentAtReturnsNullForNullRow(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := NewValueSegment[int32](true)
	require.NoError(src.Append(types.Null()))
	seg, err := BuildDictionarySegment[int32](src)
	require.NoError(err)

	assert.True(seg.At(0).IsNull())
}

func TestDictionarySegmentEmptyNonNullable(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := NewValueSegment[int32](false)
	seg, err := BuildDictionarySegment[int32](src)
	require.NoError(err)
	assert.Equal(0, seg.UniqueValuesCount())
	assert.Equal(types.InvalidValueID, seg.NullValueID())
}
