package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolthub/colstore/d"
)

func TestTypeTag(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Int32, TypeTag[int32]())
	assert.Equal(Int64, TypeTag[int64]())
	assert.Equal(Float32, TypeTag[float32]())
	assert.Equal(Float64, TypeTag[float64]())
	assert.Equal(String, TypeTag[string]())
}

func TestValueOfAndAs(t *testing.T) {
	assert := assert.New(t)

	v := ValueOf[int32](7)
	assert.Equal(Int32, v.Type())

	got, err := As[int32](v)
	assert.NoError(err)
	assert.Equal(int32(7), got)

	// As narrows across compatible types.
	wide, err := As[int64](v)
	assert.NoError(err)
	assert.Equal(int64(7), wide)

	_, err = As[int32](Null())
	assert.True(d.Is(err, d.TypeMismatch))

	_, err = As[int32](NewString("x"))
	assert.True(d.Is(err, d.TypeMismatch))
}

func TestLess(t *testing.T) {
	assert := assert.New(t)

	assert.True(Less[int32](1, 2))
	assert.False(Less[int32](2, 1))
	assert.True(Less[string]("a", "b"))
	assert.True(Less[float64](1.0, 2.0))
}

func TestIsNaN(t *testing.T) {
	assert := assert.New(t)

	var zero float64
	assert.True(IsNaN(zero / zero))
	assert.False(IsNaN(1.0))
	assert.False(IsNaN[int32](1))
}
