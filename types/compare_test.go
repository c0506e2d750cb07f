package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolthub/colstore/d"
)

func TestCompareOrdered(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(-1, Compare(NewInt32(1), NewInt32(2)))
	assert.Equal(0, Compare(NewInt32(2), NewInt32(2)))
	assert.Equal(1, Compare(NewInt32(3), NewInt32(2)))
	assert.Equal(-1, Compare(NewString("a"), NewString("b")))
}

func TestComparePanicsOnNullOrMismatch(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { Compare(Null(), NewInt32(1)) })
	assert.Panics(func() { Compare(NewInt32(1), NewInt64(1)) })
}

func TestMatches(t *testing.T) {
	assert := assert.New(t)

	ok, err := Matches(NewInt32(5), Eq, NewInt32(5))
	assert.NoError(err)
	assert.True(ok)

	ok, err = Matches(NewInt32(5), Lt, NewInt32(5))
	assert.NoError(err)
	assert.False(ok)

	ok, err = Matches(NewInt32(4), Le, NewInt32(5))
	assert.NoError(err)
	assert.True(ok)

	ok, err = Matches(NewInt32(6), Ge, NewInt32(5))
	assert.NoError(err)
	assert.True(ok)

	ok, err = Matches(NewInt32(6), Ne, NewInt32(5))
	assert.NoError(err)
	assert.True(ok)
}

func TestMatchesRejectsNaN(t *testing.T) {
	assert := assert.New(t)

	nan := NewFloat64(0)
	nan.f64 = nan.f64 / nan.f64 // NaN, kept internal to the package test

	_, err := Matches(nan, Eq, NewFloat64(1))
	assert.True(d.Is(err, d.InvalidArgument))
}

func TestCompareOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("=", Eq.String())
	assert.Equal("!=", Ne.String())
	assert.Equal("<", Lt.String())
	assert.Equal("<=", Le.String())
	assert.Equal(">", Gt.String())
	assert.Equal(">=", Ge.String())
}
