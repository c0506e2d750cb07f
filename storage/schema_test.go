package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolthub/colstore/types"
)

func TestSchemaAddColumnAndClone(t *testing.T) {
	assert := assert.New(t)

	var s Schema
	s.addColumn("a", types.Int32, false)
	s.addColumn("b", types.String, true)

	assert.Equal(2, s.ColumnCount())
	assert.Equal("a", s.ColumnName(0))
	assert.Equal(types.Int32, s.ColumnType(0))
	assert.False(s.ColumnNullable(0))
	assert.Equal("b", s.ColumnName(1))
	assert.True(s.ColumnNullable(1))

	clone := s.clone()
	clone.addColumn("c", types.Int64, false)
	assert.Equal(2, s.ColumnCount())
	assert.Equal(3, clone.ColumnCount())
}
