package storage

import "github.com/dolthub/colstore/types"

// Schema is a table's column list: names, types, and nullability, in the
// fixed order columns were added (§3 "Column order is fixed after the
// first append.").
type Schema struct {
	names    []string
	dtypes   []types.DataType
	nullable []bool
}

func (s *Schema) ColumnCount() int { return len(s.names) }

func (s *Schema) ColumnName(id types.ColumnId) string { return s.names[id] }

func (s *Schema) ColumnType(id types.ColumnId) types.DataType { return s.dtypes[id] }

func (s *Schema) ColumnNullable(id types.ColumnId) bool { return s.nullable[id] }

func (s *Schema) clone() Schema {
	return Schema{
		names:    append([]string(nil), s.names...),
		dtypes:   append([]types.DataType(nil), s.dtypes...),
		nullable: append([]bool(nil), s.nullable...),
	}
}

func (s *Schema) addColumn(name string, dt types.DataType, nullable bool) {
	s.names = append(s.names, name)
	s.dtypes = append(s.dtypes, dt)
	s.nullable = append(s.nullable, nullable)
}
