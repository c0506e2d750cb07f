// Package catalog is the name -> table registry (§6 C9). It is an
// external collaborator of the storage engine, not part of it: nothing
// under storage or operators depends on this package. Grounded on the
// original StorageManager, a process-wide singleton mapping table names
// to table handles, printed with storage_manager.cpp's own type-name
// tokens.
package catalog

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/storage"
	"github.com/dolthub/colstore/types"
)

// Catalog is a name -> *storage.Table registry. The zero value is not
// usable; construct with New.
type Catalog struct {
	id     uuid.UUID
	tables map[string]*storage.Table
	order  []string
}

// New creates an empty catalog, tagged with a fresh instance id returned
// by ID. Print does not write the id.
func New() *Catalog {
	return &Catalog{
		id:     uuid.New(),
		tables: make(map[string]*storage.Table),
	}
}

// ID returns the catalog's instance id.
func (c *Catalog) ID() uuid.UUID { return c.id }

// Add registers table under name, failing name-exists on a duplicate.
func (c *Catalog) Add(name string, table *storage.Table) error {
	if _, ok := c.tables[name]; ok {
		return d.New(d.NameExists, "table %q already exists", name)
	}
	c.tables[name] = table
	c.order = append(c.order, name)
	return nil
}

// Drop removes name from the catalog, failing no-such-name if absent.
func (c *Catalog) Drop(name string) error {
	if _, ok := c.tables[name]; !ok {
		return d.New(d.NoSuchName, "no such table %q", name)
	}
	delete(c.tables, name)
	for i, n := range c.order {
		if n == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the table registered under name, failing no-such-name if
// absent.
func (c *Catalog) Get(name string) (*storage.Table, error) {
	table, ok := c.tables[name]
	if !ok {
		return nil, d.New(d.NoSuchName, "no such table %q", name)
	}
	return table, nil
}

// Has reports whether name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.tables[name]
	return ok
}

// Names returns the registered table names in the catalog's stable
// enumeration order (insertion order here; §6 only requires that the
// order be stable within a process, not sorted).
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Reset clears every registered table.
func (c *Catalog) Reset() {
	c.tables = make(map[string]*storage.Table)
	c.order = nil
}

// Print writes the §6 fixed text block for every registered table, in
// Names order, followed by a memory-estimate extension line per table
// (the SUPPLEMENTED FEATURES byte-count line, grounded on
// AbstractSegment::estimate_memory_usage).
func (c *Catalog) Print(w io.Writer) error {
	for _, name := range c.order {
		table := c.tables[name]
		schema := table.Schema()
		if _, err := fmt.Fprintf(w, "=== %s ===\n", name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "#columns: %d\n", schema.ColumnCount()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "#rows: %d\n", table.RowCount()); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "#chunks: %d\n", table.ChunkCount()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "columns:"); err != nil {
			return err
		}
		for col := 0; col < schema.ColumnCount(); col++ {
			id := types.ColumnId(col)
			if _, err := fmt.Fprintf(w, "  %s (%s)\n", schema.ColumnName(id), schema.ColumnType(id)); err != nil {
				return err
			}
		}
		mem := estimateMemoryUsage(table)
		if _, err := fmt.Fprintf(w, "memory: %s\n", humanize.Bytes(mem)); err != nil {
			return err
		}
	}
	return nil
}

func estimateMemoryUsage(table *storage.Table) uint64 {
	schema := table.Schema()
	var total uint64
	for ci := 0; ci < table.ChunkCount(); ci++ {
		chunk, err := table.Chunk(types.ChunkId(ci))
		if err != nil {
			continue
		}
		for col := 0; col < schema.ColumnCount(); col++ {
			total += chunk.Segment(types.ColumnId(col)).EstimateMemoryUsage()
		}
	}
	return total
}
