// Command colstore is a tiny line-oriented driver for the storage engine,
// grounded on go/cmd/test_write_amplification/main.go's flag-parsing,
// single-binary shape: parse flags, then read commands from stdin, one a
// line, against a fresh catalog. It exists to exercise the library end to end, not as a
// production tool.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/dolthub/colstore/catalog"
	"github.com/dolthub/colstore/d"
	"github.com/dolthub/colstore/operators"
	"github.com/dolthub/colstore/storage"
	"github.com/dolthub/colstore/types"
)

var chunkSize = flag.Int("chunk-size", storage.DefaultTargetChunkSize, "rows per chunk for tables created in this session")

func main() {
	flag.Parse()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	cat := catalog.New()
	repl(cat, bufio.NewScanner(os.Stdin), os.Stdout)
}

// repl reads one command per line until EOF. Commands:
//
//	create <table> <col>:<type>[:null] ...
//	append <table> <value> ...
//	scan <table> <col> <op> <value>
//	compress <table> <chunk-id>
//	print
//	quit
func repl(cat *catalog.Catalog, in *bufio.Scanner, out *os.File) {
	prompt := func() {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprint(out, color.CyanString("colstore> "))
		}
	}

	prompt()
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line != "" {
			if err := dispatch(cat, line, out); err != nil {
				fmt.Fprintln(out, color.RedString(err.Error()))
			}
		}
		if line == "quit" {
			return
		}
		prompt()
	}
}

func dispatch(cat *catalog.Catalog, line string, out *os.File) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "quit":
		return nil
	case "print":
		return cat.Print(out)
	case "create":
		return cmdCreate(cat, fields[1:])
	case "append":
		return cmdAppend(cat, fields[1:])
	case "scan":
		return cmdScan(cat, fields[1:], out)
	case "compress":
		return cmdCompress(cat, fields[1:])
	default:
		return d.New(d.InvalidArgument, "unknown command %q", fields[0])
	}
}

func cmdCreate(cat *catalog.Catalog, args []string) error {
	if len(args) < 2 {
		return d.New(d.InvalidArgument, "usage: create <table> <col>:<type>[:null] ...")
	}
	table := storage.NewTable(storage.WithTargetChunkSize(*chunkSize))
	for _, colSpec := range args[1:] {
		parts := strings.Split(colSpec, ":")
		if len(parts) < 2 {
			return d.New(d.InvalidArgument, "bad column spec %q, want name:type[:null]", colSpec)
		}
		dt, err := types.ParseDataType(parts[1])
		if err != nil {
			return err
		}
		nullable := len(parts) >= 3 && parts[2] == "null"
		if err := table.AddColumn(parts[0], dt, nullable); err != nil {
			return err
		}
	}
	return cat.Add(args[0], table)
}

func cmdAppend(cat *catalog.Catalog, args []string) error {
	if len(args) < 1 {
		return d.New(d.InvalidArgument, "usage: append <table> <value> ...")
	}
	table, err := cat.Get(args[0])
	if err != nil {
		return err
	}
	schema := table.Schema()
	row := make([]types.Value, len(args)-1)
	for i, raw := range args[1:] {
		v, err := parseValue(raw, schema.ColumnType(types.ColumnId(i)))
		if err != nil {
			return err
		}
		row[i] = v
	}
	return table.Append(row)
}

func cmdScan(cat *catalog.Catalog, args []string, out *os.File) error {
	if len(args) != 4 {
		return d.New(d.InvalidArgument, "usage: scan <table> <col> <op> <value>")
	}
	table, err := cat.Get(args[0])
	if err != nil {
		return err
	}
	colIdx, err := strconv.Atoi(args[1])
	if err != nil {
		return d.New(d.InvalidArgument, "bad column index %q", args[1])
	}
	op, err := parseOp(args[2])
	if err != nil {
		return err
	}
	colType := table.Schema().ColumnType(types.ColumnId(colIdx))
	search, err := parseValue(args[3], colType)
	if err != nil {
		return err
	}
	result, err := operators.Scan(table, types.ColumnId(colIdx), op, search)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, color.GreenString("%d matching rows", result.RowCount()))
	return nil
}

func cmdCompress(cat *catalog.Catalog, args []string) error {
	if len(args) != 2 {
		return d.New(d.InvalidArgument, "usage: compress <table> <chunk-id>")
	}
	table, err := cat.Get(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return d.New(d.InvalidArgument, "bad chunk id %q", args[1])
	}
	return table.CompressChunk(context.Background(), types.ChunkId(id))
}

func parseValue(raw string, dt types.DataType) (types.Value, error) {
	if raw == "NULL" {
		return types.Null(), nil
	}
	switch dt {
	case types.Int32:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return types.Value{}, d.New(d.InvalidArgument, "bad int32 literal %q", raw)
		}
		return types.NewInt32(int32(n)), nil
	case types.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return types.Value{}, d.New(d.InvalidArgument, "bad int64 literal %q", raw)
		}
		return types.NewInt64(n), nil
	case types.Float32:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return types.Value{}, d.New(d.InvalidArgument, "bad float32 literal %q", raw)
		}
		return types.NewFloat32(float32(f)), nil
	case types.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.Value{}, d.New(d.InvalidArgument, "bad float64 literal %q", raw)
		}
		return types.NewFloat64(f), nil
	case types.String:
		return types.NewString(raw), nil
	default:
		return types.Value{}, d.New(d.InvalidArgument, "unknown column type %q", dt)
	}
}

func parseOp(raw string) (types.CompareOp, error) {
	switch raw {
	case "=":
		return types.Eq, nil
	case "!=":
		return types.Ne, nil
	case "<":
		return types.Lt, nil
	case "<=":
		return types.Le, nil
	case ">":
		return types.Gt, nil
	case ">=":
		return types.Ge, nil
	default:
		return 0, d.New(d.InvalidArgument, "unknown comparison operator %q", raw)
	}
}
