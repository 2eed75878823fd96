package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ungerik/go-fs"

	"github.com/domonda/go-sparsetable"
	"github.com/domonda/go-sparsetable/csvtable"
	"github.com/domonda/go-sparsetable/exceltable"
	"github.com/domonda/go-sparsetable/htmltable"
	"github.com/domonda/go-sparsetable/internal/log"
)

func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// readTable reads a .csv or .xlsx file, other extensions are read as CSV.
func (a *app) readTable(path string) (*sparsetable.Table[string], error) {
	file := fs.File(path)
	var (
		table *sparsetable.Table[string]
		err   error
	)
	switch fileExt(path) {
	case ".xlsx", ".xlsm", ".xltm", ".xltx":
		var data []byte
		data, err = file.ReadAll()
		if err != nil {
			return nil, err
		}
		table, err = exceltable.Read(bytes.NewReader(data), a.sheet, false)
	default:
		var format *csvtable.Format
		table, format, err = csvtable.ReadTableFile(file, nil)
		if err == nil {
			log.Debugw("detected CSV format", "file", path, "encoding", format.Encoding, "separator", format.Separator)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("can't read table from %s: %w", path, err)
	}
	table.SetOrder(a.opts.IterationOrder())
	log.Infow("read table", "file", path, "cells", table.Size(), "rows", table.NumRows(), "columns", table.NumColumns())
	return table, nil
}

func (a *app) readCells(path string) (*sparsetable.Table[string], error) {
	data, err := fs.File(path).ReadAll()
	if err != nil {
		return nil, err
	}
	table, err := csvtable.ReadCells(data, a.opts.CSVFormat())
	if err != nil {
		return nil, fmt.Errorf("can't read cells from %s: %w", path, err)
	}
	table.SetOrder(a.opts.IterationOrder())
	log.Infow("read cells", "file", path, "cells", table.Size())
	return table, nil
}

func (a *app) csvWriter() (*csvtable.Writer, error) {
	w, err := csvtable.NewWriterWithFormat(a.opts.CSVFormat())
	if err != nil {
		return nil, err
	}
	return w.WithHeaderRow(a.opts.CSV != nil && a.opts.CSV.HeaderRow), nil
}

func (a *app) stat(out io.Writer, path string, check bool) error {
	table, err := a.readTable(path)
	if err != nil {
		return err
	}
	if check {
		if err = table.Check(); err != nil {
			return err
		}
		log.Infof("table index of %s is consistent", path)
	}
	return writeStat(out, table)
}

// writeStat prints the size and populated range of table.
// An empty table has no range, any other CellRange error is returned.
func writeStat(out io.Writer, table *sparsetable.Table[string]) error {
	fmt.Fprintf(out, "cells:   %d\n", table.Size())
	fmt.Fprintf(out, "rows:    %d\n", table.NumRows())
	fmt.Fprintf(out, "columns: %d\n", table.NumColumns())
	cellRange, err := table.CellRange()
	if errors.Is(err, sparsetable.ErrEmptyTable) {
		fmt.Fprintf(out, "range:   none\n")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "range:   %s\n", cellRange)
	if n := cellRange.NumRows() * cellRange.NumColumns(); n > 0 {
		fmt.Fprintf(out, "density: %.2f%%\n", float64(table.Size())*100/float64(n))
	}
	return nil
}

func (a *app) convert(in, out string, fromCells bool) error {
	ctx := context.Background()

	var (
		table *sparsetable.Table[string]
		err   error
	)
	if fromCells {
		table, err = a.readCells(in)
	} else {
		table, err = a.readTable(in)
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch fileExt(out) {
	case ".xlsx":
		err = exceltable.Write(&buf, a.sheet, table)
	case ".html", ".htm":
		view := sparsetable.NewTableView(filepath.Base(in), table)
		err = htmltable.NewWriter().
			WithHeaderRow(true).
			WithTableClass("sparsetable").
			WithRowTitle(func(row int) string { return fmt.Sprint(view.Range.MinRow + row) }).
			WriteView(ctx, &buf, view)
	default:
		var w *csvtable.Writer
		if w, err = a.csvWriter(); err == nil {
			err = w.WriteView(ctx, &buf, sparsetable.NewTableView("", table))
		}
	}
	if err != nil {
		return fmt.Errorf("can't convert %s to %s: %w", in, out, err)
	}
	if err = fs.File(out).WriteAll(buf.Bytes()); err != nil {
		return err
	}
	log.Infow("converted table", "in", in, "out", out, "bytes", buf.Len())
	return nil
}

func (a *app) cells(in, out string) error {
	table, err := a.readTable(in)
	if err != nil {
		return err
	}
	w, err := a.csvWriter()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = csvtable.WriteCells(context.Background(), w, &buf, table); err != nil {
		return err
	}
	if err = fs.File(out).WriteAll(buf.Bytes()); err != nil {
		return err
	}
	log.Infow("wrote cells", "in", in, "out", out, "cells", table.Size(), "order", table.Order())
	return nil
}
