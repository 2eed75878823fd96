package sparsetable

import (
	"context"
	"errors"
	"fmt"
)

// CellFormatter formats a cell of a View as string.
type CellFormatter interface {
	// FormatCell formats the cell at (row, col) of view as string
	// or returns errors.ErrUnsupported if it doesn't
	// support formatting the value of the cell.
	// The raw result indicates if the returned string
	// is in the raw format of the output and can be
	// used as is or if it has to be escaped.
	FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, view View, row, col int) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return f(ctx, view, row, col)
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), view.Cell(row, col)), false, nil
}

// PrintfRawCellFormatter is like PrintfCellFormatter
// but the result is indicated to be raw.
type PrintfRawCellFormatter string

func (format PrintfRawCellFormatter) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), view.Cell(row, col)), true, nil
}

// RawCellString implements CellFormatter by returning
// the underlying string as raw value for every cell.
type RawCellString string

func (rawStr RawCellString) FormatCell(ctx context.Context, view View, row, col int) (str string, raw bool, err error) {
	return string(rawStr), true, nil
}

// SprintCellFormatter returns a CellFormatter that formats
// populated cells with fmt.Sprint and returns errors.ErrUnsupported
// for nil cells.
func SprintCellFormatter(raw bool) CellFormatter {
	return CellFormatterFunc(func(ctx context.Context, view View, row, col int) (string, bool, error) {
		value := view.Cell(row, col)
		if value == nil {
			return "", false, errors.ErrUnsupported
		}
		return fmt.Sprint(value), raw, nil
	})
}
