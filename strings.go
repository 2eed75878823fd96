package sparsetable

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"
)

// ViewStrings formats all cells of view as strings,
// optionally starting with a header row of the column titles.
// Cells are formatted with formatter, a nil formatter or one
// returning errors.ErrUnsupported falls back to fmt.Sprint
// and an empty string for nil cells.
func ViewStrings(ctx context.Context, view View, addHeaderRow bool, formatter CellFormatter) (rows [][]string, err error) {
	numCols := len(view.Columns())
	if addHeaderRow {
		rows = append(rows, append([]string(nil), view.Columns()...))
	}
	for row := 0; row < view.NumRows(); row++ {
		rowStrs := make([]string, numCols)
		for col := range rowStrs {
			rowStrs[col], err = CellString(ctx, view, row, col, formatter)
			if err != nil {
				return nil, err
			}
		}
		rows = append(rows, rowStrs)
	}
	return rows, nil
}

// CellString formats a single cell like ViewStrings.
func CellString(ctx context.Context, view View, row, col int, formatter CellFormatter) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if formatter != nil {
		str, _, err := formatter.FormatCell(ctx, view, row, col)
		if err == nil {
			return str, nil
		}
		if !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
	}
	v := AsReflectCellView(view).ReflectCell(row, col)
	if IsNullLike(v) {
		return "", nil
	}
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface()), nil
}

// StringColumnWidths returns the column widths of the passed
// table as count of UTF-8 runes.
// If numCols is negative, the longest row defines the number of columns.
func StringColumnWidths(rows [][]string, numCols int) []int {
	if numCols < 0 {
		for _, row := range rows {
			numCols = max(numCols, len(row))
		}
		if numCols <= 0 {
			return nil
		}
	}
	colWidths := make([]int, numCols)
	for _, row := range rows {
		for col := 0; col < numCols && col < len(row); col++ {
			colWidths[col] = max(colWidths[col], utf8.RuneCountInString(row[col]))
		}
	}
	return colWidths
}

func isEmptyString(str string) bool {
	return strings.TrimSpace(str) == ""
}

// RemoveEmptyStringRows removes all rows from the passed slice
// where every string is empty or only whitespace.
// The removal happens in place and the shortened slice is returned.
func RemoveEmptyStringRows(rows [][]string) [][]string {
	return slices.DeleteFunc(rows, func(row []string) bool {
		return !slices.ContainsFunc(row, func(str string) bool { return !isEmptyString(str) })
	})
}

// RemoveEmptyStringColumns removes every column that has only
// empty or whitespace strings in all rows.
// The rows are modified in place and the number of remaining
// columns of the longest row is returned.
func RemoveEmptyStringColumns(rows [][]string) (numCols int) {
	for _, row := range rows {
		numCols = max(numCols, len(row))
	}
	for col := numCols - 1; col >= 0; col-- {
		empty := true
		for _, row := range rows {
			if col < len(row) && !isEmptyString(row[col]) {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		for i, row := range rows {
			if col < len(row) {
				rows[i] = slices.Delete(row, col, col+1)
			}
		}
		numCols--
	}
	return numCols
}
