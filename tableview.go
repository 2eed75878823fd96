package sparsetable

import (
	"errors"
	"reflect"
	"strconv"
)

var _ ReflectCellView = new(TableView[any])

// TableView presents the populated range of a sparse Table as dense View.
// View row 0 and column 0 are the first populated row and column
// of the table, unpopulated cells are nil.
//
// The view reads the table on every call,
// changes to the table are visible but the range
// is fixed when the view is created.
type TableView[V any] struct {
	Tit   string
	Table *Table[V]
	Range CellRange
	// ColumnTitle returns the title for an absolute table column index.
	// If nil the decimal column index is used.
	ColumnTitle func(column int) string
}

// NewTableView returns a TableView over the current CellRange of table.
// An empty table results in a view with zero rows and columns.
func NewTableView[V any](title string, table *Table[V]) *TableView[V] {
	cellRange, err := table.CellRange()
	if errors.Is(err, ErrEmptyTable) {
		cellRange = CellRange{}
	}
	return &TableView[V]{Tit: title, Table: table, Range: cellRange}
}

func (view *TableView[V]) Title() string { return view.Tit }

func (view *TableView[V]) Columns() []string {
	cols := make([]string, view.Range.NumColumns())
	for i := range cols {
		column := view.Range.MinColumn + i
		if view.ColumnTitle != nil {
			cols[i] = view.ColumnTitle(column)
		} else {
			cols[i] = strconv.Itoa(column)
		}
	}
	return cols
}

func (view *TableView[V]) NumRows() int { return view.Range.NumRows() }

func (view *TableView[V]) cell(row, col int) (*Cell[V], bool) {
	if row < 0 || col < 0 || row >= view.Range.NumRows() || col >= view.Range.NumColumns() {
		return nil, false
	}
	return view.Table.GetCell(view.Range.MinRow+row, view.Range.MinColumn+col)
}

func (view *TableView[V]) Cell(row, col int) any {
	cell, ok := view.cell(row, col)
	if !ok {
		return nil
	}
	return cell.value
}

func (view *TableView[V]) ReflectCell(row, col int) reflect.Value {
	cell, ok := view.cell(row, col)
	if !ok {
		return reflect.Value{}
	}
	return reflect.ValueOf(cell.value)
}

// FromView loads all cells of view that are not null-like
// and not empty strings into a new Table at their view coordinates.
func FromView(view View) *Table[any] {
	table := New[any]()
	numCols := len(view.Columns())
	for row := 0; row < view.NumRows(); row++ {
		for col := 0; col < numCols; col++ {
			value := view.Cell(row, col)
			if IsNullLike(reflect.ValueOf(value)) || value == "" {
				continue
			}
			table.MustAdd(row, col, value)
		}
	}
	return table
}

// FromStrings loads all non-empty strings of rows into a new Table.
// Rows may have different lengths.
func FromStrings(rows [][]string) *Table[string] {
	table := New[string]()
	for row, fields := range rows {
		for col, field := range fields {
			if field != "" {
				table.MustAdd(row, col, field)
			}
		}
	}
	return table
}
