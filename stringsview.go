package sparsetable

import (
	"reflect"
	"strings"
)

var _ ReflectCellView = new(StringsView)

// StringsView is a View implementation that uses strings as cell values.
//
// The Cols field defines the column names and determines the number of columns.
// A row within Rows can have fewer elements than Cols,
// in which case empty strings are returned for the missing cells.
//
// Example usage:
//
//	view := sparsetable.NewStringsView(
//	    "Products",
//	    [][]string{
//	        {"ID", "Name", "Price"},
//	        {"1", "Widget", "9.99"},
//	    },
//	)
//	fmt.Println(view.Cell(0, 1)) // Output: Widget
type StringsView struct {
	Tit  string
	Cols []string
	Rows [][]string
}

// NewStringsView creates a new StringsView.
// If no cols are passed and rows is not empty,
// then the first row is used as column names.
// All column names have leading and trailing whitespace trimmed.
func NewStringsView(title string, rows [][]string, cols ...string) *StringsView {
	if len(cols) == 0 && len(rows) > 0 {
		cols = rows[0]
		rows = rows[1:]
	}
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &StringsView{Tit: title, Cols: cols, Rows: rows}
}

func (view *StringsView) Title() string     { return view.Tit }
func (view *StringsView) Columns() []string { return view.Cols }
func (view *StringsView) NumRows() int      { return len(view.Rows) }

// Cell returns the string at [row][col], an empty string if the row
// is shorter than the columns, or nil if row or col are out of bounds.
func (view *StringsView) Cell(row, col int) any {
	if row < 0 || col < 0 || row >= len(view.Rows) || col >= len(view.Cols) {
		return nil
	}
	if col >= len(view.Rows[row]) {
		return ""
	}
	return view.Rows[row][col]
}

func (view *StringsView) ReflectCell(row, col int) reflect.Value {
	v := view.Cell(row, col)
	if v == nil {
		return reflect.Value{}
	}
	return reflect.ValueOf(v)
}

// NewHeaderView creates a View containing only a header row
// with the column names also as values of that row.
func NewHeaderView(cols ...string) *HeaderView {
	for i, col := range cols {
		cols[i] = strings.TrimSpace(col)
	}
	return &HeaderView{Cols: cols}
}

// NewHeaderViewFrom creates a HeaderView from the title and columns of source.
func NewHeaderViewFrom(source View) *HeaderView {
	return &HeaderView{Tit: source.Title(), Cols: source.Columns()}
}

// HeaderView is a View with exactly one row
// that contains the column names as values.
type HeaderView struct {
	Tit  string
	Cols []string
}

func (view *HeaderView) Title() string     { return view.Tit }
func (view *HeaderView) Columns() []string { return view.Cols }

// NumRows always returns 1.
func (view *HeaderView) NumRows() int { return 1 }

func (view *HeaderView) Cell(row, col int) any {
	if row != 0 || col < 0 || col >= len(view.Cols) {
		return nil
	}
	return view.Cols[col]
}
