package sparsetable

import "reflect"

// View is a dense, rectangular read interface for tabular data
// used by the writers of the csvtable, htmltable, and exceltable packages.
type View interface {
	// Title of the view, used as caption or sheet name.
	Title() string
	// Columns returns the column titles,
	// the length of the slice is the number of columns.
	Columns() []string
	// NumRows returns the number of rows.
	NumRows() int
	// Cell returns the value at (row, col)
	// or nil for an unpopulated or out of bounds cell.
	Cell(row, col int) any
}

// ReflectCellView is a View that can return its cells as reflect.Value.
type ReflectCellView interface {
	View

	// ReflectCell returns the reflected value at (row, col)
	// or an invalid reflect.Value for an empty cell.
	ReflectCell(row, col int) reflect.Value
}

// AsReflectCellView returns view as ReflectCellView,
// wrapping it if it does not implement the interface.
func AsReflectCellView(view View) ReflectCellView {
	if v, ok := view.(ReflectCellView); ok {
		return v
	}
	return reflectCellView{view}
}

type reflectCellView struct {
	View
}

func (v reflectCellView) ReflectCell(row, col int) reflect.Value {
	return reflect.ValueOf(v.Cell(row, col))
}
