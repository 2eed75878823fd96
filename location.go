package sparsetable

import (
	"cmp"
	"fmt"
)

// CellLocation is the (row, column) address of a cell.
// Two locations are equal if both coordinates are equal,
// so CellLocation can be compared with == and used as map key.
type CellLocation struct {
	Row    int
	Column int
}

// Loc returns the CellLocation for row and column.
func Loc(row, column int) CellLocation {
	return CellLocation{Row: row, Column: column}
}

// Transposed returns the location with row and column swapped.
func (l CellLocation) Transposed() CellLocation {
	return CellLocation{Row: l.Column, Column: l.Row}
}

func (l CellLocation) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Column)
}

// CompareRowMajor orders locations by row first and column second.
// It returns a negative number if a < b, zero if a == b
// and a positive number if a > b.
func CompareRowMajor(a, b CellLocation) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Column, b.Column)
}

// CompareColumnMajor orders locations by column first and row second.
func CompareColumnMajor(a, b CellLocation) int {
	if c := cmp.Compare(a.Column, b.Column); c != 0 {
		return c
	}
	return cmp.Compare(a.Row, b.Row)
}

// Order selects how the cells of a Table are traversed.
type Order int

const (
	// RowMajor visits rows in ascending order
	// and the cells of every row in ascending column order.
	RowMajor Order = iota
	// ColumnMajor visits columns in ascending order
	// and the cells of every column in ascending row order.
	ColumnMajor
)

// ParseOrder parses the names returned by Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "row-major", "RowMajor", "":
		return RowMajor, nil
	case "column-major", "ColumnMajor":
		return ColumnMajor, nil
	}
	return 0, fmt.Errorf("invalid sparsetable.Order %q", s)
}

func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Valid returns true for RowMajor and ColumnMajor.
func (o Order) Valid() bool {
	return o == RowMajor || o == ColumnMajor
}

// Compare orders a and b according to o.
func (o Order) Compare(a, b CellLocation) int {
	if o == ColumnMajor {
		return CompareColumnMajor(a, b)
	}
	return CompareRowMajor(a, b)
}

// Transpose returns the other Order.
func (o Order) Transpose() Order {
	if o == ColumnMajor {
		return RowMajor
	}
	return ColumnMajor
}

// outerAxis returns the axis of the containers
// that an iteration in order o walks first.
func (o Order) outerAxis() Axis {
	if o == ColumnMajor {
		return ColumnAxis
	}
	return RowAxis
}
