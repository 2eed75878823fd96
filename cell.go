package sparsetable

import "fmt"

// Cell is a populated (row, column, value) entry of a Table.
//
// The location of a Cell is fixed at construction,
// moving a value to another location is a Remove followed by an Add.
// The value may be changed with SetValue at any time,
// which does not affect the structure of the Table holding the cell.
type Cell[V any] struct {
	row    int
	column int
	value  V
}

// NewCell returns a new Cell.
func NewCell[V any](row, column int, value V) *Cell[V] {
	return &Cell[V]{row: row, column: column, value: value}
}

func (c *Cell[V]) Row() int    { return c.row }
func (c *Cell[V]) Column() int { return c.column }
func (c *Cell[V]) Value() V    { return c.value }

// SetValue replaces the value of the cell.
func (c *Cell[V]) SetValue(value V) { c.value = value }

// Location returns the (row, column) address of the cell.
func (c *Cell[V]) Location() CellLocation {
	return CellLocation{Row: c.row, Column: c.column}
}

// coordinate returns the cell's coordinate on axis.
func (c *Cell[V]) coordinate(axis Axis) int {
	if axis == ColumnAxis {
		return c.column
	}
	return c.row
}

func (c *Cell[V]) String() string {
	return fmt.Sprintf("(%d,%d)=%v", c.row, c.column, c.value)
}
