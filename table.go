package sparsetable

import (
	"fmt"
	"iter"
)

// Table is a sparse two dimensional table of values of type V.
//
// Only populated cells are stored. Every cell is referenced
// from the Container of its row and from the Container of its column,
// both indices are always mutated together so that a cell exists in
// row r at key c if and only if it exists in column c at key r.
// Containers without cells are removed from their index.
//
// A Table is not safe for concurrent use,
// guard all access with one exclusive lock if needed.
// The zero value is not usable, create tables with New or NewWithOrder.
type Table[V any] struct {
	rows    sortedIndex[*Container[V]]
	columns sortedIndex[*Container[V]]
	order   Order
	size    int
	// version counts structural changes
	// so iterators can detect foreign modifications.
	version uint64
}

// New returns an empty Table iterated in RowMajor order by default.
func New[V any]() *Table[V] {
	return NewWithOrder[V](RowMajor)
}

// NewWithOrder returns an empty Table using order
// as default for Iterator, All, and Cells.
func NewWithOrder[V any](order Order) *Table[V] {
	return &Table[V]{
		rows:    newSortedIndex[*Container[V]](),
		columns: newSortedIndex[*Container[V]](),
		order:   order,
	}
}

// Order returns the default iteration order.
func (t *Table[V]) Order() Order { return t.order }

// SetOrder changes the default iteration order.
func (t *Table[V]) SetOrder(order Order) { t.order = order }

// Size returns the number of populated cells.
func (t *Table[V]) Size() int { return t.size }

// NumRows returns the number of distinct populated rows.
func (t *Table[V]) NumRows() int { return t.rows.size() }

// NumColumns returns the number of distinct populated columns.
func (t *Table[V]) NumColumns() int { return t.columns.size() }

// IsEmpty returns true if the table has no cells.
func (t *Table[V]) IsEmpty() bool { return t.size == 0 }

func (t *Table[V]) lines(axis Axis) sortedIndex[*Container[V]] {
	if axis == ColumnAxis {
		return t.columns
	}
	return t.rows
}

// Add sets the value at (row, column).
// The returned replaced is true if the location was already populated
// and its value got overwritten, false if a new cell was created.
// An error wrapping ErrInconsistentTable means the row and column
// index disagreed about the location and the table is corrupt.
func (t *Table[V]) Add(row, column int, value V) (replaced bool, err error) {
	rowLine, rowFound := t.rows.get(row)
	if !rowFound {
		rowLine = NewContainer[V](RowAxis, row)
	}
	colLine, colFound := t.columns.get(column)
	if !colFound {
		colLine = NewContainer[V](ColumnAxis, column)
	}

	// Both indices must agree before anything is changed
	// so an error leaves the table untouched
	rowCell, inRow := rowLine.GetCell(column)
	colCell, inCol := colLine.GetCell(row)
	if inRow != inCol || rowCell != colCell {
		return false, fmt.Errorf("%w: cell %s found in row: %t, in column: %t", ErrInconsistentTable, Loc(row, column), inRow, inCol)
	}
	if rowLine.index != row || colLine.index != column {
		return false, fmt.Errorf("%w: %s and %s indexed for cell %s", ErrInconsistentTable, rowLine, colLine, Loc(row, column))
	}
	if inRow {
		// Overwriting keeps the existing cell
		// so iterators positioned at it stay valid
		rowCell.value = value
		return true, nil
	}

	cell := NewCell(row, column, value)
	if _, err := rowLine.Add(cell); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInconsistentTable, err)
	}
	if _, err := colLine.Add(cell); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInconsistentTable, err)
	}

	if !rowFound {
		t.rows.put(row, rowLine)
	}
	if !colFound {
		t.columns.put(column, colLine)
	}
	t.size++
	t.version++
	return false, nil
}

// MustAdd calls Add and panics on an error.
func (t *Table[V]) MustAdd(row, column int, value V) (replaced bool) {
	replaced, err := t.Add(row, column, value)
	if err != nil {
		panic(err)
	}
	return replaced
}

// GetCell returns the cell at (row, column).
// The lookup starts at the index with fewer containers.
func (t *Table[V]) GetCell(row, column int) (*Cell[V], bool) {
	if t.rows.size() <= t.columns.size() {
		rowLine, ok := t.rows.get(row)
		if !ok {
			return nil, false
		}
		return rowLine.GetCell(column)
	}
	colLine, ok := t.columns.get(column)
	if !ok {
		return nil, false
	}
	return colLine.GetCell(row)
}

// Get returns the value at (row, column).
func (t *Table[V]) Get(row, column int) (value V, ok bool) {
	cell, ok := t.GetCell(row, column)
	if !ok {
		return value, false
	}
	return cell.value, true
}

// Contains returns if (row, column) is populated.
func (t *Table[V]) Contains(row, column int) bool {
	_, ok := t.GetCell(row, column)
	return ok
}

// Remove deletes the cell at (row, column) from both indices.
// Removing an absent cell is not an error and returns false.
// An error wrapping ErrInconsistentTable is returned if only
// one of the indices holds the cell.
func (t *Table[V]) Remove(row, column int) (removed bool, err error) {
	var rowCell, colCell *Cell[V]
	rowLine, rowOK := t.rows.get(row)
	if rowOK {
		rowCell, _ = rowLine.GetCell(column)
	}
	colLine, colOK := t.columns.get(column)
	if colOK {
		colCell, _ = colLine.GetCell(row)
	}
	switch {
	case rowCell == nil && colCell == nil:
		return false, nil
	case rowCell != colCell:
		return false, fmt.Errorf("%w: cell %s found in row: %t, in column: %t", ErrInconsistentTable, Loc(row, column), rowCell != nil, colCell != nil)
	}

	rowLine.Remove(rowCell)
	if rowLine.IsEmpty() {
		t.rows.remove(row)
	}
	colLine.Remove(colCell)
	if colLine.IsEmpty() {
		t.columns.remove(column)
	}
	t.size--
	t.version++
	return true, nil
}

// Row returns the row at index.
func (t *Table[V]) Row(index int) (Line[V], bool) {
	c, ok := t.rows.get(index)
	return Line[V]{container: c}, ok
}

// Column returns the column at index.
func (t *Table[V]) Column(index int) (Line[V], bool) {
	c, ok := t.columns.get(index)
	return Line[V]{container: c}, ok
}

// RowIndices returns the populated row indices in ascending order.
func (t *Table[V]) RowIndices() []int { return t.rows.keys() }

// ColumnIndices returns the populated column indices in ascending order.
func (t *Table[V]) ColumnIndices() []int { return t.columns.keys() }

// RemoveRow deletes the row at index and all its cells
// from their columns, pruning columns that become empty.
// The removed row is returned detached from the table,
// ok is false if there was no such row.
func (t *Table[V]) RemoveRow(index int) (removed Line[V], ok bool, err error) {
	return t.removeLine(RowAxis, index)
}

// RemoveColumn deletes the column at index, see RemoveRow.
func (t *Table[V]) RemoveColumn(index int) (removed Line[V], ok bool, err error) {
	return t.removeLine(ColumnAxis, index)
}

func (t *Table[V]) removeLine(axis Axis, index int) (Line[V], bool, error) {
	line, ok := t.lines(axis).remove(index)
	if !ok {
		return Line[V]{}, false, nil
	}
	t.version++
	others := t.lines(axis.other())
	for key, cell := range line.All() {
		other, ok := others.get(key)
		if !ok || !other.Remove(cell) {
			return Line[V]{line}, true, fmt.Errorf("%w: cell %s of %s missing in %s %d", ErrInconsistentTable, cell.Location(), line, axis.other(), key)
		}
		if other.IsEmpty() {
			others.remove(key)
		}
		t.size--
	}
	return Line[V]{line}, true, nil
}

// CellRange returns the bounding box of all populated cells.
// It returns ErrEmptyTable if there are no cells.
func (t *Table[V]) CellRange() (CellRange, error) {
	minRow, _, ok := t.rows.first()
	if !ok {
		return CellRange{}, ErrEmptyTable
	}
	maxRow, _, _ := t.rows.last()
	minCol, _, ok := t.columns.first()
	if !ok {
		return CellRange{}, fmt.Errorf("%w: %d rows but no columns", ErrInconsistentTable, t.rows.size())
	}
	maxCol, _, _ := t.columns.last()
	return CellRange{
		MinRow:    minRow,
		MinColumn: minCol,
		EndRow:    maxRow + 1,
		EndColumn: maxCol + 1,
	}, nil
}

// Clear drops all cells.
func (t *Table[V]) Clear() {
	t.rows = newSortedIndex[*Container[V]]()
	t.columns = newSortedIndex[*Container[V]]()
	t.size = 0
	t.version++
}

// Iterator returns an Iterator in the table's default order.
func (t *Table[V]) Iterator() *Iterator[V] {
	return t.IteratorWithOrder(t.order)
}

// IteratorWithOrder returns an Iterator walking the cells in order.
func (t *Table[V]) IteratorWithOrder(order Order) *Iterator[V] {
	return &Iterator[V]{table: t, order: order, version: t.version}
}

// Cells returns the cells in order.
// Adding or removing cells while ranging panics
// with an error wrapping ErrConcurrentModification,
// use an Iterator to remove cells during iteration.
func (t *Table[V]) Cells(order Order) iter.Seq[*Cell[V]] {
	return func(yield func(*Cell[V]) bool) {
		it := t.IteratorWithOrder(order)
		for it.Next() {
			if !yield(it.Cell()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}

// All returns the locations and values of all cells
// in the table's default order, see Cells.
func (t *Table[V]) All() iter.Seq2[CellLocation, V] {
	return func(yield func(CellLocation, V) bool) {
		for cell := range t.Cells(t.order) {
			if !yield(cell.Location(), cell.value) {
				return
			}
		}
	}
}

// Clone returns a copy of the table with new cells holding the same values.
func (t *Table[V]) Clone() *Table[V] {
	clone := NewWithOrder[V](t.order)
	for cell := range t.Cells(RowMajor) {
		clone.MustAdd(cell.row, cell.column, cell.value)
	}
	return clone
}

// Transpose returns a new table where every cell
// at (row, column) is moved to (column, row).
func (t *Table[V]) Transpose() *Table[V] {
	transposed := NewWithOrder[V](t.order.Transpose())
	for cell := range t.Cells(ColumnMajor) {
		transposed.MustAdd(cell.column, cell.row, cell.value)
	}
	return transposed
}

// Check audits the dual index of the table and returns
// an error wrapping ErrInconsistentTable for the first violation.
func (t *Table[V]) Check() error {
	for _, axis := range []Axis{RowAxis, ColumnAxis} {
		var (
			count  int
			others = t.lines(axis.other())
			err    error
		)
		t.lines(axis).each(func(index int, line *Container[V]) bool {
			switch {
			case line.index != index || line.axis != axis:
				err = fmt.Errorf("%w: %s stored at %s index %d", ErrInconsistentTable, line, axis, index)
			case line.IsEmpty():
				err = fmt.Errorf("%w: empty %s", ErrInconsistentTable, line)
			}
			if err != nil {
				return false
			}
			for key, cell := range line.All() {
				other, ok := others.get(key)
				if cell.coordinate(axis) != index || !ok {
					err = fmt.Errorf("%w: cell %s of %s not indexed by %s %d", ErrInconsistentTable, cell.Location(), line, axis.other(), key)
					return false
				}
				if mirrored, _ := other.GetCell(index); mirrored != cell {
					err = fmt.Errorf("%w: cell %s of %s differs in %s", ErrInconsistentTable, cell.Location(), line, other)
					return false
				}
				count++
			}
			return true
		})
		if err != nil {
			return err
		}
		if count != t.size {
			return fmt.Errorf("%w: %s index holds %d cells, table size is %d", ErrInconsistentTable, axis, count, t.size)
		}
	}
	return nil
}
