package sparsetable

import "fmt"

type iteratorState int

const (
	beforeFirst iteratorState = iota
	positioned
	removed
	exhausted
)

// Iterator walks the cells of a Table row by row or column by column
// and allows removing the current cell without invalidating the walk.
//
//	it := table.Iterator()
//	for it.Next() {
//		if drop(it.Cell()) {
//			if err := it.Remove(); err != nil {
//				return err
//			}
//		}
//	}
//	return it.Err()
//
// Structural changes of the table through anything else than
// Iterator.Remove make the next Next or Remove call fail
// with ErrConcurrentModification.
type Iterator[V any] struct {
	table   *Table[V]
	order   Order
	version uint64
	state   iteratorState
	err     error

	// line is the container of the outer index currently walked
	line      *Container[V]
	lineIndex int
	cursor    *ContainerCursor[V]
}

// Order returns the order of the walk.
func (it *Iterator[V]) Order() Order { return it.order }

// Next advances to the next cell and returns false
// when all cells have been visited or an error occurred.
func (it *Iterator[V]) Next() bool {
	if it.state == exhausted || it.err != nil {
		return false
	}
	if it.version != it.table.version {
		it.err = ErrConcurrentModification
		return false
	}
	if it.cursor != nil && it.cursor.Next() {
		it.state = positioned
		return true
	}
	outer := it.table.lines(it.order.outerAxis())
	for {
		var (
			index int
			line  *Container[V]
			ok    bool
		)
		if it.line == nil {
			index, line, ok = outer.first()
		} else {
			// Works after it.line was pruned from outer,
			// the cursor is the index not the tree node
			index, line, ok = outer.after(it.lineIndex)
		}
		if !ok {
			it.state = exhausted
			it.line, it.cursor = nil, nil
			return false
		}
		it.line, it.lineIndex = line, index
		it.cursor = line.Cells()
		// Empty containers should not exist but are skipped anyway
		if it.cursor.Next() {
			it.state = positioned
			return true
		}
	}
}

// Cell returns the current cell or nil
// if the iterator is not positioned at a cell.
func (it *Iterator[V]) Cell() *Cell[V] {
	if it.state != positioned {
		return nil
	}
	return it.cursor.Cell()
}

// Location returns the location of the current cell.
func (it *Iterator[V]) Location() (loc CellLocation, ok bool) {
	cell := it.Cell()
	if cell == nil {
		return loc, false
	}
	return cell.Location(), true
}

// Remove deletes the current cell from the row and the column index
// of the table and prunes containers that become empty.
// It does not advance the iterator.
// ErrIllegalState is returned if Next was not called
// or returned false, or if the current cell was already removed.
func (it *Iterator[V]) Remove() error {
	if it.err != nil {
		return it.err
	}
	if it.version != it.table.version {
		it.err = ErrConcurrentModification
		return it.err
	}
	if it.state != positioned {
		return ErrIllegalState
	}

	var (
		t         = it.table
		cell      = it.cursor.Cell()
		outerAxis = it.order.outerAxis()
		innerAxis = outerAxis.other()
	)

	// Remove from the walked container through its cursor
	if err := it.cursor.Remove(); err != nil {
		it.err = err
		return err
	}
	if it.line.IsEmpty() {
		t.lines(outerAxis).remove(it.lineIndex)
	}

	// Mirror on the other index
	others := t.lines(innerAxis)
	otherIndex := cell.coordinate(innerAxis)
	other, ok := others.get(otherIndex)
	if !ok || !other.Remove(cell) {
		it.err = fmt.Errorf("%w: cell %s missing in %s %d", ErrInconsistentTable, cell.Location(), innerAxis, otherIndex)
		return it.err
	}
	if other.IsEmpty() {
		others.remove(otherIndex)
	}

	t.size--
	t.version++
	it.version = t.version
	it.state = removed
	return nil
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[V]) Err() error {
	return it.err
}
