package sparsetable

import "iter"

// Line is a read-only handle on one row or column of a Table.
// It exposes the cells of the row or column but none of the
// container mutations, so the dual index of the Table
// can't be desynchronized through it.
//
// The zero Line, as returned for an absent row or column,
// behaves like an empty row.
type Line[V any] struct {
	container *Container[V]
}

func (l Line[V]) Axis() Axis {
	if l.container == nil {
		return RowAxis
	}
	return l.container.axis
}

func (l Line[V]) Index() int {
	if l.container == nil {
		return 0
	}
	return l.container.index
}

func (l Line[V]) Size() int {
	if l.container == nil {
		return 0
	}
	return l.container.Size()
}

func (l Line[V]) IsEmpty() bool { return l.Size() == 0 }

// Get returns the value at key, which is the column index
// for a row and the row index for a column.
func (l Line[V]) Get(key int) (value V, ok bool) {
	if l.container == nil {
		return value, false
	}
	return l.container.Get(key)
}

// GetCell returns the cell at key.
func (l Line[V]) GetCell(key int) (*Cell[V], bool) {
	if l.container == nil {
		return nil, false
	}
	return l.container.GetCell(key)
}

// Has returns if a cell is populated at key.
func (l Line[V]) Has(key int) bool {
	return l.container != nil && l.container.Has(key)
}

// Keys returns the populated keys in ascending order.
func (l Line[V]) Keys() []int {
	if l.container == nil {
		return nil
	}
	return l.container.Keys()
}

// All returns the cells in ascending key order.
func (l Line[V]) All() iter.Seq2[int, *Cell[V]] {
	if l.container == nil {
		return func(yield func(int, *Cell[V]) bool) {}
	}
	return l.container.All()
}

// Values returns the values in ascending key order.
func (l Line[V]) Values() []V {
	values := make([]V, 0, l.Size())
	for _, cell := range l.All() {
		values = append(values, cell.value)
	}
	return values
}

func (l Line[V]) String() string {
	if l.container == nil {
		return "empty line"
	}
	return l.container.String()
}
