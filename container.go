package sparsetable

import (
	"cmp"
	"fmt"
	"iter"
)

// Axis tells if a Container holds a row or a column.
type Axis int

const (
	RowAxis Axis = iota
	ColumnAxis
)

func (a Axis) String() string {
	if a == ColumnAxis {
		return "column"
	}
	return "row"
}

// other returns the complementary axis.
func (a Axis) other() Axis {
	if a == ColumnAxis {
		return RowAxis
	}
	return ColumnAxis
}

// Container holds the cells of one row or one column.
// Its entries are keyed by the complementary coordinate
// (the column of a cell in a row container, the row of a cell
// in a column container) and kept in ascending key order.
type Container[V any] struct {
	axis    Axis
	index   int
	entries sortedIndex[*Cell[V]]
}

// NewContainer returns an empty Container for the row or column index.
func NewContainer[V any](axis Axis, index int) *Container[V] {
	return &Container[V]{
		axis:    axis,
		index:   index,
		entries: newSortedIndex[*Cell[V]](),
	}
}

func (c *Container[V]) Axis() Axis    { return c.axis }
func (c *Container[V]) Index() int    { return c.index }
func (c *Container[V]) Size() int     { return c.entries.size() }
func (c *Container[V]) IsEmpty() bool { return c.entries.empty() }

// key returns the key a cell is stored under in this container.
func (c *Container[V]) key(cell *Cell[V]) int {
	return cell.coordinate(c.axis.other())
}

// Get returns the value stored at key.
func (c *Container[V]) Get(key int) (value V, ok bool) {
	cell, ok := c.entries.get(key)
	if !ok {
		return value, false
	}
	return cell.value, true
}

// GetCell returns the cell stored at key.
func (c *Container[V]) GetCell(key int) (*Cell[V], bool) {
	return c.entries.get(key)
}

// Has returns if there is a cell stored at key.
func (c *Container[V]) Has(key int) bool {
	_, ok := c.entries.get(key)
	return ok
}

// Add stores cell under its complementary coordinate.
// The returned replaced is true if a previous cell
// at the same key was overwritten and false if the key was new.
// An error wrapping ErrInvalidCell is returned if the cell
// does not lie on this container's row or column.
func (c *Container[V]) Add(cell *Cell[V]) (replaced bool, err error) {
	if cell.coordinate(c.axis) != c.index {
		return false, fmt.Errorf("%w: %s %d can't hold cell at %s", ErrInvalidCell, c.axis, c.index, cell.Location())
	}
	_, replaced = c.entries.put(c.key(cell), cell)
	return replaced, nil
}

// Remove deletes cell from the container and returns if it was removed.
// A different cell stored at the same key is left untouched.
func (c *Container[V]) Remove(cell *Cell[V]) bool {
	if cell.coordinate(c.axis) != c.index {
		return false
	}
	key := c.key(cell)
	stored, ok := c.entries.get(key)
	if !ok || stored != cell {
		return false
	}
	c.entries.remove(key)
	return true
}

// RemoveKey deletes the cell at key and returns its value.
// An error wrapping ErrKeyNotFound is returned if key is absent.
func (c *Container[V]) RemoveKey(key int) (value V, err error) {
	cell, ok := c.entries.remove(key)
	if !ok {
		return value, fmt.Errorf("%w: %d in %s %d", ErrKeyNotFound, key, c.axis, c.index)
	}
	return cell.value, nil
}

// Keys returns the keys of all cells in ascending order.
func (c *Container[V]) Keys() []int {
	return c.entries.keys()
}

// FirstKey returns the smallest key, ok is false for an empty container.
func (c *Container[V]) FirstKey() (key int, ok bool) {
	key, _, ok = c.entries.first()
	return key, ok
}

// LastKey returns the largest key, ok is false for an empty container.
func (c *Container[V]) LastKey() (key int, ok bool) {
	key, _, ok = c.entries.last()
	return key, ok
}

// All returns the cells of the container in ascending key order.
// The sequence must not be used to modify the container,
// use Cells for removal during iteration.
func (c *Container[V]) All() iter.Seq2[int, *Cell[V]] {
	return c.entries.each
}

// Cells returns a new cursor over the cells of the container.
func (c *Container[V]) Cells() *ContainerCursor[V] {
	return &ContainerCursor[V]{container: c}
}

func (c *Container[V]) String() string {
	return fmt.Sprintf("%s %d (%d cells)", c.axis, c.index, c.Size())
}

// CompareContainers orders containers by index.
func CompareContainers[V any](a, b *Container[V]) int {
	return cmp.Compare(a.index, b.index)
}

// ContainerCursor walks the cells of a Container in ascending key order.
// It reflects the live state of the container:
// cells removed through the cursor or the container
// are not visited, the walk continues after the last visited key.
type ContainerCursor[V any] struct {
	container *Container[V]
	started   bool
	key       int
	current   *Cell[V]
}

// Next moves to the next cell and returns false when there is none left.
func (cur *ContainerCursor[V]) Next() bool {
	var (
		key  int
		cell *Cell[V]
		ok   bool
	)
	if cur.started {
		key, cell, ok = cur.container.entries.after(cur.key)
	} else {
		key, cell, ok = cur.container.entries.first()
	}
	if !ok {
		cur.current = nil
		return false
	}
	cur.started = true
	cur.key = key
	cur.current = cell
	return true
}

// Cell returns the cell the cursor is positioned at or nil.
func (cur *ContainerCursor[V]) Cell() *Cell[V] {
	return cur.current
}

// Remove deletes the current cell from the container.
// It returns ErrIllegalState if the cursor is not positioned at a cell.
func (cur *ContainerCursor[V]) Remove() error {
	if cur.current == nil {
		return ErrIllegalState
	}
	if !cur.container.Remove(cur.current) {
		return fmt.Errorf("%w: cell %s vanished from %s", ErrInconsistentTable, cur.current.Location(), cur.container)
	}
	cur.current = nil
	return nil
}
