package sparsetable

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"
)

// sortedIndex is an ordered int keyed map
// typed on top of a gods red-black tree map.
type sortedIndex[T any] struct {
	m *treemap.Map
}

func newSortedIndex[T any]() sortedIndex[T] {
	return sortedIndex[T]{m: treemap.NewWithIntComparator()}
}

func (idx sortedIndex[T]) size() int { return idx.m.Size() }

func (idx sortedIndex[T]) empty() bool { return idx.m.Empty() }

func (idx sortedIndex[T]) get(key int) (val T, ok bool) {
	v, found := idx.m.Get(key)
	if !found {
		return val, false
	}
	return v.(T), true
}

// put stores val at key and returns the value it replaced, if any.
func (idx sortedIndex[T]) put(key int, val T) (prev T, replaced bool) {
	prev, replaced = idx.get(key)
	idx.m.Put(key, val)
	return prev, replaced
}

func (idx sortedIndex[T]) remove(key int) (val T, ok bool) {
	val, ok = idx.get(key)
	if ok {
		idx.m.Remove(key)
	}
	return val, ok
}

func (idx sortedIndex[T]) clear() { idx.m.Clear() }

func (idx sortedIndex[T]) first() (key int, val T, ok bool) {
	k, v := idx.m.Min()
	if k == nil {
		return 0, val, false
	}
	return k.(int), v.(T), true
}

func (idx sortedIndex[T]) last() (key int, val T, ok bool) {
	k, v := idx.m.Max()
	if k == nil {
		return 0, val, false
	}
	return k.(int), v.(T), true
}

// after returns the entry with the smallest key greater than key.
// Keys are integers, so that is the ceiling of key+1.
func (idx sortedIndex[T]) after(key int) (next int, val T, ok bool) {
	if key == math.MaxInt {
		return 0, val, false
	}
	k, v := idx.m.Ceiling(key + 1)
	if k == nil {
		return 0, val, false
	}
	return k.(int), v.(T), true
}

func (idx sortedIndex[T]) keys() []int {
	keys := make([]int, 0, idx.m.Size())
	it := idx.m.Iterator()
	for it.Next() {
		keys = append(keys, it.Key().(int))
	}
	return keys
}

// each calls yield for all entries in ascending key order
// until yield returns false.
func (idx sortedIndex[T]) each(yield func(key int, val T) bool) {
	it := idx.m.Iterator()
	for it.Next() {
		if !yield(it.Key().(int), it.Value().(T)) {
			return
		}
	}
}
