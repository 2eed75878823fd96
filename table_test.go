package sparsetable

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireConsistent[V any](t *testing.T, table *Table[V]) {
	t.Helper()
	require.NoError(t, table.Check())

	rowSum := 0
	for _, index := range table.RowIndices() {
		row, ok := table.Row(index)
		require.True(t, ok)
		require.False(t, row.IsEmpty(), "empty row %d", index)
		rowSum += row.Size()
	}
	colSum := 0
	for _, index := range table.ColumnIndices() {
		col, ok := table.Column(index)
		require.True(t, ok)
		require.False(t, col.IsEmpty(), "empty column %d", index)
		colSum += col.Size()
	}
	require.Equal(t, table.Size(), rowSum)
	require.Equal(t, table.Size(), colSum)
}

func TestTable_Empty(t *testing.T) {
	table := New[string]()
	require.Equal(t, 0, table.Size())
	require.Equal(t, 0, table.NumRows())
	require.Equal(t, 0, table.NumColumns())
	require.True(t, table.IsEmpty())
	require.Equal(t, RowMajor, table.Order())

	_, err := table.CellRange()
	require.ErrorIs(t, err, ErrEmptyTable)

	_, ok := table.Get(0, 0)
	require.False(t, ok)
	_, ok = table.Row(0)
	require.False(t, ok)
	requireConsistent(t, table)
}

func TestTable_CellRange(t *testing.T) {
	table := New[string]()
	table.MustAdd(2, 3, "x")
	table.MustAdd(2, 5, "y")

	require.Equal(t, 1, table.NumRows())
	require.Equal(t, 2, table.NumColumns())
	row, ok := table.Row(2)
	require.True(t, ok)
	require.Equal(t, 2, row.Size())
	require.Equal(t, []string{"x", "y"}, row.Values())

	cellRange, err := table.CellRange()
	require.NoError(t, err)
	require.Equal(t, CellRange{MinRow: 2, MinColumn: 3, EndRow: 3, EndColumn: 6}, cellRange)
	require.Equal(t, 1, cellRange.NumRows())
	require.Equal(t, 3, cellRange.NumColumns())
	require.True(t, cellRange.Contains(Loc(2, 4)))
	require.False(t, cellRange.Contains(Loc(3, 4)))
	requireConsistent(t, table)
}

func TestTable_Remove(t *testing.T) {
	table := New[string]()
	table.MustAdd(0, 0, "a")
	table.MustAdd(1, 1, "b")

	removed, err := table.Remove(0, 0)
	require.NoError(t, err)
	require.True(t, removed)

	require.Equal(t, 1, table.NumRows())
	require.Equal(t, 1, table.NumColumns())
	_, ok := table.Get(0, 0)
	require.False(t, ok)
	value, ok := table.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, "b", value)
	requireConsistent(t, table)
}

func TestTable_RemoveAbsent(t *testing.T) {
	table := New[int]()
	table.MustAdd(4, 1, 1)
	table.MustAdd(0, 7, 2)
	before, err := table.CellRange()
	require.NoError(t, err)

	for _, loc := range []CellLocation{Loc(4, 7), Loc(0, 1), Loc(100, 100), Loc(-1, 1)} {
		removed, err := table.Remove(loc.Row, loc.Column)
		require.NoError(t, err, loc)
		require.False(t, removed, loc)
	}
	require.Equal(t, 2, table.Size())
	after, err := table.CellRange()
	require.NoError(t, err)
	require.Equal(t, before, after)
	requireConsistent(t, table)

	removed, err := New[int]().Remove(0, 0)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestTable_RemoveRow(t *testing.T) {
	table := New[string]()
	table.MustAdd(0, 0, "a")
	table.MustAdd(0, 1, "b")

	row, ok, err := table.RemoveRow(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{0, 1}, row.Keys())
	require.Equal(t, []string{"a", "b"}, row.Values())

	require.Equal(t, 0, table.Size())
	require.Equal(t, 0, table.NumRows())
	require.Equal(t, 0, table.NumColumns())
	_, ok = table.Column(0)
	require.False(t, ok)
	_, ok = table.Column(1)
	require.False(t, ok)

	_, ok, err = table.RemoveRow(0)
	require.NoError(t, err)
	require.False(t, ok)
	requireConsistent(t, table)
}

func TestTable_AbsentLine(t *testing.T) {
	table := New[string]()
	table.MustAdd(1, 1, "a")

	row, ok := table.Row(3)
	require.False(t, ok)
	col, ok := table.Column(3)
	require.False(t, ok)
	removed, ok, err := table.RemoveRow(3)
	require.NoError(t, err)
	require.False(t, ok)

	for _, line := range []Line[string]{row, col, removed} {
		require.Equal(t, 0, line.Size())
		require.True(t, line.IsEmpty())
		require.Nil(t, line.Keys())
		require.Empty(t, line.Values())
		require.False(t, line.Has(1))
		_, ok = line.Get(1)
		require.False(t, ok)
		_, ok = line.GetCell(1)
		require.False(t, ok)
		for range line.All() {
			t.Fatal("absent line yielded a cell")
		}
	}
	require.Equal(t, 1, table.Size())
}

func TestTable_RemoveColumn(t *testing.T) {
	table := New[int]()
	table.MustAdd(0, 0, 1)
	table.MustAdd(1, 0, 2)
	table.MustAdd(1, 1, 3)

	col, ok, err := table.RemoveColumn(0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ColumnAxis, col.Axis())
	require.Equal(t, []int{1, 2}, col.Values())

	require.Equal(t, 1, table.Size())
	require.Equal(t, []int{1}, table.RowIndices())
	require.Equal(t, []int{1}, table.ColumnIndices())
	requireConsistent(t, table)
}

func TestTable_Overwrite(t *testing.T) {
	table := New[string]()
	replaced, err := table.Add(3, 4, "v1")
	require.NoError(t, err)
	require.False(t, replaced)

	replaced, err = table.Add(3, 4, "v2")
	require.NoError(t, err)
	require.True(t, replaced)

	value, ok := table.Get(3, 4)
	require.True(t, ok)
	require.Equal(t, "v2", value)
	require.Equal(t, 1, table.Size())
	requireConsistent(t, table)
}

func TestTable_GetSkewed(t *testing.T) {
	// Few rows, many columns and the other way around
	// so both lookup paths are taken
	wide := New[int]()
	tall := New[int]()
	for i := range 50 {
		wide.MustAdd(i%2, i, i)
		tall.MustAdd(i, i%2, i)
	}
	require.Less(t, wide.NumRows(), wide.NumColumns())
	require.Greater(t, tall.NumRows(), tall.NumColumns())
	for i := range 50 {
		value, ok := wide.Get(i%2, i)
		require.True(t, ok)
		require.Equal(t, i, value)
		value, ok = tall.Get(i, i%2)
		require.True(t, ok)
		require.Equal(t, i, value)

		require.False(t, wide.Contains((i+1)%2, i))
		require.False(t, tall.Contains(i, (i+1)%2))
	}
}

func TestTable_Clear(t *testing.T) {
	table := New[int]()
	for i := range 10 {
		table.MustAdd(i, 10-i, i)
	}
	table.Clear()
	require.Equal(t, 0, table.Size())
	require.Equal(t, 0, table.NumRows())
	require.Equal(t, 0, table.NumColumns())
	requireConsistent(t, table)

	table.MustAdd(1, 1, 1)
	require.Equal(t, 1, table.Size())
	requireConsistent(t, table)
}

func TestTable_TransposeClone(t *testing.T) {
	table := New[string]()
	table.MustAdd(0, 5, "a")
	table.MustAdd(2, 1, "b")

	transposed := table.Transpose()
	require.Equal(t, ColumnMajor, transposed.Order())
	value, ok := transposed.Get(5, 0)
	require.True(t, ok)
	require.Equal(t, "a", value)
	value, ok = transposed.Get(1, 2)
	require.True(t, ok)
	require.Equal(t, "b", value)
	require.Equal(t, table.NumRows(), transposed.NumColumns())
	requireConsistent(t, transposed)

	clone := table.Clone()
	clone.MustAdd(9, 9, "c")
	require.Equal(t, 2, table.Size())
	require.Equal(t, 3, clone.Size())
	requireConsistent(t, clone)
}

func TestTable_DetectsInconsistency(t *testing.T) {
	// corrupted returns a table where cell (0,1)
	// was removed from the column index behind the table's back
	corrupted := func(t *testing.T) *Table[string] {
		table := New[string]()
		table.MustAdd(0, 0, "a")
		table.MustAdd(0, 1, "b")
		col, ok := table.columns.get(1)
		require.True(t, ok)
		_, err := col.RemoveKey(0)
		require.NoError(t, err)
		return table
	}

	t.Run("Check", func(t *testing.T) {
		require.ErrorIs(t, corrupted(t).Check(), ErrInconsistentTable)
	})
	t.Run("Remove", func(t *testing.T) {
		_, err := corrupted(t).Remove(0, 1)
		require.ErrorIs(t, err, ErrInconsistentTable)
	})
	t.Run("Add", func(t *testing.T) {
		table := corrupted(t)
		_, err := table.Add(0, 1, "c")
		require.ErrorIs(t, err, ErrInconsistentTable)

		// The failed Add changed nothing
		require.Equal(t, 2, table.Size())
		row, ok := table.Row(0)
		require.True(t, ok)
		require.Equal(t, []string{"a", "b"}, row.Values())
		col, ok := table.Column(1)
		require.True(t, ok)
		require.False(t, col.Has(0))
	})
	t.Run("RemoveRow", func(t *testing.T) {
		_, _, err := corrupted(t).RemoveRow(0)
		require.ErrorIs(t, err, ErrInconsistentTable)
	})
	t.Run("Iterator.Remove", func(t *testing.T) {
		it := corrupted(t).IteratorWithOrder(RowMajor)
		require.True(t, it.Next())
		require.NoError(t, it.Remove())
		require.True(t, it.Next())
		require.Equal(t, Loc(0, 1), it.Cell().Location())
		require.ErrorIs(t, it.Remove(), ErrInconsistentTable)
		require.ErrorIs(t, it.Err(), ErrInconsistentTable)
		require.False(t, it.Next())
	})
}

// TestTable_RandomOperations compares the table
// against a plain map after every random operation.
func TestTable_RandomOperations(t *testing.T) {
	var (
		rnd   = rand.New(rand.NewPCG(1, 2))
		table = New[int]()
		model = make(map[CellLocation]int)
	)
	for i := range 2000 {
		loc := Loc(rnd.IntN(12)-2, rnd.IntN(9))
		switch op := rnd.IntN(10); {
		case op < 6:
			_, existed := model[loc]
			replaced, err := table.Add(loc.Row, loc.Column, i)
			require.NoError(t, err)
			require.Equal(t, existed, replaced)
			model[loc] = i

		case op < 9:
			_, existed := model[loc]
			removed, err := table.Remove(loc.Row, loc.Column)
			require.NoError(t, err)
			require.Equal(t, existed, removed)
			delete(model, loc)

		default:
			row, ok, err := table.RemoveRow(loc.Row)
			require.NoError(t, err)
			for _, col := range row.Keys() {
				delete(model, Loc(loc.Row, col))
			}
			if !ok {
				for l := range model {
					require.NotEqual(t, loc.Row, l.Row)
				}
			}
		}

		require.Equal(t, len(model), table.Size())
		for l, value := range model {
			got, ok := table.Get(l.Row, l.Column)
			require.True(t, ok, l)
			require.Equal(t, value, got)

			row, ok := table.Row(l.Row)
			require.True(t, ok)
			require.True(t, row.Has(l.Column))
			col, ok := table.Column(l.Column)
			require.True(t, ok)
			require.True(t, col.Has(l.Row))
		}
		requireConsistent(t, table)
	}
}
