package exceltable

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-sparsetable"
)

func TestWriteRead(t *testing.T) {
	table := sparsetable.New[string]()
	table.MustAdd(0, 0, "A1")
	table.MustAdd(2, 5, "F3")
	table.MustAdd(9, 1, "B10")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Sparse", table))

	names, err := SheetNames(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, []string{"Sparse"}, names)

	read, err := Read(bytes.NewReader(buf.Bytes()), "", true)
	require.NoError(t, err)
	require.Equal(t, table.Size(), read.Size())
	for loc, value := range table.All() {
		got, ok := read.Get(loc.Row, loc.Column)
		require.True(t, ok, "cell %s", loc)
		require.Equal(t, value, got)
	}
	require.NoError(t, read.Check())

	_, err = Read(bytes.NewReader(buf.Bytes()), "Missing", true)
	var sheetErr ErrSheetNotExist
	require.ErrorAs(t, err, &sheetErr)
	require.Equal(t, "Missing", sheetErr.SheetName)
}

func TestWriteFile(t *testing.T) {
	table := sparsetable.New[float64]()
	table.MustAdd(1, 1, 2.5)
	table.MustAdd(3, 0, 7)

	filename := filepath.Join(t.TempDir(), "table.xlsx")
	require.NoError(t, WriteFile(filename, "", table))

	read, err := ReadFile(filename, "Sheet1", true)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, read.RowIndices())
	value, ok := read.Get(1, 1)
	require.True(t, ok)
	require.Equal(t, "2.5", value)
}

func TestWrite_Errors(t *testing.T) {
	table := sparsetable.New[int]()
	table.MustAdd(-1, 0, 1)
	var buf bytes.Buffer
	require.ErrorIs(t, Write(&buf, "", table), ErrNegativeCoordinate)

	empty := sparsetable.New[int]()
	require.NoError(t, Write(&buf, "", empty))
	_, err := Read(bytes.NewReader(buf.Bytes()), "", false)
	require.ErrorIs(t, err, ErrEmptySheet)
}
