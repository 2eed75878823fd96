package csvtable

import (
	"context"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/domonda/go-sparsetable"
)

var cellsColumns = []string{"row", "column", "value"}

// cellsView lists the cells of a table as rows of (row, column, value).
type cellsView[V any] struct {
	title string
	cells []*sparsetable.Cell[V]
}

func newCellsView[V any](table *sparsetable.Table[V]) *cellsView[V] {
	view := &cellsView[V]{cells: make([]*sparsetable.Cell[V], 0, table.Size())}
	for cell := range table.Cells(table.Order()) {
		view.cells = append(view.cells, cell)
	}
	return view
}

func (view *cellsView[V]) Title() string     { return view.title }
func (view *cellsView[V]) Columns() []string { return cellsColumns }
func (view *cellsView[V]) NumRows() int      { return len(view.cells) }

func (view *cellsView[V]) Cell(row, col int) any {
	if row < 0 || row >= len(view.cells) {
		return nil
	}
	switch cell := view.cells[row]; col {
	case 0:
		return cell.Row()
	case 1:
		return cell.Column()
	case 2:
		return cell.Value()
	}
	return nil
}

func (view *cellsView[V]) ReflectCell(row, col int) reflect.Value {
	return reflect.ValueOf(view.Cell(row, col))
}

// WriteCells writes every cell of table as CSV row
// of row index, column index and value
// in the iteration order of the table.
// Values are formatted by w and the header row
// "row", "column", "value" is written if enabled for w.
func WriteCells[V any](ctx context.Context, w *Writer, dest io.Writer, table *sparsetable.Table[V]) error {
	return w.WriteView(ctx, dest, newCellsView(table))
}

func parseIndex(str string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(str))
}
