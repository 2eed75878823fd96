package sparsetable_test

import (
	"context"
	"fmt"
	"reflect"

	"github.com/domonda/go-sparsetable"
)

func ExampleTable() {
	table := sparsetable.New[string]()
	table.MustAdd(2, 5, "a")
	table.MustAdd(4, 3, "b")
	table.MustAdd(3, 4, "c")

	cellRange, _ := table.CellRange()
	fmt.Println(table.Size(), cellRange)

	for loc, value := range table.All() {
		fmt.Println(loc, value)
	}

	// Output:
	// 3 [2,5)x[3,6)
	// (2,5) a
	// (3,4) c
	// (4,3) b
}

func ExampleIterator_Remove() {
	table := sparsetable.New[int]()
	for i := range 6 {
		table.MustAdd(i/3, i%3, i)
	}

	it := table.IteratorWithOrder(sparsetable.ColumnMajor)
	for it.Next() {
		if it.Cell().Value()%2 == 1 {
			if err := it.Remove(); err != nil {
				panic(err)
			}
		}
	}
	if err := it.Err(); err != nil {
		panic(err)
	}

	fmt.Println(table.Size(), table.RowIndices(), table.ColumnIndices())
	for cell := range table.Cells(sparsetable.RowMajor) {
		fmt.Println(cell)
	}

	// Output:
	// 3 [0 1] [0 1 2]
	// (0,0)=0
	// (0,2)=2
	// (1,1)=4
}

func ExampleTable_RemoveRow() {
	table := sparsetable.New[string]()
	table.MustAdd(0, 0, "a")
	table.MustAdd(0, 1, "b")
	table.MustAdd(1, 1, "c")

	row, ok, err := table.RemoveRow(0)
	if err != nil {
		panic(err)
	}
	fmt.Println(ok, row.Size(), table.Size(), table.ColumnIndices())

	// Output:
	// true 2 1 [1]
}

func ExampleTableView() {
	table := sparsetable.New[float64]()
	table.MustAdd(10, 1, 1.5)
	table.MustAdd(11, 2, 2.25)

	view := sparsetable.NewTableView("Prices", table)
	formatter := sparsetable.NewReflectTypeCellFormatter().
		WithKindFormatter(reflect.Float64, sparsetable.PrintfCellFormatter("%.2f"))
	rows, err := sparsetable.ViewStrings(context.Background(), view, true, formatter)
	if err != nil {
		panic(err)
	}
	for _, row := range rows {
		fmt.Printf("%q\n", row)
	}

	// Output:
	// ["1" "2"]
	// ["1.50" ""]
	// ["" "2.25"]
}
