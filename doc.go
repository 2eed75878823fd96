// Package sparsetable implements a sparse two dimensional table
// that stores only populated cells.
//
// Every cell of a Table is indexed twice: by the Container of its row,
// keyed by column, and by the Container of its column, keyed by row.
// Both indices reference the same Cell and are always changed together,
// so rows and columns can be looked up, iterated, and removed
// without scanning the whole table.
//
//	table := sparsetable.New[string]()
//	table.MustAdd(2, 3, "x")
//	table.MustAdd(2, 5, "y")
//	table.NumRows()    // 1
//	table.NumColumns() // 2
//	table.CellRange()  // [2,3)x[3,6)
//
// An Iterator walks the cells in RowMajor or ColumnMajor order
// and can remove the current cell from both indices.
// Adding or removing cells through any other path during a walk
// makes the Iterator fail with ErrConcurrentModification.
// The Table.Cells and Table.All sequences have no error result
// and panic with that error instead.
//
// For output the populated range of a Table can be presented
// as dense View with NewTableView, which is understood by the
// writers in the csvtable, htmltable, and exceltable packages.
package sparsetable
