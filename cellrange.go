package sparsetable

import "fmt"

// CellRange is the bounding box of the populated cells of a Table.
// MinRow and MinColumn are inclusive, EndRow and EndColumn exclusive.
type CellRange struct {
	MinRow    int
	MinColumn int
	EndRow    int
	EndColumn int
}

// NumRows returns the number of rows spanned by the range.
func (r CellRange) NumRows() int { return r.EndRow - r.MinRow }

// NumColumns returns the number of columns spanned by the range.
func (r CellRange) NumColumns() int { return r.EndColumn - r.MinColumn }

// Contains returns if loc lies within the range.
func (r CellRange) Contains(loc CellLocation) bool {
	return loc.Row >= r.MinRow && loc.Row < r.EndRow &&
		loc.Column >= r.MinColumn && loc.Column < r.EndColumn
}

func (r CellRange) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.MinRow, r.EndRow, r.MinColumn, r.EndColumn)
}
