package exceltable

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-sparsetable"
)

const defaultSheet = "Sheet1"

// Write writes all cells of table to a new Excel workbook
// with a single sheet and writes the workbook to dest.
// An empty sheet name results in "Sheet1".
// The table must not have cells with negative coordinates.
func Write[V any](dest io.Writer, sheet string, table *sparsetable.Table[V]) (err error) {
	f, err := newWorkbook(sheet, table)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return f.Write(dest)
}

// WriteFile is like Write but saves the workbook as filename.
func WriteFile[V any](filename, sheet string, table *sparsetable.Table[V]) (err error) {
	f, err := newWorkbook(sheet, table)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return f.SaveAs(filename)
}

func newWorkbook[V any](sheet string, table *sparsetable.Table[V]) (*excelize.File, error) {
	if sheet == "" {
		sheet = defaultSheet
	}
	f := excelize.NewFile()
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, errors.Join(err, f.Close())
		}
	}
	for cell := range table.Cells(sparsetable.RowMajor) {
		if cell.Row() < 0 || cell.Column() < 0 {
			return nil, errors.Join(fmt.Errorf("%w: %s", ErrNegativeCoordinate, cell.Location()), f.Close())
		}
		name, err := excelize.CoordinatesToCellName(cell.Column()+1, cell.Row()+1)
		if err != nil {
			return nil, errors.Join(err, f.Close())
		}
		if err = f.SetCellValue(sheet, name, cell.Value()); err != nil {
			return nil, errors.Join(err, f.Close())
		}
	}
	return f, nil
}
