// Package exceltable reads Excel sheets (.xlsx, .xlsm, .xltm, .xltx)
// into sparse tables and writes sparse tables as sheets
// using github.com/xuri/excelize/v2.
//
// Sheet coordinates are kept absolute:
// the cell A1 is located at row 0 and column 0 of the table.
package exceltable

import (
	"errors"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/domonda/go-sparsetable"
)

// Read reads the sheet with the passed name from Excel data
// into a table holding all non-empty cells of the sheet.
// An empty sheet name selects the first sheet.
//
// If rawCellStrings is true the unformatted cell values are returned,
// else the values are formatted with the number format of their cell.
func Read(reader io.Reader, sheet string, rawCellStrings bool) (table *sparsetable.Table[string], err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return readSheet(f, sheet, rawCellStrings)
}

// ReadFile is like Read but opens the Excel file filename.
func ReadFile(filename, sheet string, rawCellStrings bool) (table *sparsetable.Table[string], err error) {
	f, e := excelize.OpenFile(filename)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return readSheet(f, sheet, rawCellStrings)
}

// SheetNames returns the names of all sheets in the Excel data.
func SheetNames(reader io.Reader) (names []string, err error) {
	f, e := excelize.OpenReader(reader)
	if e != nil {
		return nil, e
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return f.GetSheetList(), nil
}

func readSheet(f *excelize.File, sheet string, rawCellStrings bool) (*sparsetable.Table[string], error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, ErrSheetNotExist{SheetName: "<FirstSheet>"}
		}
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: rawCellStrings})
	if err != nil {
		return nil, err
	}
	table := sparsetable.FromStrings(rows)
	if table.IsEmpty() {
		return nil, ErrEmptySheet
	}
	return table, nil
}
