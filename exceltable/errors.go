package exceltable

import (
	"errors"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptySheet is returned for a sheet
	// without any non-empty cell.
	ErrEmptySheet = errors.New("empty sheet")

	// ErrNegativeCoordinate is returned when writing a cell
	// with a negative row or column index to a sheet.
	ErrNegativeCoordinate = errors.New("negative cell coordinate")
)

// ErrSheetNotExist is re-exported from excelize and indicates that a requested
// sheet name does not exist in the Excel file.
//
//	var sheetErr exceltable.ErrSheetNotExist
//	if errors.As(err, &sheetErr) {
//	    fmt.Printf("Sheet not found: %s\n", sheetErr.SheetName)
//	}
type ErrSheetNotExist = excelize.ErrSheetNotExist
