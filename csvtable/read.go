package csvtable

import (
	"fmt"

	"github.com/ungerik/go-fs"

	"github.com/domonda/go-sparsetable"
)

// ReadTable parses csv with ParseDetectFormat and returns
// all non-empty fields as cells of a sparse table
// at their (line, field) coordinates.
func ReadTable(csv []byte, config *FormatDetectionConfig) (*sparsetable.Table[string], *Format, error) {
	rows, format, err := ParseDetectFormat(csv, config)
	if err != nil {
		return nil, format, err
	}
	return sparsetable.FromStrings(rows), format, nil
}

// ReadTableWithFormat is like ReadTable but parses csv with a known format.
func ReadTableWithFormat(csv []byte, format *Format) (*sparsetable.Table[string], error) {
	rows, err := ParseWithFormat(csv, format)
	if err != nil {
		return nil, err
	}
	return sparsetable.FromStrings(rows), nil
}

// ReadTableFile reads file with ReadTable.
func ReadTableFile(file fs.FileReader, config *FormatDetectionConfig) (*sparsetable.Table[string], *Format, error) {
	rows, format, err := ParseFile(file, config)
	if err != nil {
		return nil, format, err
	}
	return sparsetable.FromStrings(rows), format, nil
}

// ReadCells parses csv written by WriteCells
// where every row holds the row index, column index and value of a cell.
// An optional header row is recognized by a non-integer first field.
// Later cells at the same location overwrite earlier ones.
func ReadCells(csv []byte, format *Format) (*sparsetable.Table[string], error) {
	rows, err := ParseWithFormat(csv, format)
	if err != nil {
		return nil, err
	}
	table := sparsetable.New[string]()
	for i, fields := range rows {
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields row, column, value but got %d", i+1, len(fields))
		}
		row, rowErr := parseIndex(fields[0])
		column, colErr := parseIndex(fields[1])
		if i == 0 && (rowErr != nil || colErr != nil) {
			// header row
			continue
		}
		if rowErr != nil {
			return nil, fmt.Errorf("line %d: invalid row: %w", i+1, rowErr)
		}
		if colErr != nil {
			return nil, fmt.Errorf("line %d: invalid column: %w", i+1, colErr)
		}
		if _, err = table.Add(row, column, fields[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return table, nil
}
