package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads every row of the named sheet from an XLSX workbook.
func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", ErrFormat, sheet, err)
	}
	return rows, nil
}
