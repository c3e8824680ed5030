package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadRows reads every row of a sheet as text.
// If sheetName is empty, the first sheet in the workbook is used.
// It returns the rows and the name of the sheet actually read.
func ReadRows(f *excelize.File, sheetName string) ([][]string, string, error) {
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, "", fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, sheetName, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, sheetName, err
	}

	// Merged title cells and stray formatting can leave fully blank rows in
	// the middle of a catalogue. They are kept so row indices line up with
	// the sheet, and the processor counts them as skipped.
	return rows, sheetName, nil
}
