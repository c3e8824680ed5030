package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TableInfo summarizes the populated region of a catalogue.
type TableInfo struct {
	// Range is the used cell range in A1 notation (e.g., "A1:H40"), or "" if empty.
	Range string
	// Rows is the number of rows read, header included.
	Rows int
	// Columns is the widest row length.
	Columns int
	// NonEmpty is the number of non-empty cells inside Range.
	NonEmpty int
	// Density is NonEmpty divided by the area of Range.
	Density float64
}

// DescribeTable computes the populated bounds and fill density of rows.
func DescribeTable(rows [][]string) TableInfo {
	info := TableInfo{Rows: len(rows)}
	for _, row := range rows {
		if len(row) > info.Columns {
			info.Columns = len(row)
		}
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return info
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	info.Range = fmt.Sprintf("%s:%s", startCell, endCell)

	info.NonEmpty = countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	area := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	info.Density = float64(info.NonEmpty) / float64(area)
	return info
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
