package models

// Catalogue is the raw table read from a threat-model workbook.
type Catalogue struct {
	// BookName is the source file name (no path).
	BookName string
	// SheetName is the sheet the rows were read from. Empty for CSV sources.
	SheetName string
	// Rows holds every row in table order, header included.
	// Missing trailing cells are simply not present in the slice.
	Rows [][]string
}
