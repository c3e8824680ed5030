package parser

import (
	"encoding/csv"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a CSV export of the catalogue.
// Rows may have differing lengths; a UTF-8 byte order mark is dropped.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}
