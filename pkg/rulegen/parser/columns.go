package parser

import "github.com/offlinesiem/rulegen/pkg/rulegen/models"

// Columns maps catalogue fields to 0-based column positions.
type Columns struct {
	CaseID   int `mapstructure:"case_id" validate:"min=0"`
	CaseName int `mapstructure:"case_name" validate:"min=0"`
	Title    int `mapstructure:"title" validate:"min=0"`
	Details  int `mapstructure:"details" validate:"min=0"`
	Query    int `mapstructure:"query" validate:"min=0"`
}

// DefaultColumns returns the layout of the threat case sheet:
// A and B hold the case id, C the title, D the description and H the query.
// Columns E-G (sample log, notes) are not used.
func DefaultColumns() Columns {
	return Columns{
		CaseID:   0,
		CaseName: 1,
		Title:    2,
		Details:  3,
		Query:    7,
	}
}

// CaseRow builds the named view of a raw row.
func (c Columns) CaseRow(index int, cells []string) models.CaseRow {
	return models.CaseRow{
		Index:    index,
		CaseID:   cellAt(cells, c.CaseID),
		CaseName: cellAt(cells, c.CaseName),
		Title:    cellAt(cells, c.Title),
		Details:  cellAt(cells, c.Details),
		Query:    cellAt(cells, c.Query),
	}
}

// cellAt returns the cell at position i, or an absent cell when the row is
// shorter than i.
func cellAt(cells []string, i int) models.Cell {
	if i < 0 || i >= len(cells) {
		return models.Absent()
	}
	return models.Text(cells[i])
}
