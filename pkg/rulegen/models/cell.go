// Package models defines data structures for threat-model rule generation.
package models

// Cell is an optional text value read from one table cell.
// The zero value is an absent cell.
type Cell struct {
	text    string
	present bool
}

// Text returns a present cell holding s. Empty text is treated as absent.
func Text(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{text: s, present: true}
}

// Absent returns a cell with no value.
func Absent() Cell {
	return Cell{}
}

// Present reports whether the cell holds a value.
func (c Cell) Present() bool {
	return c.present
}

// String returns the cell text, or "" when absent.
func (c Cell) String() string {
	return c.text
}

// Or returns the cell text, or fallback when absent.
func (c Cell) Or(fallback string) string {
	if !c.present {
		return fallback
	}
	return c.text
}

// CaseRow is the named view of one catalogue row.
type CaseRow struct {
	// Index is the 0-based position of the row in the source table (header is 0).
	Index int
	// CaseID is the first half of the case identifier.
	CaseID Cell
	// CaseName is the second half of the case identifier.
	CaseName Cell
	// Title is the native-language case title.
	Title Cell
	// Details is the supplementary description.
	Details Cell
	// Query is the raw query or condition text.
	Query Cell
}

// HasIdentity reports whether at least one identifying cell is present.
func (r CaseRow) HasIdentity() bool {
	return r.CaseID.Present() || r.CaseName.Present()
}
