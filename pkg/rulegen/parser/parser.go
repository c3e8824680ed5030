// Package parser reads threat-model catalogues into raw rows.
package parser

import "errors"

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")
