// Package rulegen generates detection rules from threat-model catalogues.
package rulegen

import (
	"github.com/offlinesiem/rulegen/pkg/rulegen/parser"
	"github.com/offlinesiem/rulegen/pkg/rulegen/transform"
)

// Options configures rule generation.
type Options struct {
	// SheetName selects the workbook sheet. Empty means the first sheet.
	SheetName string
	// HeaderRows is the number of leading rows to skip.
	HeaderRows int
	// Columns maps catalogue fields to column positions.
	Columns parser.Columns
	// Rule holds the static fields copied into every rule.
	Rule transform.RuleDefaults
	// Severity is the keyword policy. If nil, the default policy is used.
	Severity *transform.SeverityPolicy
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		HeaderRows: 1,
		Columns:    parser.DefaultColumns(),
		Rule:       transform.DefaultRuleDefaults(),
	}
}

// severityPolicy returns the configured policy or the default one.
func (o Options) severityPolicy() transform.SeverityPolicy {
	if o.Severity != nil {
		return *o.Severity
	}
	return transform.DefaultSeverityPolicy()
}
