package transform

import (
	"strings"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

// SeverityRule assigns Severity to titles containing any of Keywords.
type SeverityRule struct {
	Keywords []string
	Severity models.Severity
}

// SeverityPolicy is an ordered keyword table. The first rule with a matching
// keyword wins; titles matching nothing get Default.
type SeverityPolicy struct {
	Rules   []SeverityRule
	Default models.Severity
}

// DefaultSeverityPolicy returns the keyword table used for threat cases.
func DefaultSeverityPolicy() SeverityPolicy {
	return SeverityPolicy{
		Rules: []SeverityRule{
			{
				Keywords: []string{"critical", "admin", "root", "delete", "destroy"},
				Severity: models.SeverityHigh,
			},
			{
				Keywords: []string{"create", "modify", "attach", "policy"},
				Severity: models.SeverityMedium,
			},
		},
		Default: models.SeverityLow,
	}
}

// Classify returns the severity for title. Matching is a case-insensitive
// substring test.
func (p SeverityPolicy) Classify(title string) models.Severity {
	lower := strings.ToLower(title)
	for _, rule := range p.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Severity
			}
		}
	}
	if p.Default == "" {
		return models.SeverityLow
	}
	return p.Default
}
