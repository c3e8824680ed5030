package transform

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

const (
	// MaxTitleLength is the title cap in characters.
	MaxTitleLength = 100
	// MaxDescriptionLength is the description cap in characters.
	MaxDescriptionLength = 500
	// FallbackCondition is used when a row has no usable query.
	FallbackCondition = "eventName = 'UnknownEvent'"

	noDescription = "No description"
)

// ErrRowSkipped is returned for rows with neither identifying cell.
var ErrRowSkipped = errors.New("row has no case identifier")

// ruleIDNamespace seeds deterministic rule IDs.
var ruleIDNamespace = uuid.MustParse("6f1f5b62-8c0e-4c57-9d3e-2f4d8d1b7a10")

// RuleDefaults holds the fields that are the same for every generated rule.
type RuleDefaults struct {
	Author string
	Status string
	Date   string
	Tags   []string
	// AssignIDs fills ID with a UUIDv5 derived from the identifier instead of
	// leaving it empty for the rule store to assign.
	AssignIDs bool
}

// DefaultRuleDefaults returns the static fields used for the threat model.
func DefaultRuleDefaults() RuleDefaults {
	return RuleDefaults{
		Author: "tuanlt26",
		Status: "active",
		Date:   "2026-01-05",
		Tags:   []string{"aws", "iam", "threat-model"},
	}
}

// Builder assembles rule records from case rows.
type Builder struct {
	Defaults RuleDefaults
	Severity SeverityPolicy
}

// NewBuilder returns a Builder with the default severity policy.
func NewBuilder(defaults RuleDefaults) *Builder {
	return &Builder{
		Defaults: defaults,
		Severity: DefaultSeverityPolicy(),
	}
}

// Build converts one row into a rule record. It returns ErrRowSkipped when
// both identifying cells are absent.
func (b *Builder) Build(row models.CaseRow) (*models.RuleRecord, error) {
	if !row.HasIdentity() {
		return nil, ErrRowSkipped
	}

	caseID, caseName := row.CaseID.String(), row.CaseName.String()
	identifier := Sanitize(strings.Trim(caseID+"_"+caseName, "_"))

	rawTitle := row.Title.Or(noDescription)
	title := rawTitle
	if rawTitle == noDescription {
		title = caseID + " " + caseName
	}
	title = truncate(title, MaxTitleLength)

	description := rawTitle
	if row.Details.Present() {
		description = rawTitle + ". " + row.Details.String()
	}
	description = truncate(description, MaxDescriptionLength)

	condition, err := NormalizeQuery(row.Query)
	if err != nil {
		return nil, err
	}
	if condition == "" {
		condition = FallbackCondition
	}

	rec := &models.RuleRecord{
		Identifier:  identifier,
		Title:       title,
		Description: description,
		Author:      b.Defaults.Author,
		Status:      b.Defaults.Status,
		Date:        b.Defaults.Date,
		Tags:        append([]string(nil), b.Defaults.Tags...),
		Detection: models.Detection{
			Severity:  b.Severity.Classify(title),
			Condition: condition,
		},
		Output: models.Output{AlertTitle: title},
	}
	if b.Defaults.AssignIDs {
		rec.ID = uuid.NewSHA1(ruleIDNamespace, []byte(identifier)).String()
	}
	return rec, nil
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
