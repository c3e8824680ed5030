package models

// Severity is the coarse urgency attached to a rule.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Valid reports whether s is one of the known levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// RuleRecord is one detection rule built from a catalogue row.
// Field order matches the serialized key order.
type RuleRecord struct {
	// Identifier is the filename-safe token; it is not serialized.
	Identifier  string    `yaml:"-"`
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title" validate:"required,max=100"`
	Description string    `yaml:"description" validate:"max=500"`
	Author      string    `yaml:"author"`
	Status      string    `yaml:"status" validate:"required,oneof=active disabled experimental deprecated"`
	Date        string    `yaml:"date"`
	Tags        []string  `yaml:"tags"`
	Detection   Detection `yaml:"detection"`
	Output      Output    `yaml:"output"`
}

// Detection holds the rule condition and its evaluation settings.
type Detection struct {
	Severity    Severity    `yaml:"severity" validate:"required,oneof=high medium low"`
	Condition   string      `yaml:"condition" validate:"required"`
	Aggregation Aggregation `yaml:"aggregation"`
}

// Aggregation configures time-window detection. Generated rules never enable it.
type Aggregation struct {
	Enabled bool `yaml:"enabled"`
}

// Output configures the alert produced by a rule.
type Output struct {
	AlertTitle string `yaml:"alert_title"`
}

// RowError records a row that could not be turned into a rule.
type RowError struct {
	// Index is the 0-based table row index.
	Index int
	// Reason describes the failure.
	Reason string
}
