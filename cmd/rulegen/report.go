package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/offlinesiem/rulegen/pkg/rulegen"
	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
	"github.com/offlinesiem/rulegen/pkg/rulegen/output"
)

// previewLimit caps the created-file and error listings in the summary.
const previewLimit = 10

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

type summary struct {
	Processed     int
	Built         int
	Created       []string
	Skipped       int
	RowErrors     []models.RowError
	WriteFailures []*output.WriteError
	DryRun        bool
}

func printCases(w io.Writer, report *rulegen.Report) {
	rule := strings.Repeat("=", 80)
	headerColor.Fprintln(w, rule)
	headerColor.Fprintf(w, "%-25s | %-50s | %s\n", "ID", "Title", "Severity")
	headerColor.Fprintln(w, rule)
	for _, rec := range report.Records {
		fmt.Fprintf(w, "%-25s | %-50s | %s\n", rec.Identifier, clip(rec.Title, 47), rec.Detection.Severity)
	}
	for _, re := range report.Errors {
		errorColor.Fprintf(w, "✗ Error processing row %d: %s\n", re.Index, re.Reason)
	}
}

func printSummary(w io.Writer, s summary) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	headerColor.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Total rows processed: %d\n", s.Processed)
	if s.DryRun {
		fmt.Fprintf(w, "  Rules built (dry run): %d\n", s.Built)
	} else {
		successColor.Fprintf(w, "  Rules created: %d\n", len(s.Created))
	}
	fmt.Fprintf(w, "  Rows skipped: %d\n", s.Skipped)
	failed := len(s.RowErrors) + len(s.WriteFailures)
	if failed > 0 {
		errorColor.Fprintf(w, "  Failed: %d\n", failed)
	} else {
		fmt.Fprintf(w, "  Failed: 0\n")
	}
	fmt.Fprintf(w, "%s\n", rule)

	if len(s.Created) > 0 {
		fmt.Fprintf(w, "\nCreated files:\n")
		for _, f := range s.Created[:min(len(s.Created), previewLimit)] {
			fmt.Fprintf(w, "  - %s\n", f)
		}
		if len(s.Created) > previewLimit {
			fmt.Fprintf(w, "  ... and %d more\n", len(s.Created)-previewLimit)
		}
	}

	var errs []string
	for _, re := range s.RowErrors {
		errs = append(errs, fmt.Sprintf("row %d: %s", re.Index, re.Reason))
	}
	for _, we := range s.WriteFailures {
		errs = append(errs, we.Error())
	}
	if len(errs) > 0 {
		warningColor.Fprintf(w, "\nErrors:\n")
		for _, e := range errs[:min(len(errs), previewLimit)] {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		if len(errs) > previewLimit {
			fmt.Fprintf(w, "  ... and %d more\n", len(errs)-previewLimit)
		}
	}
}

// clip shortens s to n characters, marking the cut with "...".
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
