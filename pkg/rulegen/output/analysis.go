package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

// WriteAnalysis writes a plain-text listing of each case used for manual
// query mapping. records and cases must be index-aligned.
func WriteAnalysis(w io.Writer, records []*models.RuleRecord, cases []models.CaseRow) error {
	if len(records) != len(cases) {
		return fmt.Errorf("analysis: %d records but %d cases", len(records), len(cases))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "DETAILED CASE ANALYSIS FOR MAPPING:")
	for i, rec := range records {
		row := cases[i]
		fmt.Fprintf(bw, "\n--- CASE: %s ---\n", rec.Identifier)
		fmt.Fprintf(bw, "VN_TITLE: %s\n", row.Title.Or("No description"))
		fmt.Fprintf(bw, "DESC: %s\n", row.Details)
		fmt.Fprintf(bw, "QUERY: %s\n", row.Query)
	}
	return bw.Flush()
}

// WriteAnalysisFile writes the analysis listing to path.
func WriteAnalysisFile(path string, records []*models.RuleRecord, cases []models.CaseRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteAnalysis(f, records, cases); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
