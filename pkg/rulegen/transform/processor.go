package transform

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
	"github.com/offlinesiem/rulegen/pkg/rulegen/parser"
)

// Result is the outcome of processing one catalogue.
type Result struct {
	// Total is the number of data rows seen (header rows excluded).
	Total int
	// Records holds the built rules in table order.
	Records []*models.RuleRecord
	// Cases holds the source row of each record, index-aligned with Records.
	Cases []models.CaseRow
	// Skipped counts rows with no case identifier.
	Skipped int
	// Errors lists rows that failed to convert.
	Errors []models.RowError
}

// Processor runs the Builder over every data row of a catalogue.
type Processor struct {
	Builder    *Builder
	Columns    parser.Columns
	HeaderRows int

	logger *zap.SugaredLogger
}

// NewProcessor creates a Processor with one header row and the default
// column layout.
func NewProcessor(builder *Builder, logger *zap.SugaredLogger) *Processor {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Processor{
		Builder:    builder,
		Columns:    parser.DefaultColumns(),
		HeaderRows: 1,
		logger:     logger,
	}
}

// Process converts rows into rule records. A failing row is recorded in
// Result.Errors and never stops the run; only ctx cancellation does.
func (p *Processor) Process(ctx context.Context, rows [][]string) (*Result, error) {
	res := &Result{}
	if p.HeaderRows >= len(rows) {
		return res, nil
	}

	for idx := p.HeaderRows; idx < len(rows); idx++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Total++

		row := p.Columns.CaseRow(idx, rows[idx])
		rec, err := p.buildRow(row)
		switch {
		case errors.Is(err, ErrRowSkipped):
			res.Skipped++
			p.logger.Debugw("Skipping row without case identifier", "row", idx)
		case err != nil:
			res.Errors = append(res.Errors, models.RowError{Index: idx, Reason: err.Error()})
			p.logger.Warnw("Failed to build rule", "row", idx, "error", err)
		default:
			res.Records = append(res.Records, rec)
			res.Cases = append(res.Cases, row)
			p.logger.Debugw("Built rule",
				"row", idx,
				"identifier", rec.Identifier,
				"severity", rec.Detection.Severity)
		}
	}

	return res, nil
}

func (p *Processor) buildRow(row models.CaseRow) (rec *models.RuleRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return p.Builder.Build(row)
}
