package rulegen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
	"github.com/offlinesiem/rulegen/pkg/rulegen/parser"
	"github.com/offlinesiem/rulegen/pkg/rulegen/transform"
)

// Report is the outcome of one generation run.
type Report struct {
	*transform.Result

	// BookName is the catalogue file name (no path).
	BookName string
	// SheetName is the sheet that was read.
	SheetName string
	// Table describes the populated region of the sheet.
	Table parser.TableInfo
}

// Load reads a catalogue from an .xlsx, .xlsm or .csv file.
func Load(path, sheetName string) (*models.Catalogue, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, NewSourceError(path, err)
	}

	cat := &models.Catalogue{BookName: filepath.Base(path)}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, NewSourceError(path, err)
		}
		defer f.Close()

		rows, sheet, err := parser.ReadRows(f, sheetName)
		if err != nil {
			if errors.Is(err, parser.ErrSheetNotFound) {
				return nil, err
			}
			return nil, NewSourceError(path, err)
		}
		cat.SheetName = sheet
		cat.Rows = rows

	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, NewSourceError(path, err)
		}
		defer f.Close()

		rows, err := parser.ReadCSV(f)
		if err != nil {
			return nil, NewSourceError(path, err)
		}
		cat.Rows = rows

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return cat, nil
}

// Process converts an in-memory catalogue into rule records.
func Process(ctx context.Context, cat *models.Catalogue, opts Options, logger *zap.SugaredLogger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	builder := transform.NewBuilder(opts.Rule)
	builder.Severity = opts.severityPolicy()

	proc := transform.NewProcessor(builder, logger)
	proc.Columns = opts.Columns
	proc.HeaderRows = opts.HeaderRows

	report := &Report{
		BookName:  cat.BookName,
		SheetName: cat.SheetName,
		Table:     parser.DescribeTable(cat.Rows),
	}
	logger.Infow("Processing catalogue",
		"book", report.BookName,
		"sheet", report.SheetName,
		"rows", report.Table.Rows,
		"columns", report.Table.Columns,
		"range", report.Table.Range)

	res, err := proc.Process(ctx, cat.Rows)
	report.Result = res
	if err != nil {
		return report, err
	}

	logger.Infow("Catalogue processed",
		"rows", res.Total,
		"rules", len(res.Records),
		"skipped", res.Skipped,
		"failed", len(res.Errors))
	return report, nil
}

// Generate loads the catalogue at path and converts it into rule records.
func Generate(ctx context.Context, path string, opts Options, logger *zap.SugaredLogger) (*Report, error) {
	cat, err := Load(path, opts.SheetName)
	if err != nil {
		return nil, err
	}
	return Process(ctx, cat, opts, logger)
}
