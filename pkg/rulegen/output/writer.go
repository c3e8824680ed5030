package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

// DefaultExtension is the rule file extension.
const DefaultExtension = "yaml"

// WriteError reports a rule that could not be written.
type WriteError struct {
	Identifier string
	Title      string
	Path       string
	Err        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write rule %q (%s) to %s: %v", e.Identifier, e.Title, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer writes one file per rule into Dir.
type Writer struct {
	Dir       string
	Extension string

	logger *zap.SugaredLogger
}

// NewWriter creates a Writer for dir using the default extension.
func NewWriter(dir string, logger *zap.SugaredLogger) *Writer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Writer{
		Dir:       dir,
		Extension: DefaultExtension,
		logger:    logger,
	}
}

// Filename returns the file name used for rec.
func (w *Writer) Filename(rec *models.RuleRecord) string {
	ext := strings.TrimPrefix(w.Extension, ".")
	if ext == "" {
		ext = DefaultExtension
	}
	return rec.Identifier + "." + ext
}

// WriteAll writes every record. It returns the paths written and one
// WriteError per record that failed; a failure does not stop later records.
// An error is returned only if the output directory cannot be created.
func (w *Writer) WriteAll(records []*models.RuleRecord) ([]string, []*WriteError, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create output directory: %w", err)
	}

	var (
		written []string
		failed  []*WriteError
	)
	for _, rec := range records {
		path, err := w.write(rec)
		if err != nil {
			we := &WriteError{Identifier: rec.Identifier, Title: rec.Title, Path: path, Err: err}
			failed = append(failed, we)
			w.logger.Warnw("Failed to write rule", "identifier", rec.Identifier, "path", path, "error", err)
			continue
		}
		written = append(written, path)
	}

	w.logger.Infow("Wrote rule files", "dir", w.Dir, "written", len(written), "failed", len(failed))
	return written, failed, nil
}

func (w *Writer) write(rec *models.RuleRecord) (string, error) {
	path := filepath.Join(w.Dir, w.Filename(rec))
	if rec.Identifier == "" {
		return path, fmt.Errorf("empty identifier")
	}

	data, err := ToYAML(rec)
	if err != nil {
		return path, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return path, err
	}
	return path, nil
}
