package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

var validate = validator.New()

// ValidateRule checks a rule against the constraints the rule engine expects.
func ValidateRule(rec *models.RuleRecord) error {
	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid rule: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// LoadRuleFile reads, parses and validates one rule file. The identifier is
// taken from the file name.
func LoadRuleFile(path string) (*models.RuleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rec, err := ParseRule(data)
	if err != nil {
		return nil, err
	}
	rec.Identifier = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := ValidateRule(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// CollectRuleFiles returns the .yaml and .yml files under path. A path that
// names a file is returned as is.
func CollectRuleFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(p))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
