package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

func sampleRule() *models.RuleRecord {
	return &models.RuleRecord{
		Identifier:  "iam-01_delete_role",
		Title:       "Xóa vai trò IAM",
		Description: `Xóa vai trò IAM. Attacker removes "audit" role`,
		Author:      "tuanlt26",
		Status:      "active",
		Date:        "2026-01-05",
		Tags:        []string{"aws", "iam", "threat-model"},
		Detection: models.Detection{
			Severity:  models.SeverityHigh,
			Condition: "eventName CONTAINS 'DeleteRole'",
		},
		Output: models.Output{AlertTitle: "Xóa vai trò IAM"},
	}
}

func TestToYAMLKeyOrder(t *testing.T) {
	data, err := ToYAML(sampleRule())
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	root := doc.Content[0]

	var keys []string
	for i := 0; i < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	assert.Equal(t, []string{"id", "title", "description", "author", "status", "date", "tags", "detection", "output"}, keys)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "id: \"\"\n"))
	assert.Contains(t, text, `severity: "high"`)
	assert.Contains(t, text, `condition: "eventName CONTAINS 'DeleteRole'"`)
	assert.Contains(t, text, "enabled: false")
}

func TestToYAMLRoundTrip(t *testing.T) {
	want := sampleRule()

	data, err := ToYAML(want)
	require.NoError(t, err)

	got, err := ParseRule(data)
	require.NoError(t, err)

	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.Tags, got.Tags)
	assert.Equal(t, want.Detection, got.Detection)
	assert.Equal(t, want.Output, got.Output)
	assert.Empty(t, got.Identifier)
}

func TestWriterWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rules")
	w := NewWriter(dir, nil)

	second := sampleRule()
	second.Identifier = "s3-01_public_bucket"

	broken := sampleRule()
	broken.Identifier = ""

	written, failed, err := w.WriteAll([]*models.RuleRecord{sampleRule(), broken, second})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "iam-01_delete_role.yaml"),
		filepath.Join(dir, "s3-01_public_bucket.yaml"),
	}, written)
	require.Len(t, failed, 1)
	assert.Equal(t, broken.Title, failed[0].Title)

	rec, err := LoadRuleFile(written[0])
	require.NoError(t, err)
	assert.Equal(t, "iam-01_delete_role", rec.Identifier)
	assert.Equal(t, models.SeverityHigh, rec.Detection.Severity)
}

func TestWriterFilename(t *testing.T) {
	w := NewWriter("out", nil)
	rec := &models.RuleRecord{Identifier: "ec2-03_run_instances"}

	assert.Equal(t, "ec2-03_run_instances.yaml", w.Filename(rec))

	w.Extension = ".yml"
	assert.Equal(t, "ec2-03_run_instances.yml", w.Filename(rec))
}

func TestValidateRule(t *testing.T) {
	assert.NoError(t, ValidateRule(sampleRule()))

	bad := sampleRule()
	bad.Detection.Severity = "urgent"
	bad.Detection.Condition = ""
	err := ValidateRule(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Severity")
	assert.Contains(t, err.Error(), "Condition")

	long := sampleRule()
	long.Title = strings.Repeat("t", 101)
	assert.Error(t, ValidateRule(long))
}

func TestCollectRuleFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.YML", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("id: \"\"\n"), 0644))
	}

	files, err := CollectRuleFiles(dir)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	single, err := CollectRuleFiles(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Len(t, single, 1)
}

func TestWriteAnalysis(t *testing.T) {
	rec := sampleRule()
	row := models.CaseRow{
		CaseID:   models.Text("IAM-01"),
		CaseName: models.Text("Delete Role"),
		Query:    models.Text("eventName LIKE '%DeleteRole%'"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAnalysis(&buf, []*models.RuleRecord{rec}, []models.CaseRow{row}))

	expected := "DETAILED CASE ANALYSIS FOR MAPPING:\n" +
		"\n--- CASE: iam-01_delete_role ---\n" +
		"VN_TITLE: No description\n" +
		"DESC: \n" +
		"QUERY: eventName LIKE '%DeleteRole%'\n"
	assert.Equal(t, expected, buf.String())

	assert.Error(t, WriteAnalysis(&buf, []*models.RuleRecord{rec}, nil))
}
