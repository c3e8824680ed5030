package transform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

func catalogueRows() [][]string {
	return [][]string{
		{"ID", "Case", "Tiêu đề", "Mô tả", "Log", "", "", "Query"},
		{"IAM-01", "Delete Role", "Xóa vai trò IAM", "", "{}", "", "", "eventName LIKE '%DeleteRole%'"},
		{"", "", "orphan title"},
		{"IAM-02", "Create User"},
		nil,
		{"", "Root Login", "", "", "", "", "", "userIdentity.type = 'Root'"},
	}
}

func TestProcess(t *testing.T) {
	p := NewProcessor(NewBuilder(DefaultRuleDefaults()), zap.NewNop().Sugar())

	res, err := p.Process(context.Background(), catalogueRows())
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Skipped)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Records, 3)
	require.Len(t, res.Cases, 3)

	var ids []string
	for _, rec := range res.Records {
		ids = append(ids, rec.Identifier)
	}
	assert.Equal(t, []string{"iam-01_delete_role", "iam-02_create_user", "root_login"}, ids)

	assert.Equal(t, 1, res.Cases[0].Index)
	assert.Equal(t, 5, res.Cases[2].Index)
	assert.Equal(t, models.SeverityHigh, res.Records[2].Detection.Severity)
}

func TestProcessEndToEnd(t *testing.T) {
	p := NewProcessor(NewBuilder(DefaultRuleDefaults()), nil)

	res, err := p.Process(context.Background(), [][]string{
		{"header"},
		{"IAM-01", "Delete Role", "Delete IAM role", "", "", "", "", "eventName LIKE '%DeleteRole%'"},
	})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.Equal(t, "iam-01_delete_role", rec.Identifier)
	assert.Equal(t, models.SeverityHigh, rec.Detection.Severity)
	assert.Equal(t, "eventName CONTAINS 'DeleteRole'", rec.Detection.Condition)
}

func TestProcessHeaderOnly(t *testing.T) {
	p := NewProcessor(NewBuilder(DefaultRuleDefaults()), nil)

	for _, rows := range [][][]string{nil, {{"ID", "Case"}}} {
		res, err := p.Process(context.Background(), rows)
		require.NoError(t, err)
		assert.Zero(t, res.Total)
		assert.Empty(t, res.Records)
	}
}

func TestProcessRecoversRowFailures(t *testing.T) {
	// A nil builder panics on the first row that reaches it.
	p := NewProcessor(nil, nil)

	res, err := p.Process(context.Background(), [][]string{
		{"header"},
		{"", ""},
		{"IAM-01", "Delete Role"},
		{"IAM-02", "Create User"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Records)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, 2, res.Errors[0].Index)
	assert.Equal(t, 3, res.Errors[1].Index)
	assert.Contains(t, res.Errors[0].Reason, "panic")
}

func TestProcessHonorsCancellation(t *testing.T) {
	p := NewProcessor(NewBuilder(DefaultRuleDefaults()), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Process(ctx, catalogueRows())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Records)
}
