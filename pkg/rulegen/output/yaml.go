// Package output serializes rule records and writes them to disk.
package output

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/offlinesiem/rulegen/pkg/rulegen/models"
)

// ToYAML serializes a rule with a fixed key order and double-quoted strings.
func ToYAML(rec *models.RuleRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ruleNode(rec)); err != nil {
		return nil, fmt.Errorf("encode rule %q: %w", rec.Identifier, err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseRule decodes a rule file produced by ToYAML.
func ParseRule(data []byte) (*models.RuleRecord, error) {
	var rec models.RuleRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse rule: %w", err)
	}
	return &rec, nil
}

func ruleNode(rec *models.RuleRecord) *yaml.Node {
	tags := &yaml.Node{Kind: yaml.SequenceNode}
	for _, tag := range rec.Tags {
		tags.Content = append(tags.Content, plain(tag))
	}

	return mapping(
		"id", quoted(rec.ID),
		"title", quoted(rec.Title),
		"description", quoted(rec.Description),
		"author", quoted(rec.Author),
		"status", quoted(rec.Status),
		"date", quoted(rec.Date),
		"tags", tags,
		"detection", mapping(
			"severity", quoted(string(rec.Detection.Severity)),
			"condition", quoted(rec.Detection.Condition),
			"aggregation", mapping(
				"enabled", boolean(rec.Detection.Aggregation.Enabled),
			),
		),
		"output", mapping(
			"alert_title", quoted(rec.Output.AlertTitle),
		),
	)
}

// mapping builds a mapping node from alternating key strings and value nodes.
func mapping(pairs ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		n.Content = append(n.Content, plain(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return n
}

func plain(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: s}
}

func boolean(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}
