package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Format represents the output format for reporting issues.
type Format int

const (
	// FormatText outputs issues in a human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs issues in JSON format.
	FormatJSON
	// FormatSARIF outputs issues in SARIF (Static Analysis Results Interchange Format).
	FormatSARIF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "unknown"
	}
}

// ParseFormat maps a format name to its Format value.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	default:
		return FormatText, fmt.Errorf("unsupported format: %q", name)
	}
}

// Reporter handles formatting and outputting linting issues.
type Reporter struct {
	writer io.Writer
	format Format
}

// NewReporter creates a new Reporter with the specified output writer and format.
func NewReporter(writer io.Writer, format Format) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report writes the issues to the output writer in the specified format.
// Issues are sorted by location before reporting. Zero issues produce no
// output at all.
func (r *Reporter) Report(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}

	sortedIssues := make([]Issue, len(issues))
	copy(sortedIssues, issues)
	sort.Slice(sortedIssues, func(i, j int) bool {
		return compareIssuesByLocation(sortedIssues[i], sortedIssues[j])
	})

	switch r.format {
	case FormatText:
		return r.reportText(sortedIssues)
	case FormatJSON:
		return r.reportJSON(sortedIssues)
	case FormatSARIF:
		return r.reportSARIF(sortedIssues)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportText outputs issues in human-readable text format.
func (r *Reporter) reportText(issues []Issue) error {
	for _, issue := range issues {
		if _, err := fmt.Fprintln(r.writer, issue.String()); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
	}
	return nil
}

// reportJSON outputs issues in JSON format.
func (r *Reporter) reportJSON(issues []Issue) error {
	output := struct {
		Issues []Issue `json:"issues"`
	}{
		Issues: issues,
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// reportSARIF outputs issues in SARIF (Static Analysis Results Interchange Format).
func (r *Reporter) reportSARIF(issues []Issue) error {
	// Group issues by rule for the SARIF rules section
	ruleMap := make(map[string][]Issue)
	for _, issue := range issues {
		ruleMap[issue.Rule] = append(ruleMap[issue.Rule], issue)
	}

	var rules []map[string]interface{}
	for ruleName, ruleIssues := range ruleMap {
		if len(ruleIssues) > 0 {
			rules = append(rules, map[string]interface{}{
				"id":   ruleName,
				"name": ruleName,
				"help": map[string]interface{}{
					"text": ruleIssues[0].Message,
				},
			})
		}
	}

	var results []map[string]interface{}
	for _, issue := range issues {
		result := map[string]interface{}{
			"ruleId":  issue.Rule,
			"level":   issue.Severity.String(),
			"message": map[string]interface{}{"text": issue.Message},
			"locations": []map[string]interface{}{
				{
					"physicalLocation": map[string]interface{}{
						"artifactLocation": map[string]interface{}{
							"uri": fileURI(issue.File),
						},
						"region": map[string]interface{}{
							"startLine":   issue.Line,
							"startColumn": issue.Column,
						},
					},
				},
			},
		}
		results = append(results, result)
	}

	sarif := map[string]interface{}{
		"version": "2.1.0",
		"$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		"runs": []map[string]interface{}{
			{
				"tool": map[string]interface{}{
					"driver": map[string]interface{}{
						"name":           "archlint",
						"informationUri": "https://github.com/Jawfish/archlint",
						"rules":          rules,
					},
				},
				"results": results,
			},
		},
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sarif); err != nil {
		return fmt.Errorf("failed to encode SARIF output: %w", err)
	}
	return nil
}

// fileURI returns the file URI for SARIF output.
func fileURI(path string) string {
	return fmt.Sprintf("file://%s", strings.TrimPrefix(path, "/"))
}

// compareIssuesByLocation compares two issues by their location for sorting.
func compareIssuesByLocation(a, b Issue) bool {
	if a.File != b.File {
		return a.File < b.File
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	if a.Column != b.Column {
		return a.Column < b.Column
	}
	return a.Rule < b.Rule
}
