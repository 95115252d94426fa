package model

import "strings"

// DescriptionSuffix terminates every description rendered into a cell.
const DescriptionSuffix = ";  "

// BlankCell is a non-breaking space, rendered for rule types a pipe has no
// rules for.
const BlankCell = "\u00a0"

// PipeRow is one pipe's line in the report.
type PipeRow struct {
	ID          string
	RuleTypes   map[string]struct{}
	RulesByType map[string][]string
}

// Has reports whether the pipe has at least one rule of the given type.
func (r PipeRow) Has(ruleType string) bool {
	_, ok := r.RuleTypes[ruleType]
	return ok
}

// Cell returns the cell content for a rule-type column.
func (r PipeRow) Cell(ruleType string) string {
	if !r.Has(ruleType) {
		return BlankCell
	}
	return strings.Join(r.RulesByType[ruleType], "")
}

// Report is the rule-type by pipe matrix published to Confluence.
type Report struct {
	RuleTypes []string
	Rows      []PipeRow
}
