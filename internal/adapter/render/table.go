package render

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"confluence-poster/internal/domain/model"
	"confluence-poster/internal/domain/ports"
)

const pipeColumnHeader = "Pipe"

// Table renders a report as a single HTML table in Confluence storage format.
type Table struct{}

var _ ports.ReportRenderer = (*Table)(nil)

// NewTable creates a table renderer.
func NewTable() *Table {
	return &Table{}
}

// Render lays out one header row followed by one row per pipe. Cell content
// comes from model.PipeRow.Cell so the renderer carries no data logic.
func (t *Table) Render(report model.Report) (string, error) {
	table := element(atom.Table)
	body := element(atom.Tbody)
	table.AppendChild(body)

	header := element(atom.Tr)
	header.AppendChild(headerCell(pipeColumnHeader))
	for _, ruleType := range report.RuleTypes {
		header.AppendChild(headerCell(ruleType))
	}
	body.AppendChild(header)

	for _, row := range report.Rows {
		tr := element(atom.Tr)
		tr.AppendChild(dataCell(row.ID))
		for _, ruleType := range report.RuleTypes {
			tr.AppendChild(dataCell(row.Cell(ruleType)))
		}
		body.AppendChild(tr)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, table); err != nil {
		return "", fmt.Errorf("render table: %w", err)
	}
	return buf.String(), nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func text(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}

func headerCell(value string) *html.Node {
	th := element(atom.Th)
	th.AppendChild(text(value))
	return th
}

func dataCell(value string) *html.Node {
	td := element(atom.Td)
	td.AppendChild(text(value))
	return td
}
