package model

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/width"
)

// Grid represents a reconstructed table as rows of cell strings. Cells never
// contain literal tab or newline characters, so TSV serialization round-trips
// without ambiguity.
type Grid [][]string

// GridFromTSV parses tab-separated text into a Grid. An empty string yields
// an empty grid.
func GridFromTSV(tsv string) Grid {
	if tsv == "" {
		return Grid{}
	}

	lines := strings.Split(tsv, "\n")
	grid := make(Grid, len(lines))
	for i, line := range lines {
		grid[i] = strings.Split(line, "\t")
	}
	return grid
}

// ToTSV serializes the grid as tab-separated values: cells joined by \t,
// rows joined by \n.
func (g Grid) ToTSV() string {
	rows := make([]string, len(g))
	for i, row := range g {
		rows[i] = strings.Join(row, "\t")
	}
	return strings.Join(rows, "\n")
}

// RowCount returns the number of rows
func (g Grid) RowCount() int {
	return len(g)
}

// ColCount returns the number of columns in the widest row
func (g Grid) ColCount() int {
	cols := 0
	for _, row := range g {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// ToMarkdown converts the grid to a markdown pipe table. The first row is
// treated as the header row.
func (g Grid) ToMarkdown() string {
	if len(g) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row
	for j, cell := range g[0] {
		sb.WriteString("| ")
		sb.WriteString(cell)
		sb.WriteString(" ")
		if j == len(g[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Separator
	for j := range g[0] {
		sb.WriteString("|---")
		if j == len(g[0])-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")

	// Data rows
	for i := 1; i < len(g); i++ {
		for j, cell := range g[i] {
			sb.WriteString("| ")
			sb.WriteString(cell)
			sb.WriteString(" ")
			if j == len(g[i])-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ToHTML renders the grid as an HTML table. The first row is rendered with
// th cells. Cell text is escaped by the renderer.
func (g Grid) ToHTML() (string, error) {
	table := &html.Node{Type: html.ElementNode, Data: "table", DataAtom: atom.Table}

	for i, row := range g {
		tr := &html.Node{Type: html.ElementNode, Data: "tr", DataAtom: atom.Tr}
		for _, cell := range row {
			tag, a := "td", atom.Td
			if i == 0 {
				tag, a = "th", atom.Th
			}
			td := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: a}
			td.AppendChild(&html.Node{Type: html.TextNode, Data: cell})
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}

	var sb strings.Builder
	if err := html.Render(&sb, table); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Aligned renders the grid as monospace-aligned plain text: each column is
// padded to the width of its widest cell, columns separated by two spaces.
// East Asian wide runes count as two display cells.
func (g Grid) Aligned() string {
	if len(g) == 0 {
		return ""
	}

	widths := make([]int, g.ColCount())
	for _, row := range g {
		for j, cell := range row {
			if w := displayWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row {
			sb.WriteString(cell)
			if j < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[j]-displayWidth(cell)+2))
			}
		}
	}
	return sb.String()
}

// displayWidth returns the number of terminal cells the string occupies.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
