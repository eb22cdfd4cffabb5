package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout controls the separators drawn between rows.
type Layout int

const (
	// LayoutBordered draws a separator line after every row.
	LayoutBordered Layout = iota
	// LayoutCompact draws separators only around the header and at the bottom.
	LayoutCompact
)

// SimpleTable is a simple table component for rendering static data.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
	Layout  Layout

	accent map[int]bool
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
		accent:  make(map[int]bool),
	}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// AccentColumn renders the cells of column i with the accent style.
func (t *SimpleTable) AccentColumn(i int) {
	if t.accent == nil {
		t.accent = make(map[int]bool)
	}
	t.accent[i] = true
}

func (t *SimpleTable) columnWidths() []int {
	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				if w := lipgloss.Width(cell); w > colWidths[i] {
					colWidths[i] = w
				}
			}
		}
	}
	return colWidths
}

// View renders the table using the provided styles. The header is always
// drawn, even without rows.
func (t *SimpleTable) View(styles Styles) string {
	colWidths := t.columnWidths()

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	divider := func(fill string) {
		parts := make([]string, len(colWidths))
		for i, w := range colWidths {
			// One space of padding on each side of a cell.
			parts[i] = strings.Repeat(fill, w+2)
		}
		sb.WriteString(styles.Muted.Render("+" + strings.Join(parts, "+") + "+"))
		sb.WriteString("\n")
	}

	sep := styles.Muted.Render("|")
	line := func(cells []string, style func(col int) lipgloss.Style) {
		sb.WriteString(sep)
		for i, w := range colWidths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(style(i).Width(w + 2).Padding(0, 1).Render(cell))
			sb.WriteString(sep)
		}
		sb.WriteString("\n")
	}

	headerStyle := func(int) lipgloss.Style { return styles.Header }
	rowStyle := func(col int) lipgloss.Style {
		if t.accent[col] {
			return styles.Accent
		}
		return styles.Body
	}

	divider("-")
	line(t.Headers, headerStyle)
	if t.Layout == LayoutBordered {
		divider("=")
	} else {
		divider("-")
	}

	for _, row := range t.Rows {
		line(row, rowStyle)
		if t.Layout == LayoutBordered {
			divider("-")
		}
	}
	if t.Layout == LayoutCompact && len(t.Rows) > 0 {
		divider("-")
	}

	return sb.String()
}

// Render writes the table to w.
func (t *SimpleTable) Render(w io.Writer, styles Styles) error {
	_, err := fmt.Fprint(w, t.View(styles))
	return err
}
