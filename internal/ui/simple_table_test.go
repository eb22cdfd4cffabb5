package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Test Table", []string{"Col1", "Col2"})
	table.AddRow("Row1Col1", "Row1Col2")

	view := table.View(DefaultStyles())
	t.Logf("View:\n%s", view)

	assert.Contains(t, view, "Test Table")
	assert.Contains(t, view, "| Row1Col1 | Row1Col2 |")
	assert.Contains(t, view, "| Col1     | Col2     |")
}

func TestSimpleTable_Layouts(t *testing.T) {
	newTable := func(layout Layout) *SimpleTable {
		table := NewSimpleTable("", []string{"ix", "text"})
		table.Layout = layout
		table.AddRow("1", "b")
		table.AddRow("0", "a")
		return table
	}

	bordered := strings.Split(strings.TrimRight(newTable(LayoutBordered).View(DefaultStyles()), "\n"), "\n")
	assert.Equal(t, []string{
		"+----+------+",
		"| ix | text |",
		"+====+======+",
		"| 1  | b    |",
		"+----+------+",
		"| 0  | a    |",
		"+----+------+",
	}, bordered)

	compact := strings.Split(strings.TrimRight(newTable(LayoutCompact).View(DefaultStyles()), "\n"), "\n")
	assert.Equal(t, []string{
		"+----+------+",
		"| ix | text |",
		"+----+------+",
		"| 1  | b    |",
		"| 0  | a    |",
		"+----+------+",
	}, compact)
}

func TestSimpleTable_EmptyStillHasHeader(t *testing.T) {
	table := NewSimpleTable("", []string{"ix", "value"})

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf, DefaultStyles()))
	assert.Contains(t, buf.String(), "| ix | value |")
}

func TestSimpleTable_ShortRowsArePadded(t *testing.T) {
	table := NewSimpleTable("", []string{"a", "b"})
	table.AccentColumn(1)
	table.AddRow("x")

	assert.Contains(t, table.View(DefaultStyles()), "| x |   |")
}
