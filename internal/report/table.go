package report

import "strings"

// table is a minimal column formatter for report output: dynamic column
// widths, a dashed separator under the header, two-space padding.
type table struct {
	headers []string
	rows    [][]string
}

// newTable creates a table with the given headers.
func newTable(headers ...string) *table {
	return &table{headers: headers}
}

// addRow appends a row, padding short rows to the header count.
func (t *table) addRow(cells ...string) {
	if len(cells) < len(t.headers) {
		padded := make([]string, len(t.headers))
		copy(padded, cells)
		cells = padded
	}
	t.rows = append(t.rows, cells[:len(t.headers)])
}

// render formats the table as a string, one trailing newline per row.
func (t *table) render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	const padding = "  "

	var b strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteString(padding)
			}
			b.WriteString(padRight(cell, widths[i]))
		}
		b.WriteString("\n")
	}

	writeRow(t.headers)

	separators := make([]string, len(t.headers))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeRow(separators)

	for _, row := range t.rows {
		writeRow(row)
	}

	return b.String()
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
