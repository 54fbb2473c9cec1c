package markdown

import (
	"fmt"
	"os"
	"strings"
)

// Clone returns a deep copy of the table. The copy keeps the original span
// so it can be written back over the source table.
func (t *Table) Clone() *Table {
	clone := &Table{
		Header: append([]string(nil), t.Header...),
		Span:   t.Span,
	}
	for _, row := range t.Rows {
		clone.Rows = append(clone.Rows, append([]string(nil), row...))
	}
	return clone
}

// SetKeyValue overwrites the value of the row whose first cell equals key,
// or appends a new row if no such row exists. It assumes a two-column
// key/value table.
func (t *Table) SetKeyValue(key, value string) {
	for _, row := range t.Rows {
		if row[0] == key {
			row[1] = value
			return
		}
	}
	t.Rows = append(t.Rows, []string{key, value})
}

// Render formats the table as aligned markdown, without a trailing newline.
func (t *Table) Render() string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
			b.WriteString(" |")
		}
	}

	writeRow(t.Header)
	b.WriteString("\n|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	for _, row := range t.Rows {
		b.WriteString("\n")
		writeRow(row)
	}
	return b.String()
}

// OverwriteInFile replaces this table's byte range in the file at path with
// the rendered replacement table, leaving every byte outside the range
// untouched.
func (t *Table) OverwriteInFile(path string, replacement *Table) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if t.Span.Start < 0 || t.Span.End > len(data) || t.Span.Start > t.Span.End {
		return fmt.Errorf("table span [%d, %d) out of range for %s (%d bytes)",
			t.Span.Start, t.Span.End, path, len(data))
	}

	var b strings.Builder
	b.Write(data[:t.Span.Start])
	b.WriteString(replacement.Render())
	b.Write(data[t.Span.End:])

	return os.WriteFile(path, []byte(b.String()), 0644)
}
