// Package markdown parses the constrained markdown dialect used by goal
// documents: a flat sequence of titled sections, each carrying free text and
// zero or more pipe tables. Tables remember their source byte range so
// callers can rewrite them in place.
package markdown

import (
	"fmt"
	"os"
	"strings"
)

// Section is one heading-delimited region of a document.
type Section struct {
	// Title is the heading text, without the leading '#' markers.
	Title string

	// Level is the heading depth (number of '#' characters). Content that
	// appears before the first heading lands in an untitled level-0 section.
	Level int

	// Text is the section's free text, with table lines removed.
	Text string

	// Tables holds the pipe tables found in the section, in source order.
	Tables []*Table
}

// Span is a half-open byte range [Start, End) into the source document.
type Span struct {
	Start int
	End   int
}

// Table is one parsed pipe table.
type Table struct {
	Header []string
	Rows   [][]string

	// Span covers the table's lines in the source, from the first byte of
	// the header line to the end of the last row line (exclusive of its
	// trailing newline).
	Span Span
}

// ParseFile reads and parses a document from disk.
func ParseFile(path string) ([]Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	sections, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sections, nil
}

// Parse splits a document into sections and parses any pipe tables inside
// them. Byte offsets in table spans are relative to content.
func Parse(content string) ([]Section, error) {
	var sections []Section
	var current *Section
	var text strings.Builder

	flushText := func() {
		if current != nil {
			current.Text = text.String()
		}
		text.Reset()
	}

	lines := splitLines(content)
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line.text)

		if level, title, ok := parseHeading(trimmed); ok {
			flushText()
			sections = append(sections, Section{Title: title, Level: level})
			current = &sections[len(sections)-1]
			continue
		}

		if isTableLine(trimmed) {
			if current == nil {
				sections = append(sections, Section{})
				current = &sections[0]
			}
			table, next, err := parseTable(lines, i)
			if err != nil {
				return nil, err
			}
			current.Tables = append(current.Tables, table)
			i = next - 1
			continue
		}

		if current == nil {
			if trimmed == "" {
				continue
			}
			sections = append(sections, Section{})
			current = &sections[0]
		}
		text.WriteString(line.text)
		text.WriteString("\n")
	}
	flushText()

	return sections, nil
}

type line struct {
	text  string
	start int // byte offset of the line's first character
}

func splitLines(content string) []line {
	var lines []line
	offset := 0
	for _, text := range strings.Split(content, "\n") {
		lines = append(lines, line{text: text, start: offset})
		offset += len(text) + 1
	}
	return lines
}

func parseHeading(trimmed string) (level int, title string, ok bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	level = 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	rest := trimmed[level:]
	if rest != "" && !strings.HasPrefix(rest, " ") {
		return 0, "", false
	}
	return level, strings.TrimSpace(rest), true
}

func isTableLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|")
}

// isSeparatorLine reports whether the cells form a header separator such as
// | --- | :--- |.
func isSeparatorLine(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if strings.Trim(cell, "-: ") != "" {
			return false
		}
		if !strings.Contains(cell, "-") {
			return false
		}
	}
	return true
}

// parseTable consumes table lines starting at lines[start] and returns the
// parsed table plus the index of the first non-table line.
func parseTable(lines []line, start int) (*Table, int, error) {
	header := splitCells(lines[start].text)
	table := &Table{
		Header: header,
		Span:   Span{Start: lines[start].start, End: lines[start].start + len(lines[start].text)},
	}

	i := start + 1
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i].text)
		if !isTableLine(trimmed) {
			break
		}
		cells := splitCells(lines[i].text)
		if i == start+1 && isSeparatorLine(cells) {
			table.Span.End = lines[i].start + len(lines[i].text)
			i++
			continue
		}
		if len(cells) != len(header) {
			return nil, 0, fmt.Errorf(
				"table row has %d cells, expected %d to match header %v: %q",
				len(cells), len(header), header, strings.TrimSpace(lines[i].text),
			)
		}
		table.Rows = append(table.Rows, cells)
		table.Span.End = lines[i].start + len(lines[i].text)
		i++
	}

	return table, i, nil
}

// splitCells splits a pipe-table line into trimmed cell values. Only the
// empty fields produced by the boundary pipes are dropped, so interior and
// trailing empty cells survive (`| Metadata | |` yields ["Metadata", ""]).
func splitCells(text string) []string {
	trimmed := strings.TrimSpace(text)
	parts := strings.Split(trimmed, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// FindSection returns the first section with the given title, or nil.
func FindSection(sections []Section, title string) *Section {
	for i := range sections {
		if sections[i].Title == title {
			return &sections[i]
		}
	}
	return nil
}
