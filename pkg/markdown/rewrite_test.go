package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSetKeyValue(t *testing.T) {
	table := &Table{
		Header: []string{"Metadata", ""},
		Rows: [][]string{
			{"Status", "Accepted"},
		},
	}

	table.SetKeyValue("Tracking issue", "abc")
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Tracking issue", "abc"}, table.Rows[1])

	table.SetKeyValue("Tracking issue", "def")
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Tracking issue", "def"}, table.Rows[1])
}

func TestTableClone(t *testing.T) {
	table := &Table{
		Header: []string{"A", "B"},
		Rows:   [][]string{{"1", "2"}},
		Span:   Span{Start: 10, End: 20},
	}

	clone := table.Clone()
	clone.Rows[0][1] = "changed"
	clone.Rows = append(clone.Rows, []string{"3", "4"})

	assert.Equal(t, "2", table.Rows[0][1])
	assert.Len(t, table.Rows, 1)
	assert.Equal(t, table.Span, clone.Span)
}

func TestTableRenderRoundTrip(t *testing.T) {
	table := &Table{
		Header: []string{"Task", "Owner(s) or team(s)", "Notes"},
		Rows: [][]string{
			{"Implementation", "@alice", ""},
			{"RFC decision", "![Team] compiler", "![Complete]"},
		},
	}

	rendered := table.Render()
	sections, err := Parse(rendered + "\n")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Tables, 1)

	parsed := sections[0].Tables[0]
	assert.Equal(t, table.Header, parsed.Header)
	assert.Equal(t, table.Rows, parsed.Rows)
}

func TestOverwriteInFile(t *testing.T) {
	content := `# Title

before text

| Metadata | |
|----------|-|
| Status | Proposed |

after text
`
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	sections, err := Parse(content)
	require.NoError(t, err)
	table := sections[0].Tables[0]

	updated := table.Clone()
	updated.SetKeyValue("Tracking issue", "some-issue")
	require.NoError(t, table.OverwriteInFile(path, updated))

	after, err := os.ReadFile(path)
	require.NoError(t, err)

	// Bytes outside the table's span are untouched.
	assert.True(t, strings.HasPrefix(string(after), content[:table.Span.Start]))
	assert.True(t, strings.HasSuffix(string(after), content[table.Span.End:]))

	// The rewritten table parses and carries the new row.
	reparsed, err := Parse(string(after))
	require.NoError(t, err)
	newTable := reparsed[0].Tables[0]
	assert.Equal(t, [][]string{
		{"Status", "Proposed"},
		{"Tracking issue", "some-issue"},
	}, newTable.Rows)
}
