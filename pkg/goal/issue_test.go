package goal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIssueID(t *testing.T) {
	want := IssueID{Org: "goalworks", Repo: "runtime", Number: 42}

	tests := []struct {
		name  string
		input string
	}{
		{"short form", "goalworks/runtime#42"},
		{"url form", "https://github.com/goalworks/runtime/issues/42"},
		{"markdown link form", "[goalworks/runtime#42](https://github.com/goalworks/runtime/issues/42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIssueID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseIssueIDInvalid(t *testing.T) {
	for _, input := range []string{"", "no issue here", "org/repo", "org/repo#", "#42"} {
		_, err := ParseIssueID(input)
		require.Error(t, err, "input %q", input)

		var valueErr *ValueError
		assert.True(t, errors.As(err, &valueErr), "input %q", input)
	}
}

func TestIssueIDRoundTrip(t *testing.T) {
	id := IssueID{Org: "goalworks", Repo: "runtime", Number: 7}

	assert.Equal(t, "https://github.com/goalworks/runtime/issues/7", id.URL())
	assert.Equal(t, "[goalworks/runtime#7](https://github.com/goalworks/runtime/issues/7)", id.String())

	parsed, err := ParseIssueID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}
