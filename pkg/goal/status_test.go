package goal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		label string
		want  Status
	}{
		{"Flagship", Status{Acceptance: Accepted, IsFlagship: true}},
		{"Accepted", Status{Acceptance: Accepted}},
		{"Invited", Status{Acceptance: Accepted, IsInvited: true}},
		{"Proposed", Status{Acceptance: Proposed}},
		{"Proposed for flagship", Status{Acceptance: Proposed, IsFlagship: true}},
		{"Proposed for mentorship", Status{Acceptance: Proposed, IsInvited: true}},
		{"Not accepted", Status{Acceptance: NotAccepted}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseStatus(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatusTrimsWhitespace(t *testing.T) {
	got, err := ParseStatus("  Accepted  ")
	require.NoError(t, err)
	assert.Equal(t, Status{Acceptance: Accepted}, got)
}

func TestParseStatusUnknownLabel(t *testing.T) {
	_, err := ParseStatus("Done")
	require.Error(t, err)

	var valueErr *ValueError
	require.True(t, errors.As(err, &valueErr))
	assert.Contains(t, err.Error(), "Done")
	assert.Contains(t, err.Error(), "Proposed for mentorship")
}

func TestIsNotNotAccepted(t *testing.T) {
	assert.True(t, Status{Acceptance: Proposed}.IsNotNotAccepted())
	assert.True(t, Status{Acceptance: Accepted}.IsNotNotAccepted())
	assert.False(t, Status{Acceptance: NotAccepted}.IsNotNotAccepted())
}
