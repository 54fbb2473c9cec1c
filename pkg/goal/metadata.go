package goal

import (
	"regexp"
	"strings"

	"github.com/goalworks/goalpost/pkg/markdown"
)

// Row keys and placeholder literals of the metadata table.
const (
	TrackingIssueRow = "Tracking issue"

	pointOfContactRow = "Point of contact"
	statusRow         = "Status"
	shortTitleRow     = "Short title"
	teamsRow          = "Teams"
	taskOwnersRow     = "Task owners"

	// The Teams and Task owners rows hold placeholders that tooling replaces
	// when rendering. A different value means the document was written by
	// hand or against a stale template, which is a hard failure.
	teamsWithAsksPlaceholder = "<!-- TEAMS WITH ASKS -->"
	taskOwnersPlaceholder    = "<!-- TASK OWNERS -->"
)

// usernameRE matches a single GitHub username and nothing else.
var usernameRE = regexp.MustCompile(`^@[A-Za-z0-9-]+$`)

// mentionRE matches one @username token inside free text.
var mentionRE = regexp.MustCompile(`@[A-Za-z0-9-]+`)

// Metadata is the typed contents of a goal document's metadata table.
type Metadata struct {
	// Title is the document's first section heading.
	Title string

	// ShortTitle is the optional Short title row, defaulting to Title.
	ShortTitle string

	// PointOfContact is the raw Point of contact cell (a single @username).
	PointOfContact string

	Status Status

	// TrackingIssue is nil when the row is absent or empty, which is only
	// allowed for goals that are not Accepted.
	TrackingIssue *IssueID

	// Table is the source metadata table, kept for the in-place
	// tracking-issue rewrite.
	Table *markdown.Table
}

// OwnerUsernames extracts the @username tokens from the point-of-contact
// text.
func (m *Metadata) OwnerUsernames() []string {
	return mentionRE.FindAllString(m.PointOfContact, -1)
}

// extractMetadata locates and validates the metadata table in the document's
// first section. A first section without any table means the document is not
// a goal document at all; that case returns (nil, nil) and the caller skips
// the file.
func extractMetadata(sections []markdown.Section) (*Metadata, error) {
	if len(sections) == 0 {
		return nil, schemaErrorf("no sections found in document")
	}
	first := &sections[0]
	if first.Title == "" {
		return nil, schemaErrorf("first section has no title")
	}

	if len(first.Tables) == 0 {
		return nil, nil
	}
	table := first.Tables[0]

	if err := expectHeader(table, []string{"Metadata", ""}); err != nil {
		return nil, err
	}

	poc, ok := rowValue(table, pointOfContactRow)
	if !ok {
		return nil, schemaErrorf("metadata table has no `%s` row", pointOfContactRow)
	}
	if !usernameRE.MatchString(strings.TrimSpace(poc)) {
		return nil, valueErrorf("point of contact must be a single github username (found `%s`)", poc)
	}

	statusValue, ok := rowValue(table, statusRow)
	if !ok {
		return nil, schemaErrorf("metadata table has no `%s` row", statusRow)
	}
	status, err := ParseStatus(statusValue)
	if err != nil {
		return nil, err
	}

	var issue *IssueID
	if value, ok := rowValue(table, TrackingIssueRow); ok && strings.TrimSpace(value) != "" {
		id, err := ParseIssueID(strings.TrimSpace(value))
		if err != nil {
			return nil, err
		}
		issue = &id
	}
	if issue == nil && status.Acceptance == Accepted {
		return nil, valueErrorf("accepted goals cannot have an empty tracking issue")
	}

	if err := verifyRow(table, teamsRow, teamsWithAsksPlaceholder); err != nil {
		return nil, err
	}
	if err := verifyRow(table, taskOwnersRow, taskOwnersPlaceholder); err != nil {
		return nil, err
	}

	shortTitle := first.Title
	if value, ok := rowValue(table, shortTitleRow); ok && value != "" {
		shortTitle = value
	}

	return &Metadata{
		Title:          first.Title,
		ShortTitle:     shortTitle,
		PointOfContact: poc,
		Status:         status,
		TrackingIssue:  issue,
		Table:          table,
	}, nil
}

// rowValue returns the value cell of the first row whose key cell matches.
func rowValue(table *markdown.Table, key string) (string, bool) {
	for _, row := range table.Rows {
		if row[0] == key {
			return row[1], true
		}
	}
	return "", false
}

// verifyRow requires the row to be present with an exact value.
func verifyRow(table *markdown.Table, key, want string) error {
	value, ok := rowValue(table, key)
	if !ok {
		return schemaErrorf("metadata table has no `%s` row", key)
	}
	if value != want {
		return schemaErrorf("metadata table has incorrect `%s` row, expected `%s`", key, want)
	}
	return nil
}

// expectHeader requires the table header to match exactly.
func expectHeader(table *markdown.Table, want []string) error {
	if len(table.Header) != len(want) {
		return schemaErrorf("unexpected table header, expected %q, found %q", want, table.Header)
	}
	for i := range want {
		if table.Header[i] != want[i] {
			return schemaErrorf("unexpected table header, expected %q, found %q", want, table.Header)
		}
	}
	return nil
}
