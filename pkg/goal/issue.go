package goal

import (
	"fmt"
	"regexp"
	"strconv"
)

// IssueID identifies a tracking issue on the issue tracker.
type IssueID struct {
	Org    string
	Repo   string
	Number int
}

var (
	// [org/repo#123](https://...) — the rendered form found in documents.
	issueLinkRE = regexp.MustCompile(`^\[([^\]]+)\]\([^)]*\)$`)

	issueShortRE = regexp.MustCompile(`^([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)#([0-9]+)$`)
	issueURLRE   = regexp.MustCompile(`^https://github\.com/([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)/issues/([0-9]+)$`)
)

// ParseIssueID parses a tracking-issue cell. It accepts `org/repo#123`, the
// canonical issue URL, and the markdown-link form that rendering produces,
// so values round-trip through parse → format → parse.
func ParseIssueID(value string) (IssueID, error) {
	text := value
	if m := issueLinkRE.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	m := issueShortRE.FindStringSubmatch(text)
	if m == nil {
		m = issueURLRE.FindStringSubmatch(text)
	}
	if m == nil {
		return IssueID{}, valueErrorf("invalid tracking issue `%s`, expected `org/repo#123` or an issue URL", value)
	}

	number, err := strconv.Atoi(m[3])
	if err != nil {
		return IssueID{}, valueErrorf("invalid tracking issue number in `%s`", value)
	}
	return IssueID{Org: m[1], Repo: m[2], Number: number}, nil
}

// URL returns the canonical issue-tracker URL.
func (id IssueID) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s/issues/%d", id.Org, id.Repo, id.Number)
}

// String renders the issue as a markdown link, the form written back into
// metadata tables.
func (id IssueID) String() string {
	return fmt.Sprintf("[%s/%s#%d](%s)", id.Org, id.Repo, id.Number, id.URL())
}
