package goal

import (
	"fmt"
	"strings"

	"github.com/goalworks/goalpost/pkg/markdown"
)

// FormatGoalTable renders a list of goals as a markdown table. While any
// goal is still proposed the table shows the asked teams; once everything is
// decided it shows tracking-issue progress instead.
func FormatGoalTable(goals []*Document) string {
	anyProposed := false
	for _, g := range goals {
		if g.Metadata.Status.Acceptance == Proposed {
			anyProposed = true
			break
		}
	}

	table := &markdown.Table{}
	if anyProposed {
		table.Header = []string{"Goal", "Point of contact", "Team"}
		for _, g := range goals {
			names := make([]string, 0)
			for _, t := range g.TeamsWithAsks() {
				names = append(names, t.Name)
			}
			table.Rows = append(table.Rows, []string{
				goalLink(g),
				g.PointOfContactForList(),
				strings.Join(names, ", "),
			})
		}
	} else {
		table.Header = []string{"Goal", "Point of contact", "Progress"}
		for _, g := range goals {
			table.Rows = append(table.Rows, []string{
				goalLink(g),
				g.PointOfContactForList(),
				progressCell(g),
			})
		}
	}

	return table.Render()
}

func goalLink(g *Document) string {
	return fmt.Sprintf("[%s](%s)", g.Metadata.Title, *g.LinkPath)
}

// progressCell renders either a placeholder or an embedded progress-bar
// reference keyed by milestone:org:repo:number.
func progressCell(g *Document) string {
	id := g.Metadata.TrackingIssue
	if id == nil {
		return "(no tracking issue)"
	}
	return fmt.Sprintf(
		"<a href='%s' alt='Tracking issue'><div class='tracking-issue-progress' id='%s:%s:%s:%d'></div></a>",
		id.URL(), g.Milestone(), id.Org, id.Repo, id.Number,
	)
}
