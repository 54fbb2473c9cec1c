package goal

import (
	"regexp"
	"strings"

	"github.com/goalworks/goalpost/pkg/markdown"
	"github.com/goalworks/goalpost/pkg/team"
)

// Marker tokens used inside plan-table cells.
const (
	// teamMarker in an owners cell means the row asks something of a team
	// rather than naming individual owners.
	teamMarker = "![Team]"

	// completeMarker in a notes cell means the item is done.
	completeMarker = "![Complete]"
)

const (
	planSectionTitle    = "Ownership and team asks"
	summarySectionTitle = "Summary"
)

var planHeader = []string{"Task", "Owner(s) or team(s)", "Notes"}

// identifierRE matches the word-like tokens team names are made of.
var identifierRE = regexp.MustCompile(`[A-Za-z0-9.-]+`)

// GoalPlan is one plan table's worth of items, optionally scoped to a named
// subsection of the plan section.
type GoalPlan struct {
	// Subgoal is the subsection title, empty for the main plan section.
	Subgoal string

	PlanItems []PlanItem
}

// PlanItem is one row of a plan table.
type PlanItem struct {
	// Text is the task description.
	Text string

	// Owners is the raw owner(s)-or-team(s) cell.
	Owners string

	// Notes is the raw notes cell.
	Notes string
}

// ParsedOwners is the resolved owner field of a plan item: either the teams
// being asked or the individual usernames responsible.
type ParsedOwners struct {
	Teams     []*team.Team
	Usernames []string
}

// IsTeamAsk reports whether this row asks something of a team.
func (p *PlanItem) IsTeamAsk() bool {
	return strings.Contains(p.Owners, teamMarker)
}

// IsComplete reports whether the item is marked complete in its notes.
func (p *PlanItem) IsComplete() bool {
	return strings.Contains(p.Notes, completeMarker)
}

// TeamsBeingAsked resolves the owners cell against the registry and returns
// the teams this item asks, or an empty slice if it is not a team ask.
func (p *PlanItem) TeamsBeingAsked(reg *team.Registry) ([]*team.Team, error) {
	if !p.IsTeamAsk() {
		return nil, nil
	}

	var teams []*team.Team
	for _, name := range extractTeamNames(p.Owners) {
		t, ok := reg.Lookup(name)
		if !ok {
			return nil, referenceErrorf("no team named `%s` found (valid names are %s)",
				name, strings.Join(reg.Names(), ", "))
		}
		teams = append(teams, t)
	}

	if len(teams) == 0 {
		return nil, valueErrorf("team ask for %q does not list any teams", p.Text)
	}
	return teams, nil
}

// TaskOwners returns the individual usernames in the owners cell, treated as
// a comma-separated list. Team asks have no task owners.
func (p *PlanItem) TaskOwners() []string {
	if p.IsTeamAsk() {
		return nil
	}

	var owners []string
	for _, piece := range strings.Split(p.Owners, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			owners = append(owners, piece)
		}
	}
	return owners
}

// ParseOwners classifies the owners cell. It returns nil for an empty cell,
// the asked teams for a team ask, and the comma-split usernames otherwise.
func (p *PlanItem) ParseOwners(reg *team.Registry) (*ParsedOwners, error) {
	if p.Owners == "" {
		return nil, nil
	}
	if p.IsTeamAsk() {
		teams, err := p.TeamsBeingAsked(reg)
		if err != nil {
			return nil, err
		}
		return &ParsedOwners{Teams: teams}, nil
	}
	return &ParsedOwners{Usernames: p.TaskOwners()}, nil
}

// extractTeamNames pulls the word-like tokens out of an owners cell,
// dropping the literal marker word.
func extractTeamNames(owners string) []string {
	var names []string
	for _, token := range identifierRE.FindAllString(owners, -1) {
		if token == "Team" {
			continue
		}
		names = append(names, token)
	}
	return names
}

// extractSummary returns the trimmed text of the Summary section, or false
// if the document has none.
func extractSummary(sections []markdown.Section) (string, bool) {
	section := markdown.FindSection(sections, summarySectionTitle)
	if section == nil {
		return "", false
	}
	return strings.TrimSpace(section.Text), true
}

// extractPlans locates the plan section and collects one GoalPlan from it
// and from each immediately-following deeper section. Subsections belong to
// the plan until the first section at the same or a shallower level.
func extractPlans(sections []markdown.Section) ([]GoalPlan, error) {
	planIndex := -1
	for i := range sections {
		if sections[i].Title == planSectionTitle {
			planIndex = i
			break
		}
	}
	if planIndex < 0 {
		return nil, schemaErrorf("no `%s` section found", planSectionTitle)
	}

	level := sections[planIndex].Level

	var plans []GoalPlan
	plan, err := planFromSection("", &sections[planIndex])
	if err != nil {
		return nil, err
	}
	if plan != nil {
		plans = append(plans, *plan)
	}

	for i := planIndex + 1; i < len(sections) && sections[i].Level > level; i++ {
		plan, err := planFromSection(sections[i].Title, &sections[i])
		if err != nil {
			return nil, err
		}
		if plan != nil {
			plans = append(plans, *plan)
		}
	}

	if len(plans) == 0 {
		return nil, schemaErrorf("no plan table found in the `%s` section or its subsections", planSectionTitle)
	}
	return plans, nil
}

// planFromSection parses the section's single plan table, if it has one. A
// section with several tables is ambiguous and rejected.
func planFromSection(subgoal string, section *markdown.Section) (*GoalPlan, error) {
	switch len(section.Tables) {
	case 0:
		return nil, nil
	case 1:
		table := section.Tables[0]
		if err := expectHeader(table, planHeader); err != nil {
			return nil, err
		}

		plan := &GoalPlan{Subgoal: subgoal}
		for _, row := range table.Rows {
			plan.PlanItems = append(plan.PlanItems, PlanItem{
				Text:   row[0],
				Owners: row[1],
				Notes:  row[2],
			})
		}
		return plan, nil
	default:
		headers := make([]string, len(section.Tables))
		for i, t := range section.Tables {
			headers[i] = strings.Join(t.Header, ", ")
		}
		return nil, schemaErrorf("found %d tables in section `%s`, expected a single plan table (headers: %s)",
			len(section.Tables), section.Title, strings.Join(headers, "; "))
	}
}
