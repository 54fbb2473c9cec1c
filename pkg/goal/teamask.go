package goal

import (
	"strings"

	"github.com/goalworks/goalpost/pkg/config"
	"github.com/goalworks/goalpost/pkg/team"
)

// TeamAsk is one validated, cross-referenceable ask of one or more teams,
// derived from a team-ask plan item.
type TeamAsk struct {
	// LinkPath points at the owning document's link path. All asks from one
	// document share the same pointer, keeping one canonical path per
	// document.
	LinkPath *string

	// AskDescription is the plan item's task text, which must match an
	// entry of the recognized-ask vocabulary.
	AskDescription string

	// GoalTitles holds the goal's short title and, when the ask came from a
	// plan subsection, the subgoal title.
	GoalTitles []string

	// Teams are the resolved teams being asked.
	Teams []*team.Team

	// Owners is the point-of-contact text of the owning goal.
	Owners string

	// Notes is the plan item's notes cell.
	Notes string
}

// TeamNames returns the short names of the asked teams.
func (a *TeamAsk) TeamNames() []string {
	names := make([]string, len(a.Teams))
	for i, t := range a.Teams {
		names[i] = t.Name
	}
	return names
}

// teamAsks converts this plan item into zero or one TeamAsk. Non-team-ask
// items produce nothing; team asks must use a recognized ask phrase.
func (p *PlanItem) teamAsks(linkPath *string, goalTitles []string, goalOwners string,
	reg *team.Registry, cfg *config.Config) ([]TeamAsk, error) {

	teams, err := p.TeamsBeingAsked(reg)
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, nil
	}

	if !cfg.HasAsk(p.Text) {
		return nil, referenceErrorf("unrecognized team ask %q, team asks must be one of the following:\n%s",
			p.Text, strings.Join(cfg.DescribeAsks(), "\n"))
	}

	return []TeamAsk{{
		LinkPath:       linkPath,
		AskDescription: p.Text,
		GoalTitles:     append([]string(nil), goalTitles...),
		Teams:          teams,
		Owners:         goalOwners,
		Notes:          p.Notes,
	}}, nil
}
