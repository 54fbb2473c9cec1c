package goal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goalworks/goalpost/pkg/config"
	"github.com/goalworks/goalpost/pkg/markdown"
	"github.com/goalworks/goalpost/pkg/team"
)

func testRegistry() *team.Registry {
	return team.New(map[string]*team.Team{
		"compiler": {DisplayName: "Compiler team"},
		"lang":     {DisplayName: "Language team"},
		"infra":    {DisplayName: "Infrastructure team"},
	})
}

func testConfig() *config.Config {
	return config.New(map[string]config.AskDetails{
		"RFC decision":     {Short: "RFC", About: "review and approve the design"},
		"Standard reviews": {Short: "r?", About: "review PRs as they land"},
	})
}

func parseSections(t *testing.T, content string) []markdown.Section {
	t.Helper()
	sections, err := markdown.Parse(content)
	require.NoError(t, err)
	return sections
}

// validGoalDoc is a fully valid accepted goal document used as a baseline in
// tests.
const validGoalDoc = `# Improve async runtime

| Metadata | |
|----------|-|
| Point of contact | @alice |
| Status | Accepted |
| Tracking issue | goalworks/runtime#42 |
| Teams | <!-- TEAMS WITH ASKS --> |
| Task owners | <!-- TASK OWNERS --> |

## Summary

Make the async runtime faster.

## Ownership and team asks

| Task | Owner(s) or team(s) | Notes |
|------|---------------------|-------|
| Implementation | @alice, @bob | |
| RFC decision | ![Team] compiler lang | |
`
