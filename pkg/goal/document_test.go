package goal

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "async.md", validGoalDoc)

	doc, err := Load(path, "async.md", testRegistry(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "async.md", *doc.LinkPath)
	assert.Equal(t, "Make the async runtime faster.", doc.Summary)
	assert.Equal(t, []string{"@alice", "@bob"}, doc.TaskOwners)

	require.Len(t, doc.TeamAsks, 1)
	ask := doc.TeamAsks[0]
	assert.Equal(t, "RFC decision", ask.AskDescription)
	assert.Equal(t, []string{"Improve async runtime"}, ask.GoalTitles)
	assert.Equal(t, []string{"compiler", "lang"}, ask.TeamNames())
	assert.Equal(t, "@alice", ask.Owners)
	assert.Same(t, doc.LinkPath, ask.LinkPath)
}

func TestLoadSkipsNonGoalDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "index.md", "# Index\n\nLinks to goals.\n")

	doc, err := Load(path, "index.md", testRegistry(), testConfig())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestLoadSummaryDefaultsToTitle(t *testing.T) {
	dir := t.TempDir()
	doc := strings.Replace(validGoalDoc, "## Summary\n\nMake the async runtime faster.\n", "", 1)
	path := writeDoc(t, dir, "async.md", doc)

	loaded, err := Load(path, "async.md", testRegistry(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "Improve async runtime", loaded.Summary)
}

func TestLoadAcceptedGoalWithoutTeamAsksFails(t *testing.T) {
	dir := t.TempDir()
	doc := strings.Replace(validGoalDoc, "| RFC decision | ![Team] compiler lang | |\n", "", 1)
	path := writeDoc(t, dir, "async.md", doc)

	_, err := Load(path, "async.md", testRegistry(), testConfig())
	require.Error(t, err)

	var invariantErr *InvariantError
	require.True(t, errors.As(err, &invariantErr), "got %T: %v", err, err)
	assert.Contains(t, err.Error(), "![Team]")
	assert.Contains(t, err.Error(), path)
}

func TestLoadNotAcceptedGoalSkipsPlan(t *testing.T) {
	dir := t.TempDir()
	doc := strings.Replace(validGoalDoc, "| Status | Accepted |", "| Status | Not accepted |", 1)
	// Rejected goals carry no plan obligations, even with a broken plan section.
	doc = strings.Replace(doc, "## Ownership and team asks", "## Old notes", 1)
	path := writeDoc(t, dir, "rejected.md", doc)

	loaded, err := Load(path, "rejected.md", testRegistry(), testConfig())
	require.NoError(t, err)
	assert.Empty(t, loaded.Plans)
	assert.Empty(t, loaded.TeamAsks)
	assert.Empty(t, loaded.TaskOwners)
	assert.False(t, loaded.IsNotNotAccepted())
}

func TestLoadUnrecognizedAskPhrase(t *testing.T) {
	dir := t.TempDir()
	doc := strings.Replace(validGoalDoc, "| RFC decision | ![Team] compiler lang | |",
		"| Do something unusual | ![Team] compiler | |", 1)
	path := writeDoc(t, dir, "async.md", doc)

	_, err := Load(path, "async.md", testRegistry(), testConfig())
	require.Error(t, err)

	var refErr *ReferenceError
	require.True(t, errors.As(err, &refErr), "got %T: %v", err, err)
	assert.Contains(t, err.Error(), "Do something unusual")
	assert.Contains(t, err.Error(), "Standard reviews")
	assert.Contains(t, err.Error(), "review PRs as they land")
}

func TestLoadSubgoalTitles(t *testing.T) {
	doc := `# Big goal

| Metadata | |
|----------|-|
| Short title | Big |
| Point of contact | @carol |
| Status | Proposed |
| Teams | <!-- TEAMS WITH ASKS --> |
| Task owners | <!-- TASK OWNERS --> |

## Ownership and team asks

### Part one

| Task | Owner(s) or team(s) | Notes |
|------|---------------------|-------|
| RFC decision | ![Team] lang | pending |
`
	dir := t.TempDir()
	path := writeDoc(t, dir, "big.md", doc)

	loaded, err := Load(path, "big.md", testRegistry(), testConfig())
	require.NoError(t, err)
	require.Len(t, loaded.TeamAsks, 1)
	assert.Equal(t, []string{"Big", "Part one"}, loaded.TeamAsks[0].GoalTitles)
	assert.Equal(t, "pending", loaded.TeamAsks[0].Notes)
}

func TestTeamsWithAsks(t *testing.T) {
	doc := strings.Replace(validGoalDoc, "| Implementation | @alice, @bob | |",
		"| Standard reviews | ![Team] infra | |", 1)
	dir := t.TempDir()
	path := writeDoc(t, dir, "async.md", doc)

	loaded, err := Load(path, "async.md", testRegistry(), testConfig())
	require.NoError(t, err)

	var names []string
	for _, tm := range loaded.TeamsWithAsks() {
		names = append(names, tm.Name)
	}
	assert.Equal(t, []string{"compiler", "infra", "lang"}, names)
}

func TestPointOfContactForList(t *testing.T) {
	dir := t.TempDir()

	invited := strings.Replace(validGoalDoc, "| Status | Accepted |", "| Status | Invited |", 1)
	path := writeDoc(t, dir, "invited.md", invited)
	loaded, err := Load(path, "invited.md", testRegistry(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "![Help Wanted][]", loaded.PointOfContactForList())

	path = writeDoc(t, dir, "plain.md", validGoalDoc)
	loaded, err = Load(path, "plain.md", testRegistry(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "@alice", loaded.PointOfContactForList())
}

func TestMilestone(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, filepath.Join("2026h1", "async.md"), validGoalDoc)

	loaded, err := Load(path, "2026h1/async.md", testRegistry(), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "2026h1", loaded.Milestone())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, filepath.Join("2026h1", "async.md"), validGoalDoc)
	writeDoc(t, dir, filepath.Join("2026h1", "index.md"), "# Index\n\nNot a goal.\n")
	writeDoc(t, dir, filepath.Join("2026h1", "README.md"), "readme text")

	proposed := strings.Replace(validGoalDoc, "| Status | Accepted |", "| Status | Proposed |", 1)
	proposed = strings.Replace(proposed, "# Improve async runtime", "# Better builds", 1)
	writeDoc(t, dir, filepath.Join("2026h1", "builds.md"), proposed)

	docs, err := LoadDir(dir, testRegistry(), testConfig())
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Sorted by path, and link paths are relative to dir.
	assert.Equal(t, "Improve async runtime", docs[0].Metadata.Title)
	assert.Equal(t, filepath.Join("2026h1", "async.md"), *docs[0].LinkPath)
	assert.Equal(t, "Better builds", docs[1].Metadata.Title)
}

func TestLoadDirLenientCollectsErrors(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "good.md", validGoalDoc)

	broken := strings.Replace(validGoalDoc, "| Status | Accepted |", "| Status | Bogus |", 1)
	writeDoc(t, dir, "broken.md", broken)

	docs, errs := LoadDirLenient(dir, testRegistry(), testConfig())
	require.Len(t, docs, 1)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "broken.md")
	assert.Contains(t, errs[0].Error(), "unrecognized status")
}
