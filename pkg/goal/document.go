// Package goal implements the goal-document pipeline: extracting typed
// metadata and plans from parsed markdown, validating schema conformance,
// resolving task ownership, and aggregating team asks across documents.
package goal

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goalworks/goalpost/pkg/config"
	"github.com/goalworks/goalpost/pkg/markdown"
	"github.com/goalworks/goalpost/pkg/team"
)

// Document is one fully loaded and validated goal document. It is immutable
// after Load; LinkIssue rewrites the backing file but not the in-memory
// record, so callers must re-load to observe the change.
type Document struct {
	// Path is the document's path as given to Load.
	Path string

	// LinkPath is the path relative to the goals directory, suitable for
	// links from other documents. It is shared by pointer with every
	// TeamAsk derived from this document.
	LinkPath *string

	Metadata *Metadata

	// Summary is the text of the Summary section, defaulting to the title.
	Summary string

	// Plans holds the plan tables, main section first.
	Plans []GoalPlan

	// TaskOwners is the sorted, de-duplicated union of individual owners
	// across all non-team-ask plan items.
	TaskOwners []string

	// TeamAsks holds one entry per team-ask plan item.
	TeamAsks []TeamAsk
}

// Load reads a goal document from disk. linkPath is the path to record for
// cross-document links. It returns (nil, nil) when the file is not a goal
// document (its first section has no metadata table), which callers skip.
func Load(path, linkPath string, reg *team.Registry, cfg *config.Config) (*Document, error) {
	sections, err := markdown.ParseFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := fromSections(sections, path, linkPath, reg, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading goal from `%s`: %w", path, err)
	}
	return doc, nil
}

func fromSections(sections []markdown.Section, path, linkPath string,
	reg *team.Registry, cfg *config.Config) (*Document, error) {

	metadata, err := extractMetadata(sections)
	if err != nil {
		return nil, err
	}
	if metadata == nil {
		return nil, nil
	}

	summary, ok := extractSummary(sections)
	if !ok {
		summary = metadata.Title
	}

	// Rejected goals carry no plan obligations.
	var plans []GoalPlan
	if metadata.Status.IsNotNotAccepted() {
		plans, err = extractPlans(sections)
		if err != nil {
			return nil, err
		}
	}

	link := linkPath
	doc := &Document{
		Path:     path,
		LinkPath: &link,
		Metadata: metadata,
		Summary:  summary,
		Plans:    plans,
	}

	for i := range plans {
		titles := []string{metadata.ShortTitle}
		if plans[i].Subgoal != "" {
			titles = append(titles, plans[i].Subgoal)
		}
		for j := range plans[i].PlanItems {
			asks, err := plans[i].PlanItems[j].teamAsks(doc.LinkPath, titles, metadata.PointOfContact, reg, cfg)
			if err != nil {
				return nil, err
			}
			doc.TeamAsks = append(doc.TeamAsks, asks...)
		}
	}

	// Every goal that is still in the running must ask something of a team.
	if metadata.Status.IsNotNotAccepted() && len(doc.TeamAsks) == 0 {
		return nil, invariantErrorf("no team asks in goal; did you include `%s` in the plan table?", teamMarker)
	}

	ownerSet := make(map[string]struct{})
	for i := range plans {
		for j := range plans[i].PlanItems {
			for _, owner := range plans[i].PlanItems[j].TaskOwners() {
				ownerSet[owner] = struct{}{}
			}
		}
	}
	for owner := range ownerSet {
		doc.TaskOwners = append(doc.TaskOwners, owner)
	}
	sort.Strings(doc.TaskOwners)

	return doc, nil
}

// LoadDir loads every goal document under dir, skipping files that are not
// goal documents. Documents are returned sorted by path. A document that
// fails to load aborts the whole directory load; use LoadDirLenient to
// collect per-document failures instead.
func LoadDir(dir string, reg *team.Registry, cfg *config.Config) ([]*Document, error) {
	docs, errs := LoadDirLenient(dir, reg, cfg)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return docs, nil
}

// LoadDirLenient loads every goal document under dir, collecting one error
// per document that fails instead of stopping at the first.
func LoadDirLenient(dir string, reg *team.Registry, cfg *config.Config) ([]*Document, []error) {
	var docs []*Document
	var errs []error

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		if strings.EqualFold(d.Name(), "README.md") {
			return nil
		}

		linkPath, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			linkPath = path
		}

		doc, loadErr := Load(path, linkPath, reg, cfg)
		if loadErr != nil {
			errs = append(errs, loadErr)
			return nil
		}
		if doc != nil {
			docs = append(docs, doc)
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, fmt.Errorf("walking %s: %w", dir, walkErr))
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, errs
}

// IsNotNotAccepted reports whether the goal may yet be accepted.
func (d *Document) IsNotNotAccepted() bool {
	return d.Metadata.Status.IsNotNotAccepted()
}

// TeamsWithAsks returns the sorted, de-duplicated set of teams this goal
// asks something of.
func (d *Document) TeamsWithAsks() []*team.Team {
	seen := make(map[string]*team.Team)
	for i := range d.TeamAsks {
		for _, t := range d.TeamAsks[i].Teams {
			seen[t.Name] = t
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	teams := make([]*team.Team, len(names))
	for i, name := range names {
		teams[i] = seen[name]
	}
	return teams
}

// helpWantedMarker replaces the point of contact of invited goals in
// rendered goal lists.
const helpWantedMarker = "![Help Wanted][]"

// PointOfContactForList returns the point of contact as rendered in goal
// lists: invited goals show a help-wanted marker instead of a username.
func (d *Document) PointOfContactForList() string {
	if d.Metadata.Status.IsInvited {
		return helpWantedMarker
	}
	return d.Metadata.PointOfContact
}

// Milestone is the name of the immediate parent directory of the goal's
// path, used to group goals in rendered views.
func (d *Document) Milestone() string {
	return filepath.Base(filepath.Dir(d.Path))
}
