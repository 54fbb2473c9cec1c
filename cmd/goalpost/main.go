package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goalworks/goalpost/pkg/config"
	"github.com/goalworks/goalpost/pkg/goal"
	"github.com/goalworks/goalpost/pkg/team"
	"github.com/goalworks/goalpost/pkg/tui"
)

var (
	// Used for flags.
	teamsFile string
	asksFile  string
	jsonOut   bool

	rootCmd = &cobra.Command{
		Use:   "goalpost",
		Short: "Validate and aggregate goal documents.",
		Long: `Goalpost loads goal documents (markdown files with a metadata table and a
plan of tasks and team asks), validates them against the goal schema, and
aggregates cross-document views such as outstanding team asks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	checkCmd = &cobra.Command{
		Use:   "check [dir]",
		Short: "Load every goal document and report validation failures.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}

	teamsCmd = &cobra.Command{
		Use:   "teams [dir]",
		Short: "List outstanding team asks, grouped by team.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTeams,
	}

	ownersCmd = &cobra.Command{
		Use:   "owners [dir]",
		Short: "List the cross-goal set of individual task owners.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOwners,
	}

	summaryCmd = &cobra.Command{
		Use:   "summary [dir]",
		Short: "Render the goal summary table as markdown.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSummary,
	}

	linkIssueCmd = &cobra.Command{
		Use:   "link-issue <file> <org/repo#number>",
		Short: "Record a tracking issue in a goal document's metadata table.",
		Args:  cobra.ExactArgs(2),
		RunE:  runLinkIssue,
	}

	watchCmd = &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-run check whenever a goal document changes.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWatch,
	}

	browseCmd = &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse goal documents interactively.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowse,
	}
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#25A065"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E05252"))
)

func init() {
	rootCmd.PersistentFlags().StringVar(&teamsFile, "teams-file", "teams.yml", "Path to the team registry YAML file.")
	rootCmd.PersistentFlags().StringVar(&asksFile, "asks-file", "goalpost.yml", "Path to the recognized-ask vocabulary YAML file.")

	for _, cmd := range []*cobra.Command{checkCmd, teamsCmd, ownersCmd} {
		cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of text.")
	}

	rootCmd.AddCommand(checkCmd, teamsCmd, ownersCmd, summaryCmd, linkIssueCmd, watchCmd, browseCmd)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// loadRegistries loads the two process-wide, read-only lookup tables.
func loadRegistries() (*team.Registry, *config.Config, error) {
	reg, err := team.Load(teamsFile)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(asksFile)
	if err != nil {
		return nil, nil, err
	}
	return reg, cfg, nil
}

func dirArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// Command execution

func runCheck(cmd *cobra.Command, args []string) error {
	reg, cfg, err := loadRegistries()
	if err != nil {
		return err
	}

	docs, errs := goal.LoadDirLenient(dirArg(args), reg, cfg)
	printCheckResults(cmd, docs, errs)

	if len(errs) > 0 {
		return fmt.Errorf("%d goal document(s) failed validation", len(errs))
	}
	return nil
}

func printCheckResults(cmd *cobra.Command, docs []*goal.Document, errs []error) {
	if jsonOut {
		type result struct {
			Path   string `json:"path"`
			Title  string `json:"title,omitempty"`
			Status string `json:"status,omitempty"`
			Error  string `json:"error,omitempty"`
		}
		var results []result
		for _, d := range docs {
			results = append(results, result{
				Path:   d.Path,
				Title:  d.Metadata.Title,
				Status: d.Metadata.Status.Acceptance.String(),
			})
		}
		for _, err := range errs {
			results = append(results, result{Error: err.Error()})
		}
		outputJSON(cmd, results)
		return
	}

	out := cmd.OutOrStdout()
	for _, d := range docs {
		fmt.Fprintf(out, "%s %s (%s)\n",
			passStyle.Render("✓"), d.Path, d.Metadata.Status.Acceptance)
	}
	for _, err := range errs {
		fmt.Fprintf(out, "%s %v\n", failStyle.Render("✗"), err)
	}
	fmt.Fprintf(out, "%d ok, %d failed\n", len(docs), len(errs))
}

func runTeams(cmd *cobra.Command, args []string) error {
	reg, cfg, err := loadRegistries()
	if err != nil {
		return err
	}

	docs, err := goal.LoadDir(dirArg(args), reg, cfg)
	if err != nil {
		return err
	}

	type askView struct {
		Goal  string `json:"goal"`
		Ask   string `json:"ask"`
		Path  string `json:"path"`
		Notes string `json:"notes,omitempty"`
	}
	byTeam := make(map[string][]askView)
	for _, d := range docs {
		for i := range d.TeamAsks {
			ask := &d.TeamAsks[i]
			view := askView{
				Goal:  strings.Join(ask.GoalTitles, " / "),
				Ask:   ask.AskDescription,
				Path:  *ask.LinkPath,
				Notes: ask.Notes,
			}
			for _, name := range ask.TeamNames() {
				byTeam[name] = append(byTeam[name], view)
			}
		}
	}

	if jsonOut {
		outputJSON(cmd, byTeam)
		return nil
	}

	names := make([]string, 0, len(byTeam))
	for name := range byTeam {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No team asks found.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintf(out, "%s:\n", name)
		for _, ask := range byTeam[name] {
			fmt.Fprintf(out, "  • [%s] %s (%s)\n", ask.Goal, ask.Ask, ask.Path)
			if ask.Notes != "" {
				fmt.Fprintf(out, "      %s\n", ask.Notes)
			}
		}
	}
	return nil
}

func runOwners(cmd *cobra.Command, args []string) error {
	reg, cfg, err := loadRegistries()
	if err != nil {
		return err
	}

	docs, err := goal.LoadDir(dirArg(args), reg, cfg)
	if err != nil {
		return err
	}

	ownerSet := make(map[string]struct{})
	for _, d := range docs {
		for _, owner := range d.TaskOwners {
			ownerSet[owner] = struct{}{}
		}
	}
	owners := make([]string, 0, len(ownerSet))
	for owner := range ownerSet {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	if jsonOut {
		outputJSON(cmd, owners)
		return nil
	}

	out := cmd.OutOrStdout()
	for _, owner := range owners {
		fmt.Fprintln(out, owner)
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	reg, cfg, err := loadRegistries()
	if err != nil {
		return err
	}

	docs, err := goal.LoadDir(dirArg(args), reg, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), goal.FormatGoalTable(docs))
	return nil
}

func runLinkIssue(cmd *cobra.Command, args []string) error {
	reg, cfg, err := loadRegistries()
	if err != nil {
		return err
	}

	path := args[0]
	id, err := goal.ParseIssueID(args[1])
	if err != nil {
		return err
	}

	doc, err := goal.Load(path, filepath.Base(path), reg, cfg)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("`%s` is not a goal document (no metadata table)", path)
	}

	if err := doc.LinkIssue(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Linked %s to %s\n", path, id.URL())
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	reg, cfg, err := loadRegistries()
	if err != nil {
		return err
	}
	dir := dirArg(args)

	check := func() {
		docs, errs := goal.LoadDirLenient(dir, reg, cfg)
		printCheckResults(cmd, docs, errs)
	}
	check()

	cleanup, err := tui.Watch(dir, check)
	if err != nil {
		return err
	}
	defer cleanup()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	reg, cfg, err := loadRegistries()
	if err != nil {
		return err
	}
	dir := dirArg(args)

	m := tui.NewModel(func() ([]*goal.Document, []error) {
		return goal.LoadDirLenient(dir, reg, cfg)
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(dir, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	return err
}

func outputJSON(cmd *cobra.Command, v any) {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Error("encoding JSON output", "error", err)
	}
}
