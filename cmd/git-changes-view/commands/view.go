// Package commands implements the CLI command surface for git-changes-view.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/DanEscher98/git-changes-view/internal/changes"
	"github.com/DanEscher98/git-changes-view/internal/config"
	"github.com/DanEscher98/git-changes-view/internal/gitio"
	"github.com/DanEscher98/git-changes-view/internal/render"
	"github.com/DanEscher98/git-changes-view/internal/tree"
)

const (
	flagSinceLast   = "since-last"
	flagUncommitted = "uncommitted"
	flagFlat        = "flat"
	flagJSON        = "json"
	flagSort        = "sort"
	flagNoColor     = "no-color"
	flagConfig      = "config"
	flagVerbose     = "verbose"
)

// noColorEnv disables ANSI coloring when set to any non-empty value.
const noColorEnv = "NO_COLOR"

// msgNoChanges is printed when the comparison yields no changed files.
const msgNoChanges = "No changes found."

// footerIndent prefixes the comparison descriptor lines.
const footerIndent = "    "

// uncommittedLabel is the head descriptor for working-tree comparisons.
const uncommittedLabel = "uncommitted"

var (
	// ErrModeConflict is returned when --since-last and --uncommitted are combined.
	ErrModeConflict = errors.New("--since-last and --uncommitted are mutually exclusive")
	// ErrInvalidSortKey indicates the --sort value is not name, changes, or path.
	ErrInvalidSortKey = errors.New("invalid sort key (want one of name, changes, path)")
)

var validSortKeys = []string{changes.SortName, changes.SortChanges, changes.SortPath}

// viewOptions holds the flag values for one invocation.
type viewOptions struct {
	sinceLast   bool
	uncommitted bool
	flat        bool
	asJSON      bool
	noColor     bool
	verbose     bool
	sortKey     string
	configPath  string
}

// NewViewCommand creates the root command, which renders the change view.
func NewViewCommand() *cobra.Command {
	return buildViewCommand(".")
}

// buildViewCommand constructs the command rooted at dir. Tests pass
// throwaway repository directories here.
func buildViewCommand(dir string) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "git-changes-view",
		Short: "Display changed files with line counts in tree view",
		Long: `git-changes-view displays the files changed relative to a reference point,
annotated with insertion/deletion counts and current line counts.

By default it compares the current branch against main since divergence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, dir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.sinceLast, flagSinceLast, false, "compare HEAD against the previous commit")
	cmd.Flags().BoolVar(&opts.uncommitted, flagUncommitted, false, "show uncommitted changes (staged + unstaged)")
	cmd.Flags().BoolVar(&opts.flat, flagFlat, false, "flat list instead of tree view")
	cmd.Flags().BoolVar(&opts.asJSON, flagJSON, false, "output as JSON")
	cmd.Flags().StringVar(&opts.sortKey, flagSort, "", "sort order: name (default), changes, or path")
	cmd.Flags().BoolVar(&opts.noColor, flagNoColor, false, "disable colored output")
	cmd.Flags().StringVar(&opts.configPath, flagConfig, "", "explicit config file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, flagVerbose, "v", false, "verbose output")

	return cmd
}

func runView(cmd *cobra.Command, dir string, opts *viewOptions) error {
	if opts.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if opts.sinceLast && opts.uncommitted {
		return ErrModeConflict
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	sortKey, flat, noColor, err := resolveSettings(cmd, opts, cfg)
	if err != nil {
		return err
	}

	mode := gitio.ModeDefault

	switch {
	case opts.sinceLast:
		mode = gitio.ModeSinceLast
	case opts.uncommitted:
		mode = gitio.ModeUncommitted
	}

	repo, err := gitio.Discover(dir)
	if err != nil {
		return err
	}

	commitsErr := repo.EnsureCommits()
	if commitsErr != nil {
		return commitsErr
	}

	records, err := repo.Changes(mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(records) == 0 {
		fmt.Fprintln(out, msgNoChanges)

		return nil
	}

	changes.SortBy(records, sortKey)

	if opts.asJSON {
		doc, jsonErr := render.JSON(records, mode, repo.BaseRef(mode))
		if jsonErr != nil {
			return jsonErr
		}

		fmt.Fprintln(out, doc)

		return nil
	}

	useColor := !noColor && os.Getenv(noColorEnv) == ""

	var lines []string
	if flat {
		lines = render.Flat(records, useColor)
	} else {
		lines = render.Tree(tree.Build(records), useColor)
	}

	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	printFooter(out, records)

	comparison, infoErr := repo.ComparisonInfo(mode)
	if infoErr == nil {
		printComparison(out, comparison)
	}

	return nil
}

// resolveSettings merges flags over config-file defaults. A flag set on the
// command line always wins; otherwise the config value applies.
func resolveSettings(cmd *cobra.Command, opts *viewOptions, cfg *config.Config) (string, bool, bool, error) {
	sortKey := cfg.Sort
	if cmd.Flags().Changed(flagSort) {
		sortKey = opts.sortKey
	}

	if !slices.Contains(validSortKeys, sortKey) {
		return "", false, false, fmt.Errorf("%w: %q", ErrInvalidSortKey, sortKey)
	}

	flat := cfg.Flat
	if cmd.Flags().Changed(flagFlat) {
		flat = opts.flat
	}

	noColor := cfg.NoColor
	if cmd.Flags().Changed(flagNoColor) {
		noColor = opts.noColor
	}

	return sortKey, flat, noColor, nil
}

func printFooter(out io.Writer, records []changes.Record) {
	summary := changes.Summarize(records)

	sign := ""
	if summary.Net >= 0 {
		sign = "+"
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total: +%d -%d (net: %s%d)\n", summary.TotalInsertions, summary.TotalDeletions, sign, summary.Net)
	fmt.Fprintf(out, "Files: %d\n", summary.FileCount)
}

func printComparison(out io.Writer, comparison *gitio.ComparisonInfo) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Compare:")

	if comparison.Base != nil {
		fmt.Fprintln(out, footerIndent+comparison.Base.Format())
	}

	if comparison.Head != nil {
		fmt.Fprintln(out, footerIndent+comparison.Head.Format())
	} else {
		fmt.Fprintln(out, footerIndent+uncommittedLabel)
	}
}

// FatalMessage maps an error from Execute to its user-facing message and
// optional remediation tip.
func FatalMessage(err error) (string, string) {
	switch {
	case errors.Is(err, gitio.ErrNotARepository):
		return "Error: Not a git repository",
			"Run this command from within a git repository."
	case errors.Is(err, gitio.ErrEmptyRepository):
		return "Error: Repository has no commits yet.", ""
	case errors.Is(err, gitio.ErrMergeBaseNotFound):
		return "Error: Could not find merge base with main branch.",
			"Tip: Make sure 'main' or 'master' branch exists, or use --uncommitted."
	case errors.Is(err, gitio.ErrInsufficientHistory):
		return "Error: Not enough commits for --since-last comparison.",
			"Tip: Repository needs at least 2 commits."
	default:
		return fmt.Sprintf("Error: %v", err), ""
	}
}
