// Package main provides the gotraps CLI entry point.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gotraps/cmd/gotraps/ui"
	"gotraps/internal/config"
	"gotraps/internal/logging"
	"gotraps/internal/render"
	"gotraps/internal/traps"
	"gotraps/internal/verify"
)

var (
	// Global flags
	verbose bool
	cfgPath string
	noColor bool
	wrap    int

	// doc flags
	docOut string
	docTOC bool

	// Resolved per invocation in PersistentPreRunE
	cfg    config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gotraps",
	Short: "A runnable catalog of Go semantics worth tripping over once",
	Long: `gotraps is a curated catalog of Go semantic traps: slice aliasing,
typed nils in interfaces, defer timing, closed-channel reads, RWMutex
write preference, and friends.

Every entry pairs explanatory prose with a standalone program and the exact
output that program prints. The verify command re-runs the whole catalog
against those claims, so the document can never drift from reality.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if noColor {
			cfg.Theme = "none"
		}
		if wrap > 0 {
			cfg.Wrap = wrap
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive browser.
		return runBrowse(cmd, args)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every section and entry in the catalog",
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render one entry to the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var runEntryCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Execute an entry's program and print its output",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntry,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Re-run the whole catalog against its documented outputs",
	Long: `Runs every runnable entry and compares what it prints with what its
document claims. Crashing demonstrations are skipped with a reason. Exits
nonzero when any entry has drifted.`,
	RunE: runVerify,
}

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Emit the full markdown document",
	RunE:  runDoc,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	RunE:  runBrowse,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain output, no styling")
	rootCmd.PersistentFlags().IntVar(&wrap, "wrap", 0, "word-wrap column for rendered output")

	docCmd.Flags().StringVarP(&docOut, "out", "o", "", "write the document to a file instead of stdout")
	docCmd.Flags().BoolVar(&docTOC, "toc", true, "include the table of contents")

	rootCmd.AddCommand(listCmd, showCmd, runEntryCmd, verifyCmd, docCmd, browseCmd)
}

func renderOptions() render.Options {
	opts := render.DefaultOptions(traps.Title)
	opts.TOC = docTOC
	opts.PlayBase = cfg.Playground
	return opts
}

func runList(cmd *cobra.Command, args []string) error {
	styles := ui.DefaultStyles()
	out := cmd.OutOrStdout()

	for _, s := range traps.Catalog().Sections() {
		fmt.Fprintln(out, styles.Section.Render(s.Title))
		for _, e := range s.Entries {
			marker := ""
			if e.Crashes {
				marker = "  " + styles.Crash.Render("(crashes)")
			}
			fmt.Fprintf(out, "  %s  %s%s\n",
				styles.EntryID.Render(fmt.Sprintf("%-28s", e.ID)),
				styles.Entry.Render(e.Title), marker)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	e, ok := traps.Catalog().Lookup(args[0])
	if !ok {
		return fmt.Errorf("no entry %q; try: gotraps list", args[0])
	}

	md := render.EntryMarkdown(e, renderOptions())
	term, err := render.Terminal(cfg.Theme, cfg.Wrap)
	if err != nil {
		return err
	}
	if term == nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	styled, err := term.Render(md)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), styled)
	return nil
}

func runEntry(cmd *cobra.Command, args []string) error {
	e, ok := traps.Catalog().Lookup(args[0])
	if !ok {
		return fmt.Errorf("no entry %q; try: gotraps list", args[0])
	}
	if !e.Runnable() {
		return fmt.Errorf("%s terminates the process and is documented only; see: gotraps show %s", e.ID, e.ID)
	}

	logger.Debug("running entry", zap.String("id", e.ID))
	e.Run(cmd.OutOrStdout())
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	reg := traps.Catalog()
	logger.Debug("verifying catalog", zap.Int("entries", reg.Len()))

	report := verify.Catalog(cmd.Context(), reg, runtime.GOMAXPROCS(0))
	fmt.Fprint(cmd.OutOrStdout(), report.String())

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d entries no longer print what they claim", len(failed), reg.Len())
	}
	return nil
}

func runDoc(cmd *cobra.Command, args []string) error {
	md := render.Document(traps.Catalog(), renderOptions())

	out := docOut
	if out == "" {
		out = cfg.DocPath
	}
	if out == "" {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
		return fmt.Errorf("doc write failed: %w", err)
	}
	logger.Info("document written", zap.String("path", out), zap.Int("bytes", len(md)))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
