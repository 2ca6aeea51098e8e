package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pthm/uxtone/internal/config"
	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/lexicon"
	"github.com/pthm/uxtone/internal/logs"
	"github.com/pthm/uxtone/internal/reporter"
	"github.com/pthm/uxtone/internal/rules"
	"github.com/pthm/uxtone/internal/ui"
)

var (
	// Global flags
	verbose     bool
	format      string
	rulesFile   string
	lexiconName string
	configFile  string
	logLevel    string
)

// Shared state built once per invocation by setup
var (
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	eng      *engine.Engine
	globalUI *ui.UI
)

var RootCmd = &cobra.Command{
	Use:   "uxtone",
	Short: "Rewrite Korean UI copy in a friendlier tone",
	Long: `uxtone analyzes Korean UI text and suggests rewrites from stiff,
formal phrasing to a friendlier UX tone.

It scores sentence type, emotional tone, formality and readability,
lists the rewrite rules that apply, and converts text with the rules
you choose. Text can come from plain text, markdown, JSON or YAML
files, or from standard input.`,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	SilenceUsage:       true,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (debug logging)")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "Load the rule table from a YAML file")
	RootCmd.PersistentFlags().StringVar(&lexiconName, "lexicon", "", "Built-in lexicon name or path to a lexicon file")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/uxtone/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// setup resolves configuration and builds the logger, UI and engine.
// Flags take precedence over the environment, which takes precedence over
// the config file.
func setup(cmd *cobra.Command, args []string) (err error) {
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("rules") {
		cfg.Rules = rulesFile
	}
	if flags.Changed("lexicon") {
		cfg.Lexicon = lexiconName
	}
	switch {
	case flags.Changed("log-level"):
		cfg.LogLevel = logLevel
	case verbose:
		cfg.LogLevel = "debug"
	}

	if cfg.Format != ui.FormatTerminal && cfg.Format != ui.FormatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", cfg.Format, ui.FormatTerminal, ui.FormatJSON)
	}

	logger, closeLog, err = logs.New(logs.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	// teardown does not run when setup fails
	defer func() {
		if err != nil {
			_ = closeLog()
			closeLog = nil
		}
	}()

	table := rules.Default()
	if cfg.Rules != "" {
		table, err = rules.LoadFromFile(cfg.Rules)
		if err != nil {
			return fmt.Errorf("failed to load rules: %w", err)
		}
	}

	lex, err := lexicon.Resolve(cfg.Lexicon)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	logger.Debug("configured",
		"rules", table.Name(),
		"rule_count", table.Len(),
		"lexicon", lex.Name,
		"format", cfg.Format,
	)

	eng = engine.New(engine.Options{Rules: table, Lexicon: lex, Logger: logger})
	globalUI = ui.New(os.Stdout, os.Stderr, cfg.Format)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if closeLog != nil {
		return closeLog()
	}
	return nil
}

// GetUI returns the UI configured for this invocation
func GetUI() *ui.UI {
	return globalUI
}

// newReporter picks the reporter for the configured format
func newReporter(u *ui.UI) reporter.Reporter {
	if u.IsJSON() {
		return reporter.NewJSONReporter(u.Writer)
	}
	return reporter.NewTerminalReporter(u.Writer, u)
}
