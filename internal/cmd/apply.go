package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/fixer"
	"github.com/pthm/uxtone/internal/ui"
)

var (
	applyRules       []string
	applyAll         bool
	applyInteractive bool
	applyWrite       bool
	applyDryRun      bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [files...]",
	Short: "Convert UI text with the selected rules",
	Long: `Apply rewrite rules to UI text and print the converted items.

Rules are chosen by pattern with --rule, all applicable rules with
--all, or picked in a terminal UI with --interactive. Selected rules
run in rule table order, each one seeing the output of the previous.

With --write the converted text is committed back to the source
files; --dry-run shows what would be written instead. A file whose
content changed since it was read is left untouched.

Examples:
  uxtone apply --rule 진행하십시오 copy.txt
  uxtone apply --all --dry-run strings/ko.yaml
  uxtone apply --interactive --write docs/onboarding.md`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringSliceVarP(&applyRules, "rule", "r", nil, "Rule pattern to apply (repeatable)")
	applyCmd.Flags().BoolVar(&applyAll, "all", false, "Apply every applicable rule")
	applyCmd.Flags().BoolVarP(&applyInteractive, "interactive", "i", false, "Pick rules in an interactive terminal UI")
	applyCmd.Flags().BoolVarP(&applyWrite, "write", "w", false, "Write converted text back to the source files")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show the file changes without writing them")
	applyCmd.MarkFlagsMutuallyExclusive("rule", "all", "interactive")
	applyCmd.MarkFlagsOneRequired("rule", "all", "interactive")
	applyCmd.MarkFlagsMutuallyExclusive("write", "dry-run")
	RootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	u := GetUI()
	commit := applyWrite || applyDryRun

	progress := u.StartProgress()
	defer progress.Done(nil)

	progress.SetStage(ui.StageReadInput)
	docs, err := readDocuments(args, progress)
	if err != nil {
		return err
	}
	if fromStdin(docs) && (commit || applyInteractive) {
		return errors.New("--write, --dry-run and --interactive need files, not standard input")
	}

	items, sources, err := collectItems(docs)
	if err != nil {
		return err
	}

	selected, err := selectPatterns(cmd.Context(), u, progress, items)
	if err != nil {
		return err
	}

	progress.SetStage(ui.StageConvert)
	resp, err := eng.Apply(cmd.Context(), engine.ApplyRequest{Items: items, SelectedPatterns: selected})
	if err != nil {
		return err
	}
	progress.Done(nil)

	if commit {
		return commitChanges(u, sources, resp, applyDryRun)
	}
	return newReporter(u).ReportApply(resp)
}

// selectPatterns resolves the rule selection flags. --all and --interactive
// need an analysis first to know which rules apply.
func selectPatterns(ctx context.Context, u *ui.UI, progress *ui.ProgressController, items []engine.Item) ([]string, error) {
	if !applyAll && !applyInteractive {
		return applyRules, nil
	}

	progress.SetStage(ui.StageAnalyze)
	analysis, err := eng.Analyze(ctx, engine.AnalyzeRequest{Items: items})
	if err != nil {
		return nil, err
	}
	progress.Done(nil)

	if applyAll {
		return analysis.Profile.Patterns(), nil
	}
	return u.SelectRules(analysis.Profile.ApplicableRules)
}

// planEdits pairs converted items with their source items by ID
func planEdits(sources map[string]itemSource, resp *engine.ApplyResponse) ([]fixer.Edit, error) {
	edits := make([]fixer.Edit, 0, len(resp.ConvertedItems))
	for _, converted := range resp.ConvertedItems {
		src, ok := sources[converted.ID]
		if !ok {
			return nil, fmt.Errorf("converted item %q has no source", converted.ID)
		}
		edits = append(edits, fixer.Edit{
			File:      src.doc.Path,
			Format:    src.doc.Format,
			Item:      src.item,
			Converted: converted.ConvertedText,
		})
	}
	return edits, nil
}

// commitChanges hands the converted items to the fixer
func commitChanges(u *ui.UI, sources map[string]itemSource, resp *engine.ApplyResponse, dryRun bool) error {
	edits, err := planEdits(sources, resp)
	if err != nil {
		return err
	}

	if len(edits) == 0 {
		u.Success("Nothing to change")
		return nil
	}

	f := fixer.New(fixer.Options{DryRun: dryRun, Logger: logger}, u)
	if dryRun {
		result := f.Commit(edits)
		for _, failure := range result.Failures {
			u.Warn("%s", failure.Error())
		}
		fmt.Fprintf(u.ErrWriter, "%d items would be updated\n", result.Planned)
		return nil
	}

	spinner := u.StartSimpleSpinner(u.ErrWriter, fmt.Sprintf("Writing %d items...", len(edits)))
	result := f.Commit(edits)
	spinner.Stop()

	for _, failure := range result.Failures {
		u.Warn("%s", failure.Error())
	}
	if result.Committed > 0 {
		u.Success("Committed %d of %d changed items", result.Committed, len(edits))
	}
	if err := result.Err(); err != nil {
		return fmt.Errorf("%d files could not be updated: %w", len(result.Failures), err)
	}
	return nil
}
