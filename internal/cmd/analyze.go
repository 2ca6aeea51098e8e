package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze the tone of UI text and suggest rewrites",
	Long: `Analyze UI text and print its tone profile together with a
suggestion for every item that an applicable rule would change.

Files may be plain text (one item per line), markdown (one item per
heading or paragraph), or JSON/YAML lists of {id, text} objects.
Directories are searched for such files. Without arguments the text
is read from standard input.

Examples:
  uxtone analyze strings/ko.yaml
  uxtone analyze docs/
  echo "회원가입을 진행하십시오" | uxtone analyze
  uxtone analyze --format json copy.md > profile.json`,
	RunE: runAnalyze,
}

func init() {
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	u := GetUI()

	progress := u.StartProgress()
	defer progress.Done(nil)

	progress.SetStage(ui.StageReadInput)
	docs, err := readDocuments(args, progress)
	if err != nil {
		return err
	}

	items, _, err := collectItems(docs)
	if err != nil {
		return err
	}

	progress.SetStage(ui.StageAnalyze)
	resp, err := eng.Analyze(cmd.Context(), engine.AnalyzeRequest{Items: items})
	if err != nil {
		return err
	}

	// Stop progress before reporting
	progress.Done(nil)

	return newReporter(u).ReportAnalysis(resp)
}
