package cmd

import (
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/pthm/uxtone/internal/analyzer"
	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/parser"
	"github.com/pthm/uxtone/internal/reporter"
	"github.com/pthm/uxtone/internal/ui"
)

var reportCmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Generate a batch report of UI text metrics",
	Long: `Generate a report across a set of UI text files.

This includes:
  - Items and formality per file
  - Character, word and sentence counts
  - Rule matches by category
  - The combined tone profile

Examples:
  uxtone report strings/
  uxtone report --format json copy/*.md > report.json`,
	RunE: runReport,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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
	if len(items) == 0 {
		return engine.ErrEmptyInput
	}

	progress.SetStage(ui.StageAnalyze)
	resp, err := eng.Analyze(cmd.Context(), engine.AnalyzeRequest{Items: items})
	if err != nil {
		return err
	}

	report := &reporter.BatchReport{
		Metrics: analyzer.ComputeMetrics(lo.FlatMap(docs, func(d *parser.Document, _ int) []string { return d.Texts() }), eng.Rules().Rules()),
		Profile: resp.Profile,
	}
	for _, doc := range docs {
		report.Files = append(report.Files, reporter.FileReport{
			Path:      doc.Path,
			Format:    doc.Format.String(),
			Items:     len(doc.Items),
			Formality: eng.Analyzer().FormalityScore(strings.Join(doc.Texts(), " ")),
		})
	}

	progress.Done(nil)

	return newReporter(u).ReportBatch(report)
}
