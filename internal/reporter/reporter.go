package reporter

import (
	"github.com/pthm/uxtone/internal/analyzer"
	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/profile"
	"github.com/pthm/uxtone/internal/rules"
)

// Reporter defines the interface for outputting results
type Reporter interface {
	// ReportAnalysis outputs a tone profile and its suggestions
	ReportAnalysis(resp *engine.AnalyzeResponse) error
	// ReportApply outputs converted items
	ReportApply(resp *engine.ApplyResponse) error
	// ReportRules outputs a rule listing
	ReportRules(ruleSet []rules.Rule) error
	// ReportBatch outputs batch metrics
	ReportBatch(report *BatchReport) error
}

// BatchReport is the input of the report command
type BatchReport struct {
	Files   []FileReport      `json:"files"`
	Metrics *analyzer.Metrics `json:"metrics"`
	Profile *profile.Profile  `json:"profile"`
}

// FileReport summarizes one input file
type FileReport struct {
	Path      string `json:"path"`
	Format    string `json:"format"`
	Items     int    `json:"items"`
	Formality int    `json:"formalityScore"`
}

// Summary holds summary statistics for an analysis
type Summary struct {
	Items           int            `json:"items"`
	ApplicableRules int            `json:"applicableRules"`
	Suggestions     int            `json:"suggestions"`
	ItemsAffected   int            `json:"itemsAffected"`
	ByCategory      map[string]int `json:"byCategory"`
}

// ComputeSummary computes summary statistics from an analysis
func ComputeSummary(resp *engine.AnalyzeResponse) Summary {
	s := Summary{
		Items:       resp.ItemCount,
		Suggestions: len(resp.Suggestions),
		ByCategory:  make(map[string]int),
	}

	if resp.Profile != nil {
		s.ApplicableRules = len(resp.Profile.ApplicableRules)
		for _, ar := range resp.Profile.ApplicableRules {
			s.ByCategory[ar.Rule.Category.String()]++
		}
	}

	items := make(map[string]bool)
	for _, sg := range resp.Suggestions {
		items[sg.ItemID] = true
	}
	s.ItemsAffected = len(items)

	return s
}
