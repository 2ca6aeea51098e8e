package reporter

import (
	"encoding/json"
	"io"

	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/profile"
	"github.com/pthm/uxtone/internal/rules"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONAnalysis represents the JSON output of an analysis
type JSONAnalysis struct {
	Profile     *profile.Profile     `json:"profile"`
	Suggestions []profile.Suggestion `json:"suggestions"`
	ItemCount   int                  `json:"itemCount"`
	Summary     Summary              `json:"summary"`
}

// JSONRules represents the JSON output of a rule listing
type JSONRules struct {
	Rules []rules.Rule `json:"rules"`
	Count int          `json:"count"`
}

// ReportAnalysis outputs an analysis as JSON
func (r *JSONReporter) ReportAnalysis(resp *engine.AnalyzeResponse) error {
	return r.encode(JSONAnalysis{
		Profile:     resp.Profile,
		Suggestions: resp.Suggestions,
		ItemCount:   resp.ItemCount,
		Summary:     ComputeSummary(resp),
	})
}

// ReportApply outputs an apply response as JSON
func (r *JSONReporter) ReportApply(resp *engine.ApplyResponse) error {
	return r.encode(resp)
}

// ReportRules outputs rules as JSON
func (r *JSONReporter) ReportRules(ruleSet []rules.Rule) error {
	if ruleSet == nil {
		ruleSet = []rules.Rule{}
	}
	return r.encode(JSONRules{Rules: ruleSet, Count: len(ruleSet)})
}

// ReportBatch outputs a batch report as JSON
func (r *JSONReporter) ReportBatch(report *BatchReport) error {
	return r.encode(report)
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}
