package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pthm/uxtone/internal/analyzer"
	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/profile"
	"github.com/pthm/uxtone/internal/rules"
	"github.com/pthm/uxtone/internal/ui"
)

const separator = "─────────────────────────────────────"

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w  io.Writer
	ui *ui.UI
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, u *ui.UI) *TerminalReporter {
	return &TerminalReporter{w: w, ui: u}
}

// ReportAnalysis outputs the profile followed by suggestions grouped by item
func (r *TerminalReporter) ReportAnalysis(resp *engine.AnalyzeResponse) error {
	s := r.ui.Styles
	p := resp.Profile

	r.printProfile(p)

	if len(p.ApplicableRules) == 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Success.Render(fmt.Sprintf("%s No applicable rules", s.IconSuccess)))
		return nil
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("Applicable rules"))
	for _, ar := range p.ApplicableRules {
		fmt.Fprintf(r.w, "  %s %s %s %s\n",
			s.Match.Render(ar.Rule.Pattern),
			s.IconArrow,
			ar.Rule.Replacement,
			s.Category.Render(fmt.Sprintf("[%s] %s", ar.Rule.Category, strings.Join(ar.Matches, ", "))),
		)
	}

	// Group suggestions by item, keeping input order
	var order []string
	byItem := make(map[string][]profile.Suggestion)
	for _, sg := range resp.Suggestions {
		if _, ok := byItem[sg.ItemID]; !ok {
			order = append(order, sg.ItemID)
		}
		byItem[sg.ItemID] = append(byItem[sg.ItemID], sg)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("Suggestions"))
	for _, id := range order {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Path.Render(id))
		for _, sg := range byItem[id] {
			r.printSuggestion(sg)
		}
	}

	r.printSummary(ComputeSummary(resp))
	return nil
}

func (r *TerminalReporter) printProfile(p *profile.Profile) {
	s := r.ui.Styles
	a := p.Analysis

	fmt.Fprintln(r.w, s.Header.Render("Tone profile"))
	fmt.Fprintf(r.w, "  Current tone:     %s\n", p.CurrentTone)
	fmt.Fprintf(r.w, "  Recommended:      %s\n", p.RecommendedTone)
	fmt.Fprintf(r.w, "  Confidence:       %d\n", p.Confidence)
	if a == nil {
		return
	}
	fmt.Fprintf(r.w, "  Sentence type:    %s\n", a.SentenceType)
	fmt.Fprintf(r.w, "  Emotional tone:   %s\n", a.EmotionalTone)
	fmt.Fprintf(r.w, "  Formality:        %d\n", a.FormalityScore)
	fmt.Fprintf(r.w, "  Readability:      %d\n", a.ReadabilityScore)
	if len(a.TopKeywords) > 0 {
		fmt.Fprintf(r.w, "  Top keywords:     %s\n", strings.Join(a.TopKeywords, ", "))
	}
	if len(a.EndingPatterns) > 0 {
		fmt.Fprintf(r.w, "  Endings:          %s\n", formatCounts(a.EndingPatterns))
	}
}

func (r *TerminalReporter) printSuggestion(sg profile.Suggestion) {
	s := r.ui.Styles
	fmt.Fprintf(r.w, "  %s %s %s\n",
		s.Suggestion.Render(s.IconSuggestion),
		sg.Rule.Description,
		s.Rule.Render(fmt.Sprintf("[%s]", sg.Rule.Pattern)),
	)
	fmt.Fprintf(r.w, "    %s\n", s.Removed.Render(sg.Original))
	fmt.Fprintf(r.w, "    %s\n", s.Added.Render(sg.Converted))
}

func (r *TerminalReporter) printSummary(summary Summary) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.ui.Styles.Separator.Render(separator))
	fmt.Fprintf(r.w, "%d suggestions from %d rules for %d of %d items\n",
		summary.Suggestions, summary.ApplicableRules, summary.ItemsAffected, summary.Items)
}

// ReportApply outputs each converted item with its changes
func (r *TerminalReporter) ReportApply(resp *engine.ApplyResponse) error {
	s := r.ui.Styles

	if resp.NoApplicableRules {
		fmt.Fprintln(r.w, s.Warning.Render(fmt.Sprintf("%s No applicable rules selected", s.IconWarning)))
		return nil
	}

	for _, item := range resp.ConvertedItems {
		fmt.Fprintln(r.w, s.Path.Render(item.ID))
		fmt.Fprintf(r.w, "  %s\n", s.Removed.Render(item.Original))
		fmt.Fprintf(r.w, "  %s\n", s.Added.Render(item.ConvertedText))
		for _, c := range item.Changes {
			fmt.Fprintf(r.w, "    %s\n", s.Rule.Render(fmt.Sprintf("%s x%d", c.Rule, c.Count)))
		}
	}

	fmt.Fprintln(r.w, s.Separator.Render(separator))
	fmt.Fprintf(r.w, "Converted %d of %d items\n", resp.ConvertedCount, resp.ItemCount)
	if p := resp.UpdatedProfile; p != nil {
		fmt.Fprintf(r.w, "Updated tone: %s (formality %d, %d rules still apply)\n",
			p.CurrentTone, p.Analysis.FormalityScore, len(p.ApplicableRules))
	}
	return nil
}

// ReportRules outputs rules grouped by category in table order
func (r *TerminalReporter) ReportRules(ruleSet []rules.Rule) error {
	s := r.ui.Styles

	var order []rules.Category
	byCategory := make(map[rules.Category][]rules.Rule)
	for _, rule := range ruleSet {
		if _, ok := byCategory[rule.Category]; !ok {
			order = append(order, rule.Category)
		}
		byCategory[rule.Category] = append(byCategory[rule.Category], rule)
	}

	for i, category := range order {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintln(r.w, s.Header.Render(category.String()))
		for _, rule := range byCategory[category] {
			fmt.Fprintf(r.w, "  %s %s %s  %s\n",
				s.Match.Render(rule.Pattern),
				s.IconArrow,
				rule.Replacement,
				s.Subheader.Render(rule.Description),
			)
		}
	}

	fmt.Fprintln(r.w, s.Separator.Render(separator))
	fmt.Fprintf(r.w, "%d rules\n", len(ruleSet))
	return nil
}

// ReportBatch outputs per-file counts, metrics and the combined profile
func (r *TerminalReporter) ReportBatch(report *BatchReport) error {
	s := r.ui.Styles

	fmt.Fprintln(r.w, s.Header.Render("UX Tone Report"))
	fmt.Fprintln(r.w, s.Separator.Render(separator))
	fmt.Fprintln(r.w)

	fmt.Fprintln(r.w, s.Header.Render("Files"))
	for _, f := range report.Files {
		fmt.Fprintf(r.w, "  %s %s\n", f.Path,
			s.Subheader.Render(fmt.Sprintf("(%s, %d items, formality %d)", f.Format, f.Items, f.Formality)))
	}
	fmt.Fprintln(r.w)

	printMetrics(r.w, s, report.Metrics)
	fmt.Fprintln(r.w)

	if report.Profile != nil {
		r.printProfile(report.Profile)
	}
	return nil
}

func printMetrics(w io.Writer, s *ui.Styles, m *analyzer.Metrics) {
	fmt.Fprintln(w, s.Header.Render("Metrics"))
	fmt.Fprintf(w, "  Total items:        %d\n", m.TotalItems)
	fmt.Fprintf(w, "  Total characters:   %d\n", m.TotalChars)
	fmt.Fprintf(w, "  Total words:        %d\n", m.TotalWords)
	fmt.Fprintf(w, "  Total sentences:    %d\n", m.TotalSentences)
	fmt.Fprintf(w, "  Longest item:       %d\n", m.LongestItem)
	fmt.Fprintf(w, "  Items with matches: %d\n", m.ItemsWithMatches)
	fmt.Fprintf(w, "  Rule matches:       %d\n", m.RuleMatches)

	if len(m.MatchesByCat) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Header.Render("Matches by category"))
		cats := make([]string, 0, len(m.MatchesByCat))
		for c := range m.MatchesByCat {
			cats = append(cats, c.String())
		}
		sort.Strings(cats)
		for _, c := range cats {
			fmt.Fprintf(w, "  %s: %d\n", c, m.MatchesByCat[rules.Category(c)])
		}
	}
}

// formatCounts renders counts as "key×n" sorted by key
func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s×%d", k, counts[k])
	}
	return strings.Join(parts, ", ")
}
