package profile

import (
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/pthm/uxtone/internal/analyzer"
	"github.com/pthm/uxtone/internal/rules"
)

// Tone is the overall register assigned to a batch of texts
type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneFormal   Tone = "formal"
	ToneFriendly Tone = "friendly"
)

// Recommendations
const (
	RecommendUXFriendly = "UX-friendly"
	RecommendKeep       = "keep current tone"
)

// Formality thresholds for the current tone
const (
	FormalThreshold   = 70
	FriendlyThreshold = 30
)

// SuggestionConfidence is the fixed confidence of every suggestion. It is
// unrelated to Profile.Confidence.
const SuggestionConfidence = 85

// emotionFormal is never produced by the analyzer, so the branch that checks
// for it does not fire.
const emotionFormal analyzer.EmotionalTone = "formal"

// ApplicableRule is a rule that matched at least one text
type ApplicableRule struct {
	Rule    rules.Rule `json:"rule"`
	Matches []string   `json:"matches"`
	Preview string     `json:"preview"`
}

// Profile summarizes the tone of a batch and the rules that apply to it
type Profile struct {
	CurrentTone     Tone                   `json:"currentTone"`
	RecommendedTone string                 `json:"recommendedTone"`
	Confidence      int                    `json:"confidence"`
	ApplicableRules []ApplicableRule       `json:"applicableRules"`
	Analysis        *analyzer.TextAnalysis `json:"analysis"`
}

// Patterns returns the patterns of the applicable rules in table order
func (p *Profile) Patterns() []string {
	return lo.Map(p.ApplicableRules, func(ar ApplicableRule, _ int) string {
		return ar.Rule.Pattern
	})
}

// Builder builds profiles from a rule table and an analyzer
type Builder struct {
	table    *rules.Table
	analyzer *analyzer.Analyzer
}

// NewBuilder creates a builder. Nil arguments select the built-in table and
// lexicon.
func NewBuilder(table *rules.Table, a *analyzer.Analyzer) *Builder {
	if table == nil {
		table = rules.Default()
	}
	if a == nil {
		a = analyzer.New(nil)
	}
	return &Builder{table: table, analyzer: a}
}

// Build analyzes texts as one combined text and collects the rules that
// match any of them.
//
// Matches are gathered per text, never across the boundary between two
// texts, and deduplicated keeping first occurrence. The preview applies the
// single rule to the combined text.
func (b *Builder) Build(texts []string) *Profile {
	combined := strings.Join(texts, " ")
	analysis := b.analyzer.AnalyzeText(combined)

	applicable := make([]ApplicableRule, 0)
	for _, rule := range b.table.Rules() {
		var matches []string
		for _, text := range texts {
			matches = append(matches, rule.Matches(text)...)
		}
		if len(matches) == 0 {
			continue
		}
		applicable = append(applicable, ApplicableRule{
			Rule:    rule,
			Matches: lo.Uniq(matches),
			Preview: rule.Apply(combined),
		})
	}

	current, recommended := classify(analysis)

	return &Profile{
		CurrentTone:     current,
		RecommendedTone: recommended,
		Confidence:      confidence(len(applicable), analysis.FormalityScore),
		ApplicableRules: applicable,
		Analysis:        analysis,
	}
}

func classify(analysis *analyzer.TextAnalysis) (Tone, string) {
	current := ToneNeutral
	recommended := RecommendUXFriendly

	switch {
	case analysis.FormalityScore > FormalThreshold:
		current = ToneFormal
	case analysis.FormalityScore < FriendlyThreshold:
		current = ToneFriendly
	}

	switch analysis.EmotionalTone {
	case emotionFormal:
		current = ToneFormal
		recommended = RecommendUXFriendly
	case analyzer.ToneFriendly:
		current = ToneFriendly
		recommended = RecommendKeep
	}

	return current, recommended
}

func confidence(applicable, formality int) int {
	return int(math.Round(math.Min(100, float64(applicable)*20+float64(formality)*0.3)))
}
