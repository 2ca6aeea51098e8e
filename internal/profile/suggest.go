package profile

import "github.com/pthm/uxtone/internal/rules"

// Source is one input text with its identifier
type Source struct {
	ID   string
	Text string
}

// Suggestion proposes rewriting one item with one rule
type Suggestion struct {
	ItemID     string     `json:"itemId"`
	Original   string     `json:"original"`
	Converted  string     `json:"converted"`
	Rule       rules.Rule `json:"rule"`
	Confidence int        `json:"confidence"`
}

// Suggest applies each applicable rule on its own to each item's original
// text and emits a suggestion whenever the text changes. Suggestions are
// ordered by item, then by rule.
func Suggest(p *Profile, items []Source) []Suggestion {
	suggestions := make([]Suggestion, 0)
	for _, item := range items {
		for _, ar := range p.ApplicableRules {
			converted := ar.Rule.Apply(item.Text)
			if converted == item.Text {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				ItemID:     item.ID,
				Original:   item.Text,
				Converted:  converted,
				Rule:       ar.Rule,
				Confidence: SuggestionConfidence,
			})
		}
	}
	return suggestions
}
