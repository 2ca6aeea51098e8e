package rules

import (
	"regexp"
)

// Category groups rules by the kind of register change they make
type Category string

const (
	FormalToFriendly Category = "formal_to_friendly"
	CommandToAction  Category = "command_to_action"
	PoliteToCasual   Category = "polite_to_casual"
	EndingTone       Category = "ending_tone"
	CommandToPolite  Category = "command_to_polite"
)

// Categories lists every category in declaration order
var Categories = []Category{
	FormalToFriendly,
	CommandToAction,
	PoliteToCasual,
	EndingTone,
	CommandToPolite,
}

// IsValid reports whether c is one of the declared categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Rule is a single pattern -> replacement rewrite.
//
// Pattern is a raw regular expression fragment. It is never escaped, so a
// pattern containing metacharacters is interpreted as a regexp. Replacement
// is always inserted literally.
type Rule struct {
	Pattern     string   `yaml:"pattern" json:"pattern"`
	Replacement string   `yaml:"replacement" json:"replacement"`
	Category    Category `yaml:"category" json:"category"`
	Description string   `yaml:"description" json:"description"`

	compiled *regexp.Regexp
}

// NewRule builds and compiles a rule
func NewRule(pattern, replacement string, category Category, description string) (Rule, error) {
	r := Rule{
		Pattern:     pattern,
		Replacement: replacement,
		Category:    category,
		Description: description,
	}
	if err := r.compile(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

// MustRule is like NewRule but panics on a malformed rule
func MustRule(pattern, replacement string, category Category, description string) Rule {
	r, err := NewRule(pattern, replacement, category, description)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rule) compile() error {
	if r.Pattern == "" {
		return malformed(r.Pattern, "empty pattern")
	}
	if !r.Category.IsValid() {
		return malformed(r.Pattern, "unknown category %q", r.Category)
	}
	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return malformed(r.Pattern, "%v", err)
	}
	r.compiled = re
	return nil
}

// regexp returns the compiled pattern. Rules declared as struct literals
// are compiled on first use and panic if the pattern is malformed.
func (r Rule) regexp() *regexp.Regexp {
	if r.compiled != nil {
		return r.compiled
	}
	return regexp.MustCompile(r.Pattern)
}

// Matches returns every non-overlapping match of the pattern in text
func (r Rule) Matches(text string) []string {
	return r.regexp().FindAllString(text, -1)
}

// Count returns the number of non-overlapping matches in text
func (r Rule) Count(text string) int {
	return len(r.regexp().FindAllStringIndex(text, -1))
}

// Apply replaces every match of the pattern in text with the replacement
func (r Rule) Apply(text string) string {
	return r.regexp().ReplaceAllLiteralString(text, r.Replacement)
}

// String renders the rule as "pattern → replacement"
func (r Rule) String() string {
	return r.Pattern + " → " + r.Replacement
}
