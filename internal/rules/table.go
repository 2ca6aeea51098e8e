package rules

import (
	"github.com/samber/lo"
)

// Table is an ordered, read-only set of rules. Order only makes iteration
// deterministic; rules are independent substring rewrites.
type Table struct {
	name  string
	rules []Rule
	index map[string]int
}

// NewTable compiles rules into a table. Duplicate patterns are rejected.
func NewTable(name string, rules []Rule) (*Table, error) {
	t := &Table{
		name:  name,
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}

	for _, rule := range rules {
		if err := rule.compile(); err != nil {
			return nil, err
		}
		if _, dup := t.index[rule.Pattern]; dup {
			return nil, malformed(rule.Pattern, "duplicate pattern")
		}
		t.index[rule.Pattern] = len(t.rules)
		t.rules = append(t.rules, rule)
	}

	return t, nil
}

// Name returns the name of the rule document the table was loaded from
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of rules
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of all rules in table order
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Get returns the rule with the given pattern
func (t *Table) Get(pattern string) (Rule, bool) {
	i, ok := t.index[pattern]
	if !ok {
		return Rule{}, false
	}
	return t.rules[i], true
}

// Select returns the rules whose pattern is in patterns, in table order.
// Patterns that match no rule are ignored.
func (t *Table) Select(patterns []string) []Rule {
	selected := lo.Keyify(patterns)
	return lo.Filter(t.rules, func(r Rule, _ int) bool {
		_, ok := selected[r.Pattern]
		return ok
	})
}

// ByCategory returns the rules in category c, in table order
func (t *Table) ByCategory(c Category) []Rule {
	return lo.Filter(t.rules, func(r Rule, _ int) bool {
		return r.Category == c
	})
}

// Patterns returns every pattern in table order
func (t *Table) Patterns() []string {
	return lo.Map(t.rules, func(r Rule, _ int) string {
		return r.Pattern
	})
}
