package rules

// Change records what a single rule did during Trace
type Change struct {
	Rule   Rule   `json:"rule"`
	Before string `json:"before"`
	After  string `json:"after"`
	Count  int    `json:"count"`
}

// Apply runs rules over text in the given order. Each rule sees the output
// of the previous one, so a rule can create or destroy matches for a later
// rule and the result depends on order. Apply(text, nil) returns text.
func Apply(text string, rules []Rule) string {
	for _, rule := range rules {
		text = rule.Apply(text)
	}
	return text
}

// Trace is Apply that also reports one Change per rule that altered the
// text. Rules that matched nothing are omitted.
func Trace(text string, rules []Rule) (string, []Change) {
	var changes []Change
	for _, rule := range rules {
		n := rule.Count(text)
		if n == 0 {
			continue
		}
		after := rule.Apply(text)
		if after != text {
			changes = append(changes, Change{
				Rule:   rule,
				Before: text,
				After:  after,
				Count:  n,
			})
		}
		text = after
	}
	return text, changes
}
