package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	table := Default()

	if table.Len() != 26 {
		t.Fatalf("Len() = %d, want 26", table.Len())
	}

	// Spot-check order at the boundaries of each group
	wantOrder := map[int]string{
		0:  "확인해보세요",
		5:  "됩니다",
		9:  "하십시오",
		10: "하세요",
		15: "신청하세요",
		16: "클릭해보세요",
		20: "진행하십시오",
		25: "필요합니다",
	}
	all := table.Rules()
	for i, pattern := range wantOrder {
		if all[i].Pattern != pattern {
			t.Errorf("Rules()[%d].Pattern = %q, want %q", i, all[i].Pattern, pattern)
		}
	}

	for _, rule := range all {
		if !rule.Category.IsValid() {
			t.Errorf("rule %q has invalid category %q", rule.Pattern, rule.Category)
		}
		if rule.Description == "" {
			t.Errorf("rule %q has no description", rule.Pattern)
		}
	}
}

func TestTableGet(t *testing.T) {
	table := Default()

	tests := []struct {
		pattern     string
		replacement string
		category    Category
		found       bool
	}{
		{"확인해보세요", "확인하기", FormalToFriendly, true},
		{"하십시오", "해주세요", CommandToPolite, true},
		{"진행하십시오", "진행하기", CommandToAction, true},
		{"입니다", "이에요", EndingTone, true},
		{"하시면", "하면", PoliteToCasual, true},
		{"없는패턴", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			rule, ok := table.Get(tt.pattern)
			if ok != tt.found {
				t.Fatalf("Get(%q) found = %v, want %v", tt.pattern, ok, tt.found)
			}
			if !ok {
				return
			}
			if rule.Replacement != tt.replacement {
				t.Errorf("Replacement = %q, want %q", rule.Replacement, tt.replacement)
			}
			if rule.Category != tt.category {
				t.Errorf("Category = %q, want %q", rule.Category, tt.category)
			}
		})
	}
}

func TestTableSelectKeepsTableOrder(t *testing.T) {
	table := Default()

	selected := table.Select([]string{"필요합니다", "없는패턴", "확인해보세요", "하세요"})
	want := []string{"확인해보세요", "하세요", "필요합니다"}

	if len(selected) != len(want) {
		t.Fatalf("Select() returned %d rules, want %d", len(selected), len(want))
	}
	for i, rule := range selected {
		if rule.Pattern != want[i] {
			t.Errorf("Select()[%d] = %q, want %q", i, rule.Pattern, want[i])
		}
	}

	if got := table.Select(nil); len(got) != 0 {
		t.Errorf("Select(nil) returned %d rules, want 0", len(got))
	}
}

func TestTableByCategory(t *testing.T) {
	table := Default()

	counts := map[Category]int{
		FormalToFriendly: 9,
		CommandToAction:  2,
		PoliteToCasual:   9,
		EndingTone:       5,
		CommandToPolite:  1,
	}
	for category, want := range counts {
		if got := len(table.ByCategory(category)); got != want {
			t.Errorf("ByCategory(%s) = %d rules, want %d", category, got, want)
		}
	}
}

func TestRulesCopyIsIsolated(t *testing.T) {
	table := Default()

	all := table.Rules()
	all[0].Replacement = "changed"

	rule, _ := table.Get("확인해보세요")
	if rule.Replacement != "확인하기" {
		t.Errorf("table mutated through Rules() copy: %q", rule.Replacement)
	}
}

func TestLoadRejectsMalformedRules(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "invalid regexp",
			doc: `name: broken
rules:
  - pattern: "확인(해보세요"
    replacement: 확인하기
    category: formal_to_friendly
`,
		},
		{
			name: "empty pattern",
			doc: `name: broken
rules:
  - pattern: ""
    replacement: x
    category: ending_tone
`,
		},
		{
			name: "unknown category",
			doc: `name: broken
rules:
  - pattern: 됩니다
    replacement: 돼요
    category: shouting
`,
		},
		{
			name: "duplicate pattern",
			doc: `name: broken
rules:
  - pattern: 됩니다
    replacement: 돼요
    category: ending_tone
  - pattern: 됩니다
    replacement: 되요
    category: ending_tone
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			if !errors.Is(err, ErrMalformedRule) {
				t.Errorf("Load() error = %v, want ErrMalformedRule", err)
			}
		})
	}
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	if _, err := Load([]byte("name: empty\nrules: []\n")); err == nil {
		t.Error("Load() of a document with no rules should fail")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := `name: custom
rules:
  - pattern: 바랍니다
    replacement: 주세요
    category: ending_tone
    description: 부탁 표현
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("Failed to write rule file: %v", err)
	}

	table, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if table.Name() != "custom" {
		t.Errorf("Name() = %q, want %q", table.Name(), "custom")
	}
	if got := Apply("확인 바랍니다", table.Rules()); got != "확인 주세요" {
		t.Errorf("Apply() = %q", got)
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFromFile() of a missing file should fail")
	}
}

func TestRuleMatches(t *testing.T) {
	rule, _ := Default().Get("하세요")

	got := rule.Matches("확인하세요. 이용하세요! 하세")
	if len(got) != 2 || got[0] != "하세요" || got[1] != "하세요" {
		t.Errorf("Matches() = %v, want [하세요 하세요]", got)
	}
	if rule.Count("하세요하세요") != 2 {
		t.Errorf("Count() = %d, want 2", rule.Count("하세요하세요"))
	}
}

func TestRulePatternIsRawRegexp(t *testing.T) {
	// Patterns are not escaped: "." matches any character.
	rule := MustRule("확.", "X", EndingTone, "raw")
	if got := rule.Apply("확인 확정"); got != "X X" {
		t.Errorf("Apply() = %q, want %q", got, "X X")
	}

	// Replacements are literal, "$1" is not expanded.
	rule = MustRule("(됩)니다", "$1", EndingTone, "literal")
	if got := rule.Apply("됩니다"); got != "$1" {
		t.Errorf("Apply() = %q, want %q", got, "$1")
	}
}

func TestRuleDeclaredAsLiteral(t *testing.T) {
	rule := Rule{Pattern: "입니다", Replacement: "이에요", Category: EndingTone}
	if got := rule.Apply("서비스입니다"); got != "서비스이에요" {
		t.Errorf("Apply() = %q", got)
	}
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories {
		if !c.IsValid() {
			t.Errorf("%q.IsValid() = false", c)
		}
	}
	if Category("mixed").IsValid() {
		t.Error(`Category("mixed").IsValid() = true`)
	}
}
