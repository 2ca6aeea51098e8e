package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/pthm/uxtone/internal/profile"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	e := New(Options{})

	if _, err := e.Analyze(context.Background(), AnalyzeRequest{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Analyze() error = %v, want ErrEmptyInput", err)
	}
	if _, err := e.Apply(context.Background(), ApplyRequest{SelectedPatterns: []string{"하세요"}}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Apply() error = %v, want ErrEmptyInput", err)
	}
}

func TestAnalyze(t *testing.T) {
	e := New(Options{})

	resp, err := e.Analyze(context.Background(), AnalyzeRequest{Items: []Item{
		{ID: "title", Text: "이 서비스를 확인해보세요. 정말 대박이에요!"},
		{ID: "body", Text: "오늘 날씨"},
	}})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if resp.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", resp.ItemCount)
	}
	if resp.Profile == nil || resp.Profile.Analysis == nil {
		t.Fatal("Analyze() returned no profile")
	}
	if len(resp.Profile.ApplicableRules) == 0 {
		t.Fatal("expected applicable rules")
	}
	if got := resp.Profile.ApplicableRules[0].Matches; len(got) != 1 || got[0] != "확인해보세요" {
		t.Errorf("Matches = %v, want [확인해보세요]", got)
	}

	for _, s := range resp.Suggestions {
		if s.ItemID != "title" {
			t.Errorf("suggestion for %q, only title has matches", s.ItemID)
		}
		if s.Confidence != profile.SuggestionConfidence {
			t.Errorf("Confidence = %d", s.Confidence)
		}
	}
}

func TestApplySelectedRule(t *testing.T) {
	e := New(Options{})

	resp, err := e.Apply(context.Background(), ApplyRequest{
		Items: []Item{
			{ID: "1", Text: "로그인하십시오"},
			{ID: "2", Text: "회원가입을 진행하십시오"},
		},
		SelectedPatterns: []string{"진행하십시오"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if resp.ConvertedCount != 1 {
		t.Errorf("ConvertedCount = %d, want 1", resp.ConvertedCount)
	}
	if resp.NoApplicableRules {
		t.Error("NoApplicableRules = true")
	}

	if resp.ItemCount != 2 {
		t.Errorf("ItemCount = %d, want 2", resp.ItemCount)
	}

	// Only the changed item is listed
	if len(resp.ConvertedItems) != 1 {
		t.Fatalf("ConvertedItems = %+v, want only item 2", resp.ConvertedItems)
	}
	got := resp.ConvertedItems[0]
	if got.ID != "2" || got.ConvertedText != "회원가입을 진행하기" {
		t.Errorf("ConvertedItems[0] = {%s %q}, want {2 %q}", got.ID, got.ConvertedText, "회원가입을 진행하기")
	}
	if len(got.Changes) != 1 {
		t.Errorf("Changes = %+v, want one change", got.Changes)
	}

	// The updated profile sees the converted texts: 진행하십시오 is gone,
	// 하십시오 still applies to the first item.
	patterns := resp.UpdatedProfile.Patterns()
	if len(patterns) != 1 || patterns[0] != "하십시오" {
		t.Errorf("UpdatedProfile patterns = %v, want [하십시오]", patterns)
	}
}

func TestApplyUsesTableOrder(t *testing.T) {
	e := New(Options{})

	// 확인해보세요 precedes 해보세요 in the table regardless of request order
	resp, err := e.Apply(context.Background(), ApplyRequest{
		Items:            []Item{{ID: "1", Text: "확인해보세요"}},
		SelectedPatterns: []string{"해보세요", "확인해보세요"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := resp.ConvertedItems[0].ConvertedText; got != "확인하기" {
		t.Errorf("ConvertedText = %q, want %q", got, "확인하기")
	}
}

func TestApplyNoApplicableRules(t *testing.T) {
	e := New(Options{})

	resp, err := e.Apply(context.Background(), ApplyRequest{
		Items:            []Item{{ID: "1", Text: "확인해보세요"}},
		SelectedPatterns: []string{"없는패턴"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !resp.NoApplicableRules {
		t.Error("NoApplicableRules = false, want true")
	}
	if resp.ConvertedCount != 0 {
		t.Errorf("ConvertedCount = %d, want 0", resp.ConvertedCount)
	}
	if len(resp.ConvertedItems) != 0 {
		t.Errorf("ConvertedItems = %+v, want none", resp.ConvertedItems)
	}
	if resp.UpdatedProfile == nil {
		t.Error("UpdatedProfile = nil")
	}
}

func TestApplyKnownRuleMatchingNothing(t *testing.T) {
	e := New(Options{})

	resp, err := e.Apply(context.Background(), ApplyRequest{
		Items:            []Item{{ID: "1", Text: "안녕"}},
		SelectedPatterns: []string{"진행하십시오"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !resp.NoApplicableRules {
		t.Error("NoApplicableRules = false, want true when no item changes")
	}
	if resp.ConvertedCount != 0 || len(resp.ConvertedItems) != 0 {
		t.Errorf("ConvertedCount = %d, ConvertedItems = %+v", resp.ConvertedCount, resp.ConvertedItems)
	}
	if resp.ItemCount != 1 {
		t.Errorf("ItemCount = %d, want 1", resp.ItemCount)
	}
}

func TestApplyCancelledContext(t *testing.T) {
	e := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Apply(ctx, ApplyRequest{Items: []Item{{ID: "1", Text: "x"}}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Apply() error = %v, want context.Canceled", err)
	}
}

func TestCancel(t *testing.T) {
	// Cancel holds no state; calling it repeatedly is harmless.
	e := New(Options{})
	e.Cancel(context.Background())
	e.Cancel(context.Background())

	if e.Rules().Len() != 26 {
		t.Errorf("Rules().Len() = %d, want 26", e.Rules().Len())
	}
}
