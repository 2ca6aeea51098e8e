package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/parser"
	"github.com/pthm/uxtone/internal/ui"
)

func plainUI() (*ui.UI, *bytes.Buffer) {
	var out bytes.Buffer
	return ui.NewWithMode(&out, &out, ui.OutputModePlain), &out
}

// parseAll parses files written under dir
func parseAll(t *testing.T, paths ...string) []*parser.Document {
	t.Helper()
	docs := make([]*parser.Document, len(paths))
	for i, path := range paths {
		doc, err := parser.Parse(path)
		if err != nil {
			t.Fatalf("Parse(%s) error = %v", path, err)
		}
		docs[i] = doc
	}
	return docs
}

func TestCommitChangesAcrossDocuments(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "copy.txt")
	list := filepath.Join(dir, "ko.json")
	writeFile(t, plain, "안녕\n회원가입을 진행하십시오\n")
	writeFile(t, list, `[{"id": "cta", "text": "확인해보세요"}, {"id": "hello", "text": "반가워"}]`)

	docs := parseAll(t, plain, list)
	items, sources, err := collectItems(docs)
	if err != nil {
		t.Fatalf("collectItems() error = %v", err)
	}

	resp, err := engine.New(engine.Options{}).Apply(context.Background(), engine.ApplyRequest{
		Items:            items,
		SelectedPatterns: []string{"진행하십시오", "확인해보세요"},
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	edits, err := planEdits(sources, resp)
	if err != nil {
		t.Fatalf("planEdits() error = %v", err)
	}
	var got []string
	for _, e := range edits {
		got = append(got, filepath.Base(e.File)+" "+e.Item.ID+" "+e.Converted)
	}
	want := []string{
		"copy.txt " + plain + ":2 회원가입을 진행하기",
		"ko.json cta 확인하기",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("edits = %v, want %v", got, want)
	}

	u, _ := plainUI()
	if err := commitChanges(u, sources, resp, false); err != nil {
		t.Fatalf("commitChanges() error = %v", err)
	}

	if content, _ := os.ReadFile(plain); string(content) != "안녕\n회원가입을 진행하기\n" {
		t.Errorf("copy.txt = %q", content)
	}
	if content, _ := os.ReadFile(list); string(content) != `[{"id": "cta", "text": "확인하기"}, {"id": "hello", "text": "반가워"}]` {
		t.Errorf("ko.json = %s", content)
	}
}

func TestCommitChangesDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copy.txt")
	writeFile(t, path, "확인해보세요\n")

	items, sources, err := collectItems(parseAll(t, path))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := engine.New(engine.Options{}).Apply(context.Background(), engine.ApplyRequest{
		Items:            items,
		SelectedPatterns: []string{"확인해보세요"},
	})
	if err != nil {
		t.Fatal(err)
	}

	u, out := plainUI()
	if err := commitChanges(u, sources, resp, true); err != nil {
		t.Fatalf("commitChanges() error = %v", err)
	}
	if !strings.Contains(out.String(), "1 items would be updated") {
		t.Errorf("output = %s", out.String())
	}
	if content, _ := os.ReadFile(path); string(content) != "확인해보세요\n" {
		t.Errorf("dry run wrote %q", content)
	}
}

func TestCommitChangesNothingToChange(t *testing.T) {
	u, out := plainUI()
	resp := &engine.ApplyResponse{ConvertedItems: []engine.ConvertedItem{}, NoApplicableRules: true}

	if err := commitChanges(u, map[string]itemSource{}, resp, false); err != nil {
		t.Fatalf("commitChanges() error = %v", err)
	}
	if !strings.Contains(out.String(), "Nothing to change") {
		t.Errorf("output = %s", out.String())
	}
}

func TestPlanEditsUnknownID(t *testing.T) {
	resp := &engine.ApplyResponse{ConvertedItems: []engine.ConvertedItem{
		{ID: "ghost", Original: "하세요", ConvertedText: "하기"},
	}}
	if _, err := planEdits(map[string]itemSource{}, resp); err == nil {
		t.Error("planEdits() should fail for an item with no source")
	}
}

func TestSelectPatterns(t *testing.T) {
	prevEng, prevRules, prevAll, prevInteractive := eng, applyRules, applyAll, applyInteractive
	t.Cleanup(func() {
		eng, applyRules, applyAll, applyInteractive = prevEng, prevRules, prevAll, prevInteractive
	})
	eng = engine.New(engine.Options{})
	items := []engine.Item{{ID: "1", Text: "확인해보세요"}}
	u, _ := plainUI()

	tests := []struct {
		name        string
		rules       []string
		all         bool
		interactive bool
		want        []string
		wantErr     bool
	}{
		{
			name:  "explicit rules",
			rules: []string{"하세요"},
			want:  []string{"하세요"},
		},
		{
			name: "all applicable rules",
			all:  true,
			want: []string{"확인해보세요", "해보세요"},
		},
		{
			name:        "interactive needs a terminal",
			interactive: true,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applyRules, applyAll, applyInteractive = tt.rules, tt.all, tt.interactive

			got, err := selectPatterns(context.Background(), u, nil, items)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectPatterns() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("selectPatterns() = %v, want %v", got, tt.want)
			}
		})
	}
}
