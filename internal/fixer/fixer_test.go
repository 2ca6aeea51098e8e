package fixer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/uxtone/internal/parser"
	"github.com/pthm/uxtone/internal/ui"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

// editsFor parses path and pairs its items with converted texts by position
func editsFor(t *testing.T, path string, converted ...string) []Edit {
	t.Helper()
	doc, err := parser.Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Items) != len(converted) {
		t.Fatalf("parsed %d items, want %d", len(doc.Items), len(converted))
	}
	edits := make([]Edit, len(doc.Items))
	for i, item := range doc.Items {
		edits[i] = Edit{File: path, Format: doc.Format, Item: item, Converted: converted[i]}
	}
	return edits
}

func newFixer(dryRun bool) (*Fixer, *bytes.Buffer) {
	var out bytes.Buffer
	return New(Options{DryRun: dryRun}, ui.NewWithMode(&out, &out, ui.OutputModePlain)), &out
}

func TestCommitPlain(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "copy.txt", "확인해보세요\n\n  회원가입을 진행하십시오\n안녕\n")

	f, _ := newFixer(false)
	result := f.Commit(editsFor(t, path, "확인하기", "회원가입을 진행하기", "안녕"))

	if result.Committed != 2 {
		t.Errorf("Committed = %d, want 2", result.Committed)
	}
	if err := result.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}

	want := "확인하기\n\n  회원가입을 진행하기\n안녕\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestCommitMarkdownMultiLine(t *testing.T) {
	dir := t.TempDir()
	content := "# 서비스를 확인해보세요\n\n지금 신청하세요.\n혜택이 있습니다.\n"
	path := writeFile(t, dir, "copy.md", content)

	f, _ := newFixer(false)
	result := f.Commit(editsFor(t, path, "서비스를 확인하기", "지금 신청하기.\n혜택이 있어요."))

	if result.Committed != 2 {
		t.Errorf("Committed = %d, want 2", result.Committed)
	}
	want := "# 서비스를 확인하기\n\n지금 신청하기.\n혜택이 있어요.\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestCommitRefusesStaleEdits(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "copy.txt", "확인해보세요\n진행하십시오\n")
	edits := editsFor(t, path, "확인하기", "진행하기")

	// The file changes between analysis and commit
	changed := "확인해보세요\n다른 문장\n"
	if err := os.WriteFile(path, []byte(changed), 0o644); err != nil {
		t.Fatal(err)
	}

	f, _ := newFixer(false)
	result := f.Commit(edits)

	if result.Committed != 0 {
		t.Errorf("Committed = %d, want 0", result.Committed)
	}
	if len(result.Failures) != 1 || !errors.Is(result.Failures[0].Err, ErrStale) {
		t.Fatalf("Failures = %v, want one ErrStale", result.Failures)
	}
	if !errors.Is(result.Err(), ErrStale) {
		t.Errorf("Err() = %v, want ErrStale", result.Err())
	}
	if got := readFile(t, path); got != changed {
		t.Errorf("stale file was modified: %q", got)
	}
}

func TestCommitFailureIsPerFile(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.txt", "확인해보세요\n")
	bad := writeFile(t, dir, "bad.txt", "진행하십시오\n")

	edits := append(editsFor(t, good, "확인하기"), editsFor(t, bad, "진행하기")...)
	if err := os.Remove(bad); err != nil {
		t.Fatal(err)
	}

	f, _ := newFixer(false)
	result := f.Commit(edits)

	if result.Committed != 1 {
		t.Errorf("Committed = %d, want 1", result.Committed)
	}
	if len(result.Failures) != 1 || result.Failures[0].File != bad {
		t.Errorf("Failures = %v", result.Failures)
	}
	if got := readFile(t, good); got != "확인하기\n" {
		t.Errorf("good file = %q", got)
	}
}

func TestCommitJSONKeepsFormatting(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "locale": "ko",
  "items": [
    {"id": "cta", "text": "확인해보세요", "screen": "home"},
    {"id": "empty", "text": ""},
    {"id": "ok", "text": "좋아요"}
  ]
}
`
	path := writeFile(t, dir, "ko.json", content)

	f, _ := newFixer(false)
	result := f.Commit(editsFor(t, path, "확인하기", "좋아요"))

	if result.Committed != 1 {
		t.Errorf("Committed = %d, want 1", result.Committed)
	}
	want := strings.Replace(content, `"확인해보세요"`, `"확인하기"`, 1)
	if got := readFile(t, path); got != want {
		t.Errorf("file = %s\nwant %s", got, want)
	}
}

func TestCommitJSONEntryWithoutText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ko.json", `[{"id":"divider"},{"id":"cta","text":"확인해보세요"}]`)

	f, _ := newFixer(false)
	result := f.Commit(editsFor(t, path, "확인하기"))

	if result.Committed != 1 {
		t.Fatalf("Committed = %d, want 1 (%v)", result.Committed, result.Err())
	}
	if got := readFile(t, path); got != `[{"id":"divider"},{"id":"cta","text":"확인하기"}]` {
		t.Errorf("file = %s", got)
	}
}

func TestCommitJSONNestedTextKeys(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "meta": {"text": "note"},
  "items": [
    {"id": "a", "meta": {"text": "확인해보세요"}, "text": "확인해보세요"},
    {"id": "b", "text": "확인해보세요"}
  ]
}`
	path := writeFile(t, dir, "ko.json", content)

	f, _ := newFixer(false)
	result := f.Commit(editsFor(t, path, "확인하기", "확인해보세요"))

	if result.Committed != 1 {
		t.Fatalf("Committed = %d, want 1 (%v)", result.Committed, result.Err())
	}
	// Only entry a's own text changes; the nested meta text and entry b
	// with the same text stay as they were
	want := `{
  "meta": {"text": "note"},
  "items": [
    {"id": "a", "meta": {"text": "확인해보세요"}, "text": "확인하기"},
    {"id": "b", "text": "확인해보세요"}
  ]
}`
	if got := readFile(t, path); got != want {
		t.Errorf("file = %s\nwant %s", got, want)
	}
}

func TestCommitJSONStale(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ko.json", `[{"id": "a", "text": "확인해보세요"}]`)
	edits := editsFor(t, path, "확인하기")

	if err := os.WriteFile(path, []byte(`[{"id": "a", "text": "바뀐 문장"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	f, _ := newFixer(false)
	result := f.Commit(edits)
	if len(result.Failures) != 1 || !errors.Is(result.Failures[0].Err, ErrStale) {
		t.Errorf("Failures = %v, want one ErrStale", result.Failures)
	}
}

func TestCommitYAML(t *testing.T) {
	dir := t.TempDir()
	content := `# onboarding strings
items:
  - id: cta
    text: 확인해보세요
  - id: next
    text: 진행하십시오
`
	path := writeFile(t, dir, "ko.yaml", content)

	f, _ := newFixer(false)
	result := f.Commit(editsFor(t, path, "확인하기", "진행하십시오"))
	if result.Committed != 1 {
		t.Fatalf("Committed = %d, want 1 (%v)", result.Committed, result.Err())
	}

	got := readFile(t, path)
	if !strings.Contains(got, "# onboarding strings") {
		t.Errorf("comment lost:\n%s", got)
	}

	doc, err := parser.Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	texts := doc.Texts()
	if len(texts) != 2 || texts[0] != "확인하기" || texts[1] != "진행하십시오" {
		t.Errorf("Texts() = %v", texts)
	}
}

func TestCommitDryRun(t *testing.T) {
	dir := t.TempDir()
	content := "확인해보세요\n"
	path := writeFile(t, dir, "copy.txt", content)

	f, out := newFixer(true)
	result := f.Commit(editsFor(t, path, "확인하기"))

	if result.Committed != 0 || result.Planned != 1 {
		t.Errorf("Committed = %d, Planned = %d, want 0 and 1", result.Committed, result.Planned)
	}
	if got := readFile(t, path); got != content {
		t.Errorf("dry run modified the file: %q", got)
	}

	output := out.String()
	for _, want := range []string{"Would update: " + path, "- 확인해보세요", "+ 확인하기"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestWriteAtomicKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copy.txt")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := writeAtomic(path, []byte("new")); err != nil {
		t.Fatalf("writeAtomic() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
	if got := readFile(t, path); got != "new" {
		t.Errorf("content = %q", got)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}
