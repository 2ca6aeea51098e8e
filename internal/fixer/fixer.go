package fixer

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pthm/uxtone/internal/parser"
	"github.com/pthm/uxtone/internal/ui"
)

// ErrStale is returned when a file no longer holds an item's original text
// at its recorded location
var ErrStale = errors.New("original text not found")

// Options configures the fixer behavior
type Options struct {
	DryRun bool
	Logger *slog.Logger
}

// Edit replaces one item's text in its source file
type Edit struct {
	File      string
	Format    parser.Format
	Item      parser.Item
	Converted string
}

// Failure is a file that could not be committed
type Failure struct {
	File string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.File, f.Err)
}

// Result summarizes a commit
type Result struct {
	Committed int
	Planned   int // edits shown but not written in dry-run mode
	Failures  []Failure
}

// Err joins the failures into one error, or returns nil
func (r *Result) Err() error {
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Fixer writes converted text back to source files
type Fixer struct {
	opts   Options
	ui     *ui.UI
	logger *slog.Logger
}

// New creates a new Fixer
func New(opts Options, u *ui.UI) *Fixer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fixer{opts: opts, ui: u, logger: logger}
}

// Commit applies edits file by file. Edits that do not change text are
// ignored. A file is only written when every edit for it still matches its
// current content; otherwise the file is left untouched and reported.
func (f *Fixer) Commit(edits []Edit) *Result {
	result := &Result{}

	var files []string
	byFile := make(map[string][]Edit)
	for _, edit := range edits {
		if edit.Converted == edit.Item.Text {
			continue
		}
		if _, ok := byFile[edit.File]; !ok {
			files = append(files, edit.File)
		}
		byFile[edit.File] = append(byFile[edit.File], edit)
	}

	for _, file := range files {
		fileEdits := byFile[file]

		if f.opts.DryRun {
			f.printDryRun(f.ui.Writer, file, fileEdits)
			result.Planned += len(fileEdits)
			continue
		}

		if err := f.commitFile(file, fileEdits); err != nil {
			f.logger.Warn("commit failed", "file", file, "edits", len(fileEdits), "error", err)
			result.Failures = append(result.Failures, Failure{File: file, Err: err})
			continue
		}

		f.logger.Debug("committed", "file", file, "edits", len(fileEdits))
		result.Committed += len(fileEdits)
	}

	return result
}

func (f *Fixer) printDryRun(w io.Writer, file string, edits []Edit) {
	s := f.ui.Styles
	fmt.Fprintln(w, s.Suggestion.Render(fmt.Sprintf("Would update: %s", file)))
	for _, edit := range edits {
		fmt.Fprintf(w, "  %s\n", s.Path.Render(location(edit)))
		fmt.Fprintln(w, s.Removed.Render("    - "+strings.ReplaceAll(edit.Item.Text, "\n", "\n    - ")))
		fmt.Fprintln(w, s.Added.Render("    + "+strings.ReplaceAll(edit.Converted, "\n", "\n    + ")))
	}
	fmt.Fprintln(w)
}

func location(edit Edit) string {
	if edit.Format.Structured() && edit.Item.StartLine == 0 {
		return fmt.Sprintf("%s item %d", edit.File, edit.Item.Index+1)
	}
	return fmt.Sprintf("%s:%d-%d", edit.File, edit.Item.StartLine, edit.Item.EndLine)
}

func (f *Fixer) commitFile(file string, edits []Edit) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var updated []byte
	switch edits[0].Format {
	case parser.FormatJSON:
		updated, err = replaceJSON(content, edits)
	case parser.FormatYAML:
		updated, err = replaceYAML(content, edits)
	default:
		updated, err = replaceLines(content, edits)
	}
	if err != nil {
		return err
	}

	return writeAtomic(file, updated)
}

// replaceLines replaces each item's first occurrence within its line range.
// Edits are applied bottom up so line numbers stay valid.
func replaceLines(content []byte, edits []Edit) ([]byte, error) {
	lines := strings.Split(string(content), "\n")

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Item.StartLine > sorted[j].Item.StartLine
	})

	for _, edit := range sorted {
		start, end := edit.Item.StartLine, edit.Item.EndLine
		if start < 1 || end < start || end > len(lines) {
			return nil, fmt.Errorf("%s: invalid line range %d-%d", edit.Item.ID, start, end)
		}

		block := strings.Join(lines[start-1:end], "\n")
		if !strings.Contains(block, edit.Item.Text) {
			return nil, fmt.Errorf("%s: %w", edit.Item.ID, ErrStale)
		}
		block = strings.Replace(block, edit.Item.Text, edit.Converted, 1)

		newLines := make([]string, 0, len(lines))
		newLines = append(newLines, lines[:start-1]...)
		newLines = append(newLines, strings.Split(block, "\n")...)
		newLines = append(newLines, lines[end:]...)
		lines = newLines
	}

	return []byte(strings.Join(lines, "\n")), nil
}

// writeAtomic replaces path with content through a temp file in the same
// directory, keeping the original permissions
func writeAtomic(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
