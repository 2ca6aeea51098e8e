package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pthm/uxtone/internal/engine"
	"github.com/pthm/uxtone/internal/parser"
	"github.com/pthm/uxtone/internal/ui"
)

// inputExtensions are the file types picked up when walking a directory
var inputExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".json":     true,
	".yaml":     true,
	".yml":      true,
}

// expandPaths replaces directories with the input files beneath them
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != arg && len(d.Name()) > 1 && d.Name()[0] == '.' {
					return filepath.SkipDir
				}
				return nil
			}
			if inputExtensions[filepath.Ext(path)] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", arg, err)
		}
	}
	return paths, nil
}

// readDocuments parses every file named in args, or standard input when
// there are none
func readDocuments(args []string, progress *ui.ProgressController) ([]*parser.Document, error) {
	if len(args) == 0 {
		progress.SetOperation(parser.StdinName)
		doc, err := parser.ParseReader(parser.StdinName, os.Stdin)
		if err != nil {
			return nil, err
		}
		return []*parser.Document{doc}, nil
	}

	paths, err := expandPaths(args)
	if err != nil {
		return nil, err
	}

	progress.SetFileCount(len(paths))
	docs := make([]*parser.Document, 0, len(paths))
	for _, path := range paths {
		progress.FileStart(path)
		doc, err := parser.Parse(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("parsed", "file", path, "format", doc.Format, "items", len(doc.Items))
		docs = append(docs, doc)
		progress.FileDone()
	}
	return docs, nil
}

// itemSource locates an engine item in the document it came from
type itemSource struct {
	doc  *parser.Document
	item parser.Item
}

// collectItems flattens documents into engine items in document order and
// indexes them by ID. IDs must be unique across the input so converted items
// can be paired back to their source.
func collectItems(docs []*parser.Document) ([]engine.Item, map[string]itemSource, error) {
	var items []engine.Item
	sources := make(map[string]itemSource)
	for _, doc := range docs {
		for _, item := range doc.Items {
			if prev, ok := sources[item.ID]; ok {
				return nil, nil, fmt.Errorf("duplicate item id %q in %s and %s", item.ID, prev.doc.Path, doc.Path)
			}
			sources[item.ID] = itemSource{doc: doc, item: item}
			items = append(items, engine.Item{ID: item.ID, Text: item.Text})
		}
	}
	return items, sources, nil
}

func fromStdin(docs []*parser.Document) bool {
	return len(docs) == 1 && docs[0].Path == parser.StdinName
}
