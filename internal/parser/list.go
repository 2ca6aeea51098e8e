package parser

import "fmt"

// listItem is one entry of a JSON or YAML item list
type listItem struct {
	ID   string `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// listDocument is the object form of an item list
type listDocument struct {
	Items []listItem `json:"items" yaml:"items"`
}

// listID identifies an item that has no id of its own
func listID(path string, index int) string {
	return fmt.Sprintf("%s#%d", path, index+1)
}

// toItem converts a list entry, returning false for entries without text
func toItem(path string, index, line int, entry listItem) (Item, bool) {
	if entry.Text == "" {
		return Item{}, false
	}
	id := entry.ID
	if id == "" {
		id = listID(path, index)
	}
	return Item{
		ID:        id,
		Text:      entry.Text,
		StartLine: line,
		EndLine:   line,
		Index:     index,
	}, true
}
