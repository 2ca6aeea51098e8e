package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML item lists: either a sequence of {id, text}
// mappings or a mapping with an "items" sequence
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFormat(path) == FormatYAML
}

// Parse parses a YAML file, keeping the line of every entry
func (p *YAMLParser) Parse(path string, content []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}

	seq, err := ItemSequence(&root)
	if err != nil {
		return nil, err
	}

	var items []Item
	if seq != nil {
		for i, node := range seq.Content {
			var entry listItem
			if err := node.Decode(&entry); err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			if item, ok := toItem(path, i, node.Line, entry); ok {
				items = append(items, item)
			}
		}
	}

	return &Document{
		Path:    path,
		Content: content,
		Format:  FormatYAML,
		Items:   items,
	}, nil
}

// ItemSequence finds the item sequence in a decoded YAML document. An empty
// document has no sequence and no error.
func ItemSequence(root *yaml.Node) (*yaml.Node, error) {
	node := root
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		return node, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "items" {
				if node.Content[i+1].Kind != yaml.SequenceNode {
					return nil, fmt.Errorf("line %d: items must be a list", node.Content[i+1].Line)
				}
				return node.Content[i+1], nil
			}
		}
		return nil, fmt.Errorf("no items list")
	default:
		return nil, fmt.Errorf("line %d: expected a list of items", node.Line)
	}
}

// TextNode returns the value node of the "text" key of an entry
func TextNode(entry *yaml.Node) *yaml.Node {
	if entry.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(entry.Content); i += 2 {
		if entry.Content[i].Value == "text" {
			return entry.Content[i+1]
		}
	}
	return nil
}
