package rules

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tables/default.yaml
var defaultDocument []byte

// document is the on-disk shape of a rule table
type document struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

var defaultTable *Table

func init() {
	t, err := Load(defaultDocument)
	if err != nil {
		// The built-in table is static; failing to load it is a build defect.
		panic(fmt.Sprintf("rules: built-in table: %v", err))
	}
	defaultTable = t
}

// Default returns the built-in rule table
func Default() *Table {
	return defaultTable
}

// Load parses and compiles a YAML rule document
func Load(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse rule document: %w", err)
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("rule document %q has no rules", doc.Name)
	}
	return NewTable(doc.Name, doc.Rules)
}

// LoadFromFile loads a user-defined rule table from a YAML file
func LoadFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}
	t, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
