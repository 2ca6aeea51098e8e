package lexicon

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed configs/*.yaml
var configFS embed.FS

// DefaultName is the lexicon used when none is configured
const DefaultName = "ko"

// builtinLexicons maps lexicon names to their definitions
var builtinLexicons = map[string]*Lexicon{}

func init() {
	entries, err := configFS.ReadDir("configs")
	if err != nil {
		panic(fmt.Sprintf("lexicon: %v", err))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := configFS.ReadFile(path.Join("configs", entry.Name()))
		if err != nil {
			panic(fmt.Sprintf("lexicon: %v", err))
		}

		lex, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("lexicon: builtin %s: %v", entry.Name(), err))
		}

		builtinLexicons[lex.Name] = lex
	}
}

// Parse decodes and validates a YAML lexicon
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if err := lex.prepare(); err != nil {
		return nil, err
	}
	return &lex, nil
}

// Load returns a built-in lexicon by name
func Load(name string) (*Lexicon, error) {
	if lex, ok := builtinLexicons[name]; ok {
		return lex, nil
	}
	return nil, fmt.Errorf("unknown lexicon: %s", name)
}

// Default returns the built-in Korean lexicon
func Default() *Lexicon {
	return builtinLexicons[DefaultName]
}

// Available returns the names of all built-in lexicons
func Available() []string {
	names := make([]string, 0, len(builtinLexicons))
	for name := range builtinLexicons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFromFile loads a user-defined lexicon from a YAML file
func LoadFromFile(filename string) (*Lexicon, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return lex, nil
}

// Resolve loads a lexicon by built-in name, falling back to a file path
func Resolve(nameOrPath string) (*Lexicon, error) {
	if nameOrPath == "" {
		return Default(), nil
	}
	if lex, ok := builtinLexicons[nameOrPath]; ok {
		return lex, nil
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return LoadFromFile(nameOrPath)
	}
	return Load(nameOrPath)
}
