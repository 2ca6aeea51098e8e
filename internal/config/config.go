package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "UXTONE_"

type Config struct {
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`
	Lexicon  string `yaml:"lexicon,omitempty"`
	Rules    string `yaml:"rules,omitempty"`

	Server ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Format:   "terminal",
		LogLevel: "warn",
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// ConfigDir honors XDG_CONFIG_HOME and falls back to ~/.config
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "uxtone"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "uxtone"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path over the defaults and applies
// environment overrides. An empty path reads the default location, where a
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"FORMAT":      &c.Format,
		"LOG_LEVEL":   &c.LogLevel,
		"LOG_FILE":    &c.LogFile,
		"LEXICON":     &c.Lexicon,
		"RULES":       &c.Rules,
		"SERVER_ADDR": &c.Server.Addr,
	}
	for key, field := range overrides {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*field = v
		}
	}
}
