package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oscarvarto/xonsh-tree-sitter/scanner"
)

// Config is the xonshtoken.yaml shape: the knobs this scanner's ambient
// config actually needs, dictionary extension and the unicode_identifiers
// toggle, rather than anything deploy-target or database related.
type Config struct {
	ExtraShellCommands []string `yaml:"extra_shell_commands"`
	ExtraReservedWords []string `yaml:"extra_reserved_words"`
	UnicodeIdentifiers bool     `yaml:"unicode_identifiers"`
}

// LoadConfig reads path if non-empty, returning a zero Config when path is
// empty — a debug CLI with no config file is a normal way to run it, not an
// error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyTo extends st's dictionaries per the config. Entries are additive
// only, matching keywords.go's "never remove a listed entry" contract.
func (cfg Config) ApplyTo(st *scanner.ScannerState) {
	if len(cfg.ExtraShellCommands) > 0 {
		st.WithExtraShellCommands(cfg.ExtraShellCommands...)
	}
	if len(cfg.ExtraReservedWords) > 0 {
		st.WithExtraReservedWords(cfg.ExtraReservedWords...)
	}
	st.UnicodeIdentifiers = cfg.UnicodeIdentifiers
}
