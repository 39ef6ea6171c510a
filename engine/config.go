package engine

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tcrtrie/tcrtrie/search"
)

// Config holds the engine-wide settings a caller may want to tune: the
// maximum accepted query length and the batch dispatcher's concurrency
// multiplier (applied to hardware_parallelism as a policy knob). It never
// carries corpus data — only the corpus and trie own that.
type Config struct {
	MaxQueryLength        int `yaml:"maxQueryLength"`
	ConcurrencyMultiplier int `yaml:"concurrencyMultiplier"`
}

// DefaultConfig returns the compiled-in defaults used when no config file is
// loaded, so an Engine is always usable without one.
func DefaultConfig() Config {
	return Config{
		MaxQueryLength:        search.DefaultMaxQueryLength,
		ConcurrencyMultiplier: 10,
	}
}

// LoadConfig reads a YAML config file at path, starting from DefaultConfig
// and overriding only the fields present in the file. The caller decides
// what a read error (including a missing file) means for it — fall back to
// defaults, or write defaults out.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "yaml.Unmarshal config %q", path)
	}
	return cfg, nil
}
