package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/wordvec/loader"
	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration.
type Config struct {
	Table  TableConfig  `yaml:"table"`
	Corpus CorpusConfig `yaml:"corpus"`
	Query  QueryConfig  `yaml:"query"`
}

// TableConfig locates the embedding table. When DSN is set the table is read
// from SQLite, otherwise URL is loaded with the given format and limit.
type TableConfig struct {
	URL    string `yaml:"url"`
	Format string `yaml:"format"`
	Limit  int    `yaml:"limit"`
	DSN    string `yaml:"dsn"`
}

// CorpusConfig locates the document folder.
type CorpusConfig struct {
	URL     string   `yaml:"url"`
	SkipExt []string `yaml:"skipExt"`
}

// QueryConfig holds query defaults.
type QueryConfig struct {
	TopN        int     `yaml:"topN"`
	Threshold   float64 `yaml:"threshold"`
	ChainLength int     `yaml:"chainLength"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Query: QueryConfig{
			TopN:        10,
			Threshold:   0.5,
			ChainLength: 5,
		},
	}
}

// Load reads a YAML configuration from any afs URL. Unset values keep their
// defaults.
func Load(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("config: download %s: %w", URL, err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var err error
	if cfg.Table.URL, err = expandUserPath(cfg.Table.URL); err != nil {
		return nil, err
	}
	if cfg.Table.DSN, err = expandUserPath(cfg.Table.DSN); err != nil {
		return nil, err
	}
	if cfg.Corpus.URL, err = expandUserPath(cfg.Corpus.URL); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := loader.ParseFormat(c.Table.Format); err != nil {
		return fmt.Errorf("config: table.format: %w", err)
	}
	if c.Table.Limit < 0 {
		return fmt.Errorf("config: table.limit must not be negative: %d", c.Table.Limit)
	}
	if c.Query.TopN < 0 {
		return fmt.Errorf("config: query.topN must not be negative: %d", c.Query.TopN)
	}
	if c.Query.ChainLength < 0 {
		return fmt.Errorf("config: query.chainLength must not be negative: %d", c.Query.ChainLength)
	}
	if c.Query.Threshold < -1 || c.Query.Threshold > 1 {
		return fmt.Errorf("config: query.threshold must be within [-1, 1]: %v", c.Query.Threshold)
	}
	return nil
}

// LoaderOptions returns the loader options for the table section.
func (c *Config) LoaderOptions() ([]loader.Option, error) {
	format, err := loader.ParseFormat(c.Table.Format)
	if err != nil {
		return nil, fmt.Errorf("config: table.format: %w", err)
	}
	return []loader.Option{loader.WithFormat(format), loader.WithLimit(c.Table.Limit)}, nil
}

func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed != "~" && !strings.HasPrefix(trimmed, "~/") {
		return trimmed, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(trimmed, "~")), nil
}
