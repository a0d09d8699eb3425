package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
table:
  url: /data/glove-wiki-gigaword-50.gz
  limit: 50000
corpus:
  url: mem://localhost/docs
  skipExt: [.gz]
query:
  topN: 3
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Table.URL != "/data/glove-wiki-gigaword-50.gz" || cfg.Table.Limit != 50000 {
		t.Fatalf("Table = %+v", cfg.Table)
	}
	if cfg.Corpus.URL != "mem://localhost/docs" || len(cfg.Corpus.SkipExt) != 1 {
		t.Fatalf("Corpus = %+v", cfg.Corpus)
	}
	if cfg.Query.TopN != 3 {
		t.Fatalf("Query.TopN = %d, want 3", cfg.Query.TopN)
	}
	// unset values keep their defaults
	def := Default()
	if cfg.Query.Threshold != def.Query.Threshold || cfg.Query.ChainLength != def.Query.ChainLength {
		t.Fatalf("Query = %+v, want defaults for threshold and chainLength", cfg.Query)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "table: [", "config:"},
		{"format", "table:\n  format: fasttext\n", "table.format"},
		{"limit", "table:\n  limit: -1\n", "table.limit"},
		{"topN", "query:\n  topN: -2\n", "query.topN"},
		{"chain", "query:\n  chainLength: -1\n", "query.chainLength"},
		{"threshold", "query:\n  threshold: 1.5\n", "query.threshold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Parse err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParse_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	cfg, err := Parse([]byte("table:\n  dsn: ~/wordvec/words.db\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if want := filepath.Join(home, "wordvec/words.db"); cfg.Table.DSN != want {
		t.Fatalf("Table.DSN = %q, want %q", cfg.Table.DSN, want)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	URL := "mem://localhost/config-test/wordvec.yaml"
	content := "table:\n  url: mem://localhost/vectors.txt\n  format: text\nquery:\n  chainLength: 2\n"
	if err := afs.New().Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	cfg, err := Load(ctx, URL)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Table.Format != "text" || cfg.Query.ChainLength != 2 {
		t.Fatalf("Load = %+v", cfg)
	}
	opts, err := cfg.LoaderOptions()
	if err != nil || len(opts) != 2 {
		t.Fatalf("LoaderOptions = %v, %v", opts, err)
	}
	if _, err := Load(ctx, "mem://localhost/config-test/missing.yaml"); err == nil {
		t.Fatalf("expected error for missing config")
	}
}
