package corpus

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", nil},
		{"   \n\t", nil},
		{"The cat sat.", []string{"The", "cat", "sat", "."}},
		{"well-known  \"quotes\"!?", []string{"well", "-", "known", "\"", "quotes", "\"!?"}},
		{"Zürich 2024_q1", []string{"Zürich", "2024_q1"}},
	}
	for _, tt := range tests {
		if got := Tokenize(tt.text); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestMemory(t *testing.T) {
	c := NewMemory(map[string][]string{
		"b.txt": {"dog"},
		"a.txt": {"cat", "."},
	})
	ids := c.DocumentIDs()
	if !reflect.DeepEqual(ids, []string{"a.txt", "b.txt"}) {
		t.Fatalf("DocumentIDs = %v", ids)
	}
	ids[0] = "mutated"
	if c.DocumentIDs()[0] != "a.txt" {
		t.Fatalf("DocumentIDs shares internal state")
	}
	if tokens, ok := c.Tokens("a.txt"); !ok || len(tokens) != 2 {
		t.Fatalf("Tokens(a.txt) = %v, %v", tokens, ok)
	}
	if _, ok := c.Tokens("missing"); ok {
		t.Fatalf("Tokens(missing) reported ok")
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	baseURL := "mem://localhost/corpus-test"
	docs := map[string]string{
		"one.txt":    "The cat and the dog.",
		"two.txt":    "Pets!",
		"vectors.gz": "binary",
	}
	for name, content := range docs {
		if err := fs.Upload(ctx, baseURL+"/"+name, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
			t.Fatalf("upload %s: %v", name, err)
		}
	}

	c, err := Load(ctx, baseURL, ".gz")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ids := c.DocumentIDs(); !reflect.DeepEqual(ids, []string{"one.txt", "two.txt"}) {
		t.Fatalf("DocumentIDs = %v", ids)
	}
	tokens, _ := c.Tokens("one.txt")
	if want := []string{"The", "cat", "and", "the", "dog", "."}; !reflect.DeepEqual(tokens, want) {
		t.Fatalf("Tokens(one.txt) = %q, want %q", tokens, want)
	}
}
