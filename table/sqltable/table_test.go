package sqltable

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/viant/wordvec/engine"
	"github.com/viant/wordvec/table"
	"github.com/viant/wordvec/table/memory"
	"github.com/viant/wordvec/vector"
)

func openPets(t *testing.T) (*sql.DB, *memory.Table, *Table) {
	t.Helper()
	db, err := engine.OpenWithFunctions(":memory:")
	if err != nil {
		t.Fatalf("engine.OpenWithFunctions failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	src, err := memory.New(
		[]string{"cat", "dog", "pet", "kitten", "void"},
		[][]float32{{1, 0}, {0.9, 0.1}, {0.5, 0.5}, {1, 0}, {0, 0}},
	)
	if err != nil {
		t.Fatalf("memory.New failed: %v", err)
	}
	ctx := context.Background()
	n, err := Import(ctx, db, src)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != src.Len() {
		t.Fatalf("Import = %d rows, want %d", n, src.Len())
	}
	tbl, err := Open(ctx, db)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db, src, tbl
}

func TestOpen_Lookups(t *testing.T) {
	_, src, tbl := openPets(t)
	if tbl.Dimension() != 2 {
		t.Fatalf("Dimension = %d, want 2", tbl.Dimension())
	}
	got, want := tbl.Vocabulary(), src.Vocabulary()
	if len(got) != len(want) {
		t.Fatalf("Vocabulary = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Vocabulary = %v, want %v", got, want)
		}
	}
	v, ok := tbl.Vector("dog")
	if !ok || len(v) != 2 || v[0] != float32(0.9) {
		t.Fatalf("Vector(dog) = %v, %v", v, ok)
	}
	if tbl.Contains("missing") {
		t.Fatalf("Contains(missing) = true")
	}
}

// TestMostSimilar_MatchesMemory verifies that ranking in SQL agrees with the
// in-memory brute-force ranking, including tie order and zero vectors.
func TestMostSimilar_MatchesMemory(t *testing.T) {
	_, src, tbl := openPets(t)
	for _, token := range []string{"cat", "dog", "pet", "void", "missing"} {
		for _, topN := range []int{0, 1, 2} {
			want, err := src.MostSimilar(token, topN)
			if err != nil {
				t.Fatalf("memory MostSimilar(%s) failed: %v", token, err)
			}
			got, err := tbl.MostSimilar(token, topN)
			if err != nil {
				t.Fatalf("sql MostSimilar(%s) failed: %v", token, err)
			}
			if len(got) != len(want) {
				t.Fatalf("MostSimilar(%s,%d) = %v, want %v", token, topN, got, want)
			}
			for i := range want {
				if got[i].Token != want[i].Token || math.Abs(got[i].Score-want[i].Score) > 1e-9 {
					t.Fatalf("MostSimilar(%s,%d)[%d] = %v, want %v", token, topN, i, got[i], want[i])
				}
			}
		}
	}
}

func TestSimilarity(t *testing.T) {
	_, src, tbl := openPets(t)
	want, _ := src.Similarity("cat", "pet")
	got, err := tbl.Similarity("cat", "pet")
	if err != nil {
		t.Fatalf("Similarity failed: %v", err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Similarity(cat,pet) = %v, want %v", got, want)
	}
	if _, err := tbl.Similarity("cat", "missing"); !errors.Is(err, table.ErrUnknownToken) {
		t.Fatalf("Similarity(missing) err = %v", err)
	}
	if _, err := tbl.Similarity("void", "cat"); !errors.Is(err, vector.ErrZeroMagnitude) {
		t.Fatalf("Similarity(void) err = %v", err)
	}
}

func TestImport_Replaces(t *testing.T) {
	db, _, _ := openPets(t)
	ctx := context.Background()
	small, err := memory.New([]string{"sun"}, [][]float32{{1, 1, 1}})
	if err != nil {
		t.Fatalf("memory.New failed: %v", err)
	}
	if _, err := Import(ctx, db, small); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	tbl, err := Open(ctx, db)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if vocab := tbl.Vocabulary(); len(vocab) != 1 || vocab[0] != "sun" || tbl.Dimension() != 3 {
		t.Fatalf("after re-import Vocabulary = %v, Dimension = %d", vocab, tbl.Dimension())
	}
}

func TestOpen_NilDB(t *testing.T) {
	if _, err := Open(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
	if _, err := Import(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
