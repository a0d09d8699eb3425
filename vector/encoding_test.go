package vector

import "testing"

func TestEncodeDecodeEmbedding_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}

	decoded, err := DecodeEmbedding(EncodeEmbedding(orig))
	if err != nil {
		t.Fatalf("DecodeEmbedding failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if got, want := decoded[i], orig[i]; got != want {
			t.Fatalf("decoded[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestDecodeEmbedding_Invalid(t *testing.T) {
	if _, err := DecodeEmbedding([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for blob length 3")
	}
	if _, err := DecodeEmbeddingDim(EncodeEmbedding([]float32{1, 2}), 3); err == nil {
		t.Fatalf("expected dimension error")
	}
	vec, err := DecodeEmbeddingDim(EncodeEmbedding([]float32{1, 2, 3}), 3)
	if err != nil || len(vec) != 3 {
		t.Fatalf("DecodeEmbeddingDim = %v, %v; want 3 values", vec, err)
	}
}

func TestEncodeDecodeEmbedding_Empty(t *testing.T) {
	if b := EncodeEmbedding(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}
	vec, err := DecodeEmbedding(nil)
	if err != nil {
		t.Fatalf("DecodeEmbedding(nil) failed: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty slice for nil blob, got len=%d", len(vec))
	}
}
