package engine

import (
	"database/sql"
	"errors"
	"math"
	"testing"

	"github.com/viant/wordvec/vector"
)

func TestRegisterVectorFunctionsAndUse(t *testing.T) {
	db, err := OpenWithFunctions(":memory:")
	if err != nil {
		t.Fatalf("OpenWithFunctions failed: %v", err)
	}
	defer db.Close()

	// Registration is idempotent.
	if err := RegisterVectorFunctions(db); err != nil {
		t.Fatalf("RegisterVectorFunctions failed: %v", err)
	}

	a := vector.EncodeEmbedding([]float32{1, 0})
	b := vector.EncodeEmbedding([]float32{0, 1})
	c := vector.EncodeEmbedding([]float32{1, 0})
	zero := vector.EncodeEmbedding([]float32{0, 0})
	threeFour := vector.EncodeEmbedding([]float32{3, 4})

	// vec_cosine orthogonal -> 0
	var sim float64
	if err := db.QueryRow(`SELECT vec_cosine(?, ?)`, a, b).Scan(&sim); err != nil {
		t.Fatalf("vec_cosine(a,b) query failed: %v", err)
	}
	if sim != 0 {
		t.Fatalf("vec_cosine(a,b) = %v, want 0", sim)
	}

	// vec_cosine identical -> 1
	if err := db.QueryRow(`SELECT vec_cosine(?, ?)`, a, c).Scan(&sim); err != nil {
		t.Fatalf("vec_cosine(a,c) query failed: %v", err)
	}
	if math.Abs(sim-1) > 1e-9 {
		t.Fatalf("vec_cosine(a,c) = %v, want 1", sim)
	}

	// vec_cosine with a zero vector is undefined -> NULL
	var undefined sql.NullFloat64
	if err := db.QueryRow(`SELECT vec_cosine(?, ?)`, a, zero).Scan(&undefined); err != nil {
		t.Fatalf("vec_cosine(a,zero) query failed: %v", err)
	}
	if undefined.Valid {
		t.Fatalf("vec_cosine(a,zero) = %v, want NULL", undefined.Float64)
	}

	// vec_l2 between (0,0) and (3,4) -> 5
	var dist float64
	if err := db.QueryRow(`SELECT vec_l2(?, ?)`, zero, threeFour).Scan(&dist); err != nil {
		t.Fatalf("vec_l2 query failed: %v", err)
	}
	if math.Abs(dist-5) > 1e-6 {
		t.Fatalf("vec_l2 = %v, want 5", dist)
	}

	// vec_norm of (3,4) -> 5
	var norm float64
	if err := db.QueryRow(`SELECT vec_norm(?)`, threeFour).Scan(&norm); err != nil {
		t.Fatalf("vec_norm query failed: %v", err)
	}
	if math.Abs(norm-5) > 1e-6 {
		t.Fatalf("vec_norm = %v, want 5", norm)
	}
}

func TestVecCosine_DimensionMismatch(t *testing.T) {
	db, err := OpenWithFunctions(":memory:")
	if err != nil {
		t.Fatalf("OpenWithFunctions failed: %v", err)
	}
	defer db.Close()

	var sim sql.NullFloat64
	err = db.QueryRow(`SELECT vec_cosine(?, ?)`,
		vector.EncodeEmbedding([]float32{1, 0}),
		vector.EncodeEmbedding([]float32{1, 0, 0})).Scan(&sim)
	if err == nil {
		t.Fatalf("expected dimension mismatch error, got %v", sim)
	}
}

func TestRegisterVectorFunctions_KeepsError(t *testing.T) {
	if err := RegisterVectorFunctions(nil); err != nil {
		t.Fatalf("RegisterVectorFunctions failed: %v", err)
	}
	saved := registerErr
	defer func() { registerErr = saved }()

	registerErr = errors.New("engine: function already registered")
	for i := 0; i < 2; i++ {
		if err := RegisterVectorFunctions(nil); err != registerErr {
			t.Fatalf("call %d: RegisterVectorFunctions = %v, want %v", i, err, registerErr)
		}
	}
	if db, err := OpenWithFunctions(":memory:"); err == nil {
		_ = db.Close()
		t.Fatalf("OpenWithFunctions expected registration error")
	}
}
