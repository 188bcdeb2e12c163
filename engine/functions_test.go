package engine

import (
	"math"
	"testing"

	"github.com/viant/conduit/vector"
)

func TestVecL2(t *testing.T) {
	db, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	zeroBlob, err := vector.EncodeEmbedding([]float32{0, 0})
	if err != nil {
		t.Fatalf("EncodeEmbedding zero failed: %v", err)
	}
	threeFourBlob, err := vector.EncodeEmbedding([]float32{3, 4})
	if err != nil {
		t.Fatalf("EncodeEmbedding threeFour failed: %v", err)
	}

	var dist float64
	if err := db.QueryRow(`SELECT vec_l2(?, ?)`, zeroBlob, threeFourBlob).Scan(&dist); err != nil {
		t.Fatalf("vec_l2 query failed: %v", err)
	}
	if math.Abs(dist-5) > 1e-9 {
		t.Fatalf("vec_l2 = %v, want 5", dist)
	}

	if err := db.QueryRow(`SELECT vec_l2(?, ?)`, threeFourBlob, threeFourBlob).Scan(&dist); err != nil {
		t.Fatalf("vec_l2 self query failed: %v", err)
	}
	if dist != 0 {
		t.Fatalf("vec_l2 self = %v, want 0", dist)
	}

	var null *float64
	if err := db.QueryRow(`SELECT vec_l2(NULL, ?)`, zeroBlob).Scan(&null); err != nil {
		t.Fatalf("vec_l2 NULL query failed: %v", err)
	}
	if null != nil {
		t.Fatalf("vec_l2 with NULL = %v, want NULL", *null)
	}

	oneBlob, _ := vector.EncodeEmbedding([]float32{1})
	if err := db.QueryRow(`SELECT vec_l2(?, ?)`, oneBlob, zeroBlob).Scan(&dist); err == nil {
		t.Fatalf("expected dimension mismatch error")
	}
}
