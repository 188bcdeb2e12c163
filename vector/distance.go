package vector

import (
	"fmt"

	"github.com/viant/vec/search"
)

// L2Distance computes the Euclidean (L2) distance between two embeddings. It
// returns an error if the embeddings have different lengths.
func L2Distance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector: L2 distance dimension mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}

// Distance returns the Euclidean distance between the indexed coordinates of
// two vectors.
func Distance(a, b Vector) float64 {
	d, _ := L2Distance(a.Embedding(), b.Embedding())
	return d
}
