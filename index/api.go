package index

// Index defines a vector index with basic lifecycle methods. It enables
// building from (id, embedding) pairs, kNN queries, and binary serialization
// for persistence.
type Index interface {
	// Build constructs the index from the given ids and vectors. ids and
	// vectors must have the same length; the position of an id is its
	// insertion order.
	Build(ids []string, vectors [][]float32) error

	// Query runs a kNN search against the index with the provided query
	// vector and returns up to k matches as parallel slices of ids and
	// Euclidean distances, ascending by distance with ties broken by
	// insertion order. k <= 0 returns every entry.
	Query(query []float32, k int) (ids []string, distances []float64, err error)

	// Len reports the number of indexed vectors.
	Len() int

	// MarshalBinary serializes the index into a byte slice.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary reconstructs the index from a serialized byte slice.
	UnmarshalBinary(data []byte) error
}

// Kind names an index implementation.
type Kind string

const (
	// KindBrute scans every vector.
	KindBrute Kind = "brute"
	// KindCover prunes with a vantage-point tree.
	KindCover Kind = "cover"
)
