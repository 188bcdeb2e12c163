// Package index defines a minimal abstraction for vector indexes that can be
// built from embeddings, queried for Euclidean kNN, and serialized for
// persistence. Implementations in this module include a brute-force baseline
// and a vantage-point tree.
package index
