// Package cover provides a vantage-point tree index for Euclidean kNN. It
// prunes subtrees with the triangle inequality and persists using the
// brute-force binary format behind a short magic prefix.
package cover
