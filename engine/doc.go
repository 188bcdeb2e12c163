// Package engine opens modernc.org/sqlite connections for the state store and
// registers the vec_l2 scalar function so neighbor queries can rank rows by
// Euclidean distance inside SQL.
package engine
