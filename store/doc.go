// Package store persists labelled structural states and answers Euclidean
// nearest-neighbor queries over their indexed coordinates.
//
// SQLiteStore keeps rows in a SQLite "states" table and ranks them with one
// of three backends: a brute-force index, a vantage-point tree, or the vec_l2
// SQL function. Built indexes are cached in memory and persisted,
// zstd-compressed, in the vector_storage table until the next Seed.
// MemoryStore is a process-local stand-in with the same contract.
package store
