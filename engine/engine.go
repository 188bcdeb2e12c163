package engine

import (
	"database/sql"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

var registerOnce sync.Once

// Open opens a SQLite database using the modernc.org/sqlite driver with the
// vector functions registered.
//
// For file-based databases, pass a path like "./conduit.sqlite". For
// in-memory databases, pass ":memory:"; the pool is then pinned to a single
// connection so every statement sees the same database.
func Open(dsn string) (*sql.DB, error) {
	registerOnce.Do(func() { _ = RegisterVectorFunctions(nil) })
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if isMemory(dsn) {
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

func isMemory(dsn string) bool {
	return dsn == MemoryDSN || strings.Contains(dsn, "mode=memory")
}
