package engine

import "testing"

// TestOpenInMemory verifies that we can open an in-memory SQLite database
// and that the pinned connection keeps tables visible across statements.
func TestOpenInMemory(t *testing.T) {
	db, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE t(x INTEGER)"); err != nil {
		t.Fatalf("CREATE TABLE failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO t(x) VALUES (1),(2),(3)"); err != nil {
		t.Fatalf("INSERT failed: %v", err)
	}
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM t").Scan(&n); err != nil {
		t.Fatalf("COUNT failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestIsMemory(t *testing.T) {
	for dsn, want := range map[string]bool{
		":memory:":                        true,
		"file:x?mode=memory&cache=shared": true,
		"conduit.sqlite":                  false,
	} {
		if got := isMemory(dsn); got != want {
			t.Fatalf("isMemory(%q) = %v, want %v", dsn, got, want)
		}
	}
}
