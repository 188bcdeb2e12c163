package store

import (
	"context"
	"database/sql"
)

const statesTable = "states"

const statesSchema = `
CREATE TABLE IF NOT EXISTS states (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    meta TEXT,
    embedding BLOB NOT NULL
);
`

const vectorStorageSchema = `
CREATE TABLE IF NOT EXISTS vector_storage (
    shadow_table_name TEXT NOT NULL,
    kind TEXT NOT NULL,
    "index" BLOB,
    PRIMARY KEY (shadow_table_name, kind)
);
`

// inserts made outside this process still drop the persisted index
const statesInsertTrigger = `
CREATE TRIGGER IF NOT EXISTS trg_vec_states_ins AFTER INSERT ON states
BEGIN
    DELETE FROM vector_storage WHERE shadow_table_name = 'states';
END;
`

// EnsureSchema creates the states table, the vector_storage table and the
// invalidation trigger if they do not already exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{statesSchema, vectorStorageSchema, statesInsertTrigger} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
