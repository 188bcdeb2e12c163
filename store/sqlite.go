package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/viant/conduit/index"
	"github.com/viant/conduit/index/bruteforce"
	"github.com/viant/conduit/index/cover"
	"github.com/viant/conduit/vector"
)

// SQLiteStore is a Store backed by a SQLite database. The caller owns db.
type SQLiteStore struct {
	db      *sql.DB
	opts    *options
	metrics *metrics

	mu     sync.Mutex
	idx    index.Index
	states map[string]*State
}

// NewSQLiteStore creates a SQLite-backed Store and ensures its schema exists.
func NewSQLiteStore(ctx context.Context, db *sql.DB, opts ...Option) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	o := newOptions(opts)
	if _, err := ParseIndexKind(string(o.kind)); err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}
	return &SQLiteStore{db: db, opts: o, metrics: newMetrics(o.registerer)}, nil
}

// Kind returns the query backend.
func (s *SQLiteStore) Kind() IndexKind { return s.opts.kind }

// Seed inserts a new state and invalidates the cached index.
func (s *SQLiteStore) Seed(ctx context.Context, name string, phi, tau, rho, entropy float64, description string) (*State, error) {
	state, err := NewState(uuid.NewString(), name, phi, tau, rho, entropy, description)
	if err != nil {
		return nil, err
	}
	meta, err := json.Marshal(state.Metadata)
	if err != nil {
		return nil, fmt.Errorf("store: encode metadata: %w", err)
	}
	emb := vector.EncodeVector(state.Vector)
	if _, err := s.db.ExecContext(ctx, `INSERT INTO states(id, name, description, meta, embedding) VALUES(?, ?, ?, ?, ?)`,
		state.ID, state.Name, state.Description, string(meta), emb); err != nil {
		return nil, fmt.Errorf("store: insert %q: %w", name, err)
	}
	s.invalidate()
	s.metrics.seeds.Inc()
	s.opts.logger.Info("seeded state",
		zap.String("name", state.Name),
		zap.String("id", state.ID),
		zap.Float64("density", state.Metadata[MetaDensity]))
	return state, nil
}

// Count returns the number of stored states.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM states`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

// FindNeighbors encodes the coordinates and queries the nearest states.
func (s *SQLiteStore) FindNeighbors(ctx context.Context, phi, tau, rho, entropy float64, k int) ([]Neighbor, error) {
	return findNeighbors(ctx, s, phi, tau, rho, entropy, k)
}

// QueryVector returns up to k states nearest to v.
func (s *SQLiteStore) QueryVector(ctx context.Context, v vector.Vector, k int) ([]Neighbor, error) {
	if k <= 0 {
		return []Neighbor{}, nil
	}
	started := time.Now()
	defer s.metrics.observeQuery(string(s.opts.kind), started)
	var (
		out []Neighbor
		err error
	)
	if s.opts.kind == IndexSQL {
		out, err = s.querySQL(ctx, v, k)
	} else {
		out, err = s.queryIndex(ctx, v, k)
	}
	if err != nil {
		return nil, err
	}
	s.opts.logger.Debug("queried neighbors",
		zap.String("backend", string(s.opts.kind)),
		zap.Int("k", k),
		zap.Int("results", len(out)),
		zap.Duration("elapsed", time.Since(started)))
	return out, nil
}

func (s *SQLiteStore) querySQL(ctx context.Context, v vector.Vector, k int) ([]Neighbor, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, description, meta, vec_l2(embedding, ?) AS distance
FROM states ORDER BY distance, rowid LIMIT ?`, vector.EncodeVector(v), k)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()
	out := make([]Neighbor, 0, k)
	for rows.Next() {
		var (
			n    Neighbor
			desc sql.NullString
			meta sql.NullString
		)
		if err := rows.Scan(&n.Name, &desc, &meta, &n.Distance); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		n.Description = desc.String
		if n.Metadata, err = decodeMetadata(meta.String); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) queryIndex(ctx context.Context, v vector.Vector, k int) ([]Neighbor, error) {
	idx, states, err := s.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}
	ids, dists, err := idx.Query(v.Embedding(), k)
	if err != nil {
		return nil, fmt.Errorf("store: index query: %w", err)
	}
	out := make([]Neighbor, 0, len(ids))
	for i, id := range ids {
		state, ok := states[id]
		if !ok {
			return nil, fmt.Errorf("store: index references unknown state %s", id)
		}
		out = append(out, neighborOf(state, dists[i]))
	}
	return out, nil
}

// Reindex drops the cached and persisted index and rebuilds it. It returns
// the number of indexed states.
func (s *SQLiteStore) Reindex(ctx context.Context) (int, error) {
	if s.opts.kind == IndexSQL {
		return s.Count(ctx)
	}
	s.invalidate()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM vector_storage WHERE shadow_table_name = ? AND kind = ?`,
		statesTable, string(s.opts.kind)); err != nil {
		return 0, fmt.Errorf("store: drop persisted index: %w", err)
	}
	idx, _, err := s.ensureIndex(ctx)
	if err != nil {
		return 0, err
	}
	return idx.Len(), nil
}

// States lists all stored states in insertion order.
func (s *SQLiteStore) States(ctx context.Context) ([]State, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, meta, embedding FROM states ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()
	var out []State
	for rows.Next() {
		var (
			st   State
			desc sql.NullString
			meta sql.NullString
			emb  []byte
		)
		if err := rows.Scan(&st.ID, &st.Name, &desc, &meta, &emb); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		st.Description = desc.String
		if st.Metadata, err = decodeMetadata(meta.String); err != nil {
			return nil, err
		}
		stored, err := vector.DecodeVector(emb)
		if err != nil {
			return nil, fmt.Errorf("store: state %s: %w", st.ID, err)
		}
		st.Vector = vectorOf(st.Metadata, stored)
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) invalidate() {
	s.mu.Lock()
	s.idx, s.states = nil, nil
	s.mu.Unlock()
}

// ensureIndex returns the cached index, loading it from vector_storage or
// building it from the states table when absent.
func (s *SQLiteStore) ensureIndex(ctx context.Context) (index.Index, map[string]*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx != nil {
		return s.idx, s.states, nil
	}
	list, err := s.States(ctx)
	if err != nil {
		return nil, nil, err
	}
	states := make(map[string]*State, len(list))
	for i := range list {
		states[list[i].ID] = &list[i]
	}
	idx := newIndex(s.opts.kind)
	loaded, err := s.loadPersisted(ctx, idx)
	if err != nil {
		s.opts.logger.Warn("discarding persisted index", zap.Error(err))
		loaded = false
	}
	if !loaded || idx.Len() != len(list) {
		ids := make([]string, len(list))
		vecs := make([][]float32, len(list))
		for i := range list {
			ids[i] = list[i].ID
			vecs[i] = list[i].Vector.Embedding()
		}
		if err := idx.Build(ids, vecs); err != nil {
			return nil, nil, fmt.Errorf("store: build index: %w", err)
		}
		if err := s.persist(ctx, idx); err != nil {
			return nil, nil, err
		}
		s.opts.logger.Debug("built index", zap.String("kind", string(s.opts.kind)), zap.Int("size", idx.Len()))
	}
	s.idx, s.states = idx, states
	return idx, states, nil
}

func (s *SQLiteStore) loadPersisted(ctx context.Context, idx index.Index) (bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, `SELECT "index" FROM vector_storage WHERE shadow_table_name = ? AND kind = ?`,
		statesTable, string(s.opts.kind)).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load index: %w", err)
	}
	data, err := decompress(blob)
	if err != nil {
		return false, fmt.Errorf("store: decompress index: %w", err)
	}
	if err := idx.UnmarshalBinary(data); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLiteStore) persist(ctx context.Context, idx index.Index) error {
	data, err := idx.MarshalBinary()
	if err != nil {
		return fmt.Errorf("store: marshal index: %w", err)
	}
	blob, err := compress(data)
	if err != nil {
		return fmt.Errorf("store: compress index: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO vector_storage(shadow_table_name, kind, "index") VALUES(?, ?, ?)`,
		statesTable, string(s.opts.kind), blob); err != nil {
		return fmt.Errorf("store: persist index: %w", err)
	}
	return nil
}

func newIndex(kind IndexKind) index.Index {
	if kind == IndexCover {
		return &cover.Index{}
	}
	return &bruteforce.Index{}
}

func decodeMetadata(raw string) (map[string]float64, error) {
	meta := map[string]float64{}
	if raw == "" {
		return meta, nil
	}
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, fmt.Errorf("store: decode metadata: %w", err)
	}
	return meta, nil
}

// vectorOf prefers the float64 coordinates kept in metadata over the
// float32 embedding.
func vectorOf(meta map[string]float64, stored vector.Vector) vector.Vector {
	v := stored
	for i, key := range []string{MetaPhi, MetaTau, MetaRho, MetaEntropy} {
		if x, ok := meta[key]; ok {
			v[i] = x
		}
	}
	return v
}

var _ Store = (*SQLiteStore)(nil)
