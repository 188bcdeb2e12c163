package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/viant/conduit/index"
	"github.com/viant/conduit/index/bruteforce"
	"github.com/viant/conduit/vector"
)

const memoryBackend = "memory"

// MemoryStore is a process-local Store backed by a brute-force index.
type MemoryStore struct {
	opts    *options
	metrics *metrics

	mu       sync.RWMutex
	order    []*State
	byID     map[string]*State
	index    index.Index
	newIndex func() index.Index
}

// NewMemoryStore creates an empty MemoryStore. WithIndexKind is ignored.
func NewMemoryStore(opts ...Option) *MemoryStore {
	o := newOptions(opts)
	return &MemoryStore{
		opts:     o,
		metrics:  newMetrics(o.registerer),
		byID:     map[string]*State{},
		index:    newBruteIndex(),
		newIndex: newBruteIndex,
	}
}

func newBruteIndex() index.Index { return &bruteforce.Index{} }

// Seed inserts a new state.
func (m *MemoryStore) Seed(_ context.Context, name string, phi, tau, rho, entropy float64, description string) (*State, error) {
	state, err := NewState(uuid.NewString(), name, phi, tau, rho, entropy, description)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order := append(m.order[:len(m.order):len(m.order)], state)
	ids := make([]string, len(order))
	vecs := make([][]float32, len(order))
	for i, s := range order {
		ids[i] = s.ID
		vecs[i] = s.Vector.Embedding()
	}
	idx := m.newIndex()
	if err := idx.Build(ids, vecs); err != nil {
		return nil, fmt.Errorf("store: build index: %w", err)
	}
	m.order = order
	m.byID[state.ID] = state
	m.index = idx
	m.metrics.seeds.Inc()
	m.opts.logger.Info("seeded state", zap.String("name", state.Name), zap.String("id", state.ID))
	return state, nil
}

// Count returns the number of stored states.
func (m *MemoryStore) Count(context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order), nil
}

// FindNeighbors encodes the coordinates and queries the nearest states.
func (m *MemoryStore) FindNeighbors(ctx context.Context, phi, tau, rho, entropy float64, k int) ([]Neighbor, error) {
	return findNeighbors(ctx, m, phi, tau, rho, entropy, k)
}

// QueryVector returns up to k states nearest to v.
func (m *MemoryStore) QueryVector(_ context.Context, v vector.Vector, k int) ([]Neighbor, error) {
	if k <= 0 {
		return []Neighbor{}, nil
	}
	defer m.metrics.observeQuery(memoryBackend, time.Now())
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids, dists, err := m.index.Query(v.Embedding(), k)
	if err != nil {
		return nil, fmt.Errorf("store: index query: %w", err)
	}
	out := make([]Neighbor, 0, len(ids))
	for i, id := range ids {
		out = append(out, neighborOf(m.byID[id], dists[i]))
	}
	return out, nil
}

var _ Store = (*MemoryStore)(nil)
