package store

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// IndexKind selects the SQLiteStore query backend.
type IndexKind string

const (
	// IndexBrute ranks rows with an in-memory brute-force index.
	IndexBrute IndexKind = "brute"
	// IndexCover ranks rows with an in-memory vantage-point tree.
	IndexCover IndexKind = "cover"
	// IndexSQL ranks rows inside SQLite with vec_l2.
	IndexSQL IndexKind = "sql"
)

// ParseIndexKind validates an index kind name.
func ParseIndexKind(name string) (IndexKind, error) {
	switch k := IndexKind(name); k {
	case IndexBrute, IndexCover, IndexSQL:
		return k, nil
	case "":
		return IndexBrute, nil
	}
	return "", fmt.Errorf("store: unknown index kind %q", name)
}

type options struct {
	logger     *zap.Logger
	registerer prometheus.Registerer
	kind       IndexKind
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop(), kind: IndexBrute}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures a store.
type Option func(*options)

// WithLogger sets the logger used for seed and query events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers store metrics with r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithIndexKind selects the query backend of a SQLiteStore.
func WithIndexKind(k IndexKind) Option {
	return func(o *options) { o.kind = k }
}
