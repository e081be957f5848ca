// Package cache keeps recently built graphs keyed by the content fingerprint of their inputs.
// Graphs are immutable, so a hit can be shared by any number of interpreters. A changed
// catalog yields a new fingerprint and a freshly built graph; nothing is patched in place.
package cache

import (
	"sync"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
)

// DefaultSize is used when New is given a non-positive size.
const DefaultSize = 16

// GraphCache is a bounded LRU of built graphs. Safe for concurrent use.
type GraphCache struct {
	mu     sync.Mutex
	graphs *lru.Cache
	logger *zap.Logger
	hits   uint64
	misses uint64
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// New creates a GraphCache holding at most size graphs.
func New(size int, logger *zap.Logger) (*GraphCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	graphs, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "create graph cache")
	}
	return &GraphCache{graphs: graphs, logger: logger}, nil
}

// Request names the inputs of one graph.
type Request struct {
	Items        []primitives.CatalogItem
	Dimensions   []primitives.Dimension
	Preselection map[string]string
	// Scope separates graphs built from equal inputs with different options, e.g. a
	// different classifier or graph id.
	Scope string
}

// Get returns the cached graph for req or builds, stores and returns a new one.
// opts are passed to core.Build on a miss; a preselection in req is added to them and
// takes precedence over one set through opts. Either way the preselection is part of
// the cache key.
func (c *GraphCache) Get(req Request, opts ...core.BuildOption) (*core.Graph, error) {
	pre := req.Preselection
	if pre == nil {
		pre, _ = core.PreselectionOf(opts...)
	}
	fp, err := primitives.Fingerprint(req.Items, req.Dimensions, pre)
	if err != nil {
		return nil, errors.Wrap(err, "graph cache key")
	}
	key := req.Scope + "/" + fp

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.graphs.Get(key); ok {
		c.hits++
		c.logger.Debug("graph cache hit", zap.String("fingerprint", fp))
		return v.(*core.Graph), nil
	}
	c.misses++

	if req.Preselection != nil {
		opts = append(append([]core.BuildOption(nil), opts...), core.WithPreselection(req.Preselection))
	}
	g := core.Build(req.Items, req.Dimensions, opts...)
	if evicted := c.graphs.Add(key, g); evicted {
		c.logger.Debug("graph cache evicted oldest entry")
	}
	c.logger.Debug("graph cache miss", zap.String("fingerprint", fp), zap.Int("states", g.Len()))
	return g, nil
}

// Purge drops every cached graph.
func (c *GraphCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.graphs.Purge()
}

// Stats returns hit/miss counters and the current size.
func (c *GraphCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Len: c.graphs.Len()}
}
