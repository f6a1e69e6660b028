// Package sequence provides the identifier generator backed by an atomic counter.
package sequence

import (
	"sync/atomic"

	"userapi/config"
	"userapi/internal/domain/service"
)

// generator implements service.IDGenerator.
type generator struct {
	last atomic.Int64
}

// New creates a generator whose first value is start. Values below 1 are raised to 1.
func New(start int64) service.IDGenerator {
	if start < 1 {
		start = 1
	}

	g := &generator{}
	g.last.Store(start - 1)

	return g
}

// NewFromConfig creates a generator starting at the configured store.idStart.
func NewFromConfig(cfg *config.Config) service.IDGenerator {
	return New(cfg.Store.IDStart)
}

// Next returns the next identifier.
func (g *generator) Next() int64 {
	return g.last.Add(1)
}
