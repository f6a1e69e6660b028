// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// IDGenerator hands out user identifiers.
// This abstracts the counter primitive, keeping the domain pure.
type IDGenerator interface {
	// Next returns a value strictly greater than every value returned before.
	// Concurrent callers never receive the same value.
	Next() int64
}
