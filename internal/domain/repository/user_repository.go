// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"userapi/internal/domain/entity"
	"userapi/internal/errors"
)

// ErrNilUser is returned when a nil user is handed to a write operation.
var ErrNilUser = errors.New("user must not be nil")

// UserRepository defines the standard operations for user storage.
// The application layer will depend on this interface, not the concrete implementation.
//
// Not-found outcomes are reported through boolean results, never errors.
type UserRepository interface {
	// GetAll returns a snapshot of every stored user, in no particular order.
	GetAll(ctx context.Context) []entity.User

	// Find returns a snapshot of the users whose birth date lies strictly inside the range.
	Find(ctx context.Context, filter entity.BirthDateRange) []entity.User

	// FindByID retrieves a single user by its identifier.
	FindByID(ctx context.Context, id int64) (entity.User, bool)

	// Create assigns a fresh identifier to user, stores it and returns the stored copy.
	// Any identifier already set on user is ignored.
	Create(ctx context.Context, user *entity.User) (entity.User, error)

	// Replace overwrites the user stored under user.ID. It reports false and
	// stores nothing when no such user exists.
	Replace(ctx context.Context, user entity.User) bool

	// Patch merges patch into the user stored under id. It reports false when
	// no such user exists.
	Patch(ctx context.Context, id int64, patch *entity.UserPatch) bool

	// DeleteByID removes the user stored under id and reports whether one was removed.
	DeleteByID(ctx context.Context, id int64) bool

	// Count returns the number of stored users.
	Count(ctx context.Context) int
}
