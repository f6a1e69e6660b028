// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userapi/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// --- Input DTOs ---

// ListUsersInput narrows a listing to users born strictly between From and To.
// Either bound may be absent.
type ListUsersInput struct {
	From entity.Optional[civil.Date]
	To   entity.Optional[civil.Date]
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// ListUsers returns every user, or only those inside the birth-date range when a bound is set.
	ListUsers(ctx context.Context, input ListUsersInput) []entity.User

	// GetUser returns the user stored under id, if any.
	GetUser(ctx context.Context, id int64) (entity.User, bool)

	// CreateUser stores a new user under a fresh identifier.
	CreateUser(ctx context.Context, user *entity.User) (entity.User, error)

	// ReplaceUser overwrites an existing user entirely. It reports false when user.ID is unknown.
	ReplaceUser(ctx context.Context, user *entity.User) (bool, error)

	// PatchUser applies a sparse update. It reports false when id is unknown.
	PatchUser(ctx context.Context, id int64, patch *entity.UserPatch) (bool, error)

	// DeleteUser removes a user and reports whether one was removed.
	DeleteUser(ctx context.Context, id int64) bool

	// CountUsers returns the number of stored users.
	CountUsers(ctx context.Context) int
}
