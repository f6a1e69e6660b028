// Package memory contains the in-process implementation of the persistence layer.
// Nothing stored here survives a restart.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"userapi/internal/domain/entity"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/errors"

	"go.uber.org/fx"
)

// UserRepositoryParams holds dependencies for the memory user repository, injected by Fx.
type UserRepositoryParams struct {
	fx.In

	IDGenerator service.IDGenerator
	Patcher     service.UserPatcher
	Logger      *slog.Logger
}

// userRepository implements repository.UserRepository on a map guarded by a RWMutex.
// Readers share the lock; every write holds it exclusively for the whole operation.
type userRepository struct {
	mu      sync.RWMutex
	users   map[int64]entity.User
	ids     service.IDGenerator
	patcher service.UserPatcher
	logger  *slog.Logger
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(params UserRepositoryParams) repository.UserRepository {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &userRepository{
		users:   make(map[int64]entity.User),
		ids:     params.IDGenerator,
		patcher: params.Patcher,
		logger:  logger,
	}
}

// GetAll returns a copy of every stored user.
func (repo *userRepository) GetAll(_ context.Context) []entity.User {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]entity.User, 0, len(repo.users))
	for _, u := range repo.users {
		out = append(out, u.Clone())
	}

	return out
}

// Find returns a copy of every stored user whose birth date lies strictly inside filter.
func (repo *userRepository) Find(_ context.Context, filter entity.BirthDateRange) []entity.User {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]entity.User, 0)
	for _, u := range repo.users {
		if filter.Contains(u.BirthDate) {
			out = append(out, u.Clone())
		}
	}

	return out
}

// FindByID retrieves a copy of the user stored under id.
func (repo *userRepository) FindByID(_ context.Context, id int64) (entity.User, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	u, ok := repo.users[id]
	if !ok {
		return entity.User{}, false
	}

	return u.Clone(), true
}

// Create stores user under a freshly generated identifier. The identifier is
// also written back to user.
func (repo *userRepository) Create(_ context.Context, user *entity.User) (entity.User, error) {
	if user == nil {
		return entity.User{}, errors.WithStack(repository.ErrNilUser)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	user.ID = repo.ids.Next()
	stored := user.Clone()
	repo.users[stored.ID] = stored

	repo.logger.Debug("User stored", slog.Int64("id", stored.ID))

	return stored.Clone(), nil
}

// Replace overwrites the user stored under user.ID when one exists.
func (repo *userRepository) Replace(_ context.Context, user entity.User) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[user.ID]; !ok {
		return false
	}
	repo.users[user.ID] = user.Clone()

	return true
}

// Patch merges patch into the user stored under id.
func (repo *userRepository) Patch(_ context.Context, id int64, patch *entity.UserPatch) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	u, ok := repo.users[id]
	if !ok {
		return false
	}

	repo.patcher.Patch(&u, patch)
	u.ID = id
	repo.users[id] = u

	return true
}

// DeleteByID removes the user stored under id.
func (repo *userRepository) DeleteByID(_ context.Context, id int64) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[id]; !ok {
		return false
	}
	delete(repo.users, id)

	return true
}

// Count returns the number of stored users.
func (repo *userRepository) Count(_ context.Context) int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.users)
}
