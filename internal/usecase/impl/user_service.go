// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns all users, filtered when either bound of the input is set.
func (srv *userService) ListUsers(ctx context.Context, input usecase.ListUsersInput) []entity.User {
	filter := entity.BirthDateRange{From: input.From, To: input.To}
	if filter.IsUnbounded() {
		return srv.userRepo.GetAll(ctx)
	}

	users := srv.userRepo.Find(ctx, filter)
	srv.log(ctx).Debug("Filtered users by birth date",
		slog.Bool("from", filter.From.IsSet()),
		slog.Bool("to", filter.To.IsSet()),
		slog.Int("count", len(users)),
	)

	return users
}

// GetUser looks a user up by identifier.
func (srv *userService) GetUser(ctx context.Context, id int64) (entity.User, bool) {
	return srv.userRepo.FindByID(ctx, id)
}

// CreateUser stores user under a freshly assigned identifier.
func (srv *userService) CreateUser(ctx context.Context, user *entity.User) (entity.User, error) {
	if user == nil {
		return entity.User{}, domainerrors.ErrInvalidArgument.WrapMessage("user is required")
	}

	created, err := srv.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrNilUser) {
			return entity.User{}, domainerrors.ErrInvalidArgument.WrapMessage(err.Error())
		}

		return entity.User{}, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", created.ID))

	return created, nil
}

// ReplaceUser overwrites the user stored under user.ID.
func (srv *userService) ReplaceUser(ctx context.Context, user *entity.User) (bool, error) {
	if user == nil {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("user is required")
	}
	if user.ID == 0 {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("user id is required for replace")
	}

	replaced := srv.userRepo.Replace(ctx, *user)
	srv.log(ctx).Info("User replace", slog.Int64("userID", user.ID), slog.Bool("replaced", replaced))

	return replaced, nil
}

// PatchUser merges patch into the user stored under id.
func (srv *userService) PatchUser(ctx context.Context, id int64, patch *entity.UserPatch) (bool, error) {
	if patch == nil {
		return false, domainerrors.ErrInvalidArgument.WrapMessage("patch is required")
	}

	patched := srv.userRepo.Patch(ctx, id, patch)
	srv.log(ctx).Info("User patch", slog.Int64("userID", id), slog.Bool("patched", patched))

	return patched, nil
}

// DeleteUser removes the user stored under id.
func (srv *userService) DeleteUser(ctx context.Context, id int64) bool {
	deleted := srv.userRepo.DeleteByID(ctx, id)
	srv.log(ctx).Info("User delete", slog.Int64("userID", id), slog.Bool("deleted", deleted))

	return deleted
}

// CountUsers returns the number of stored users.
func (srv *userService) CountUsers(ctx context.Context) int {
	return srv.userRepo.Count(ctx)
}
