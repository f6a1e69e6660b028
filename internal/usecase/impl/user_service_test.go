package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	mockRepo "userapi/internal/mocks/repository"
	"userapi/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   logger,
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_ListUsers_Unbounded(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	users := []entity.User{{ID: 1, Name: "Alice"}}

	fx.userRepo.EXPECT().GetAll(ctx).Return(users)

	assert.Equal(t, users, fx.service.ListUsers(ctx, usecase.ListUsersInput{}))
}

func TestUserService_ListUsers_Filtered(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	from := civil.Date{Year: 1987, Month: 1, Day: 1}
	users := []entity.User{{ID: 1, Name: "Alice"}}

	fx.userRepo.EXPECT().
		Find(ctx, entity.BirthDateRange{From: entity.Some(from)}).
		Return(users)

	got := fx.service.ListUsers(ctx, usecase.ListUsersInput{From: entity.Some(from)})
	assert.Equal(t, users, got)
}

func TestUserService_GetUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(entity.User{ID: 1}, true)
	fx.userRepo.EXPECT().FindByID(ctx, int64(2)).Return(entity.User{}, false)

	u, ok := fx.service.GetUser(ctx, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(1), u.ID)

	_, ok = fx.service.GetUser(ctx, 2)
	assert.False(t, ok)
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	in := &entity.User{Name: "Alice"}

	fx.userRepo.EXPECT().Create(ctx, in).Return(entity.User{ID: 1, Name: "Alice"}, nil)

	created, err := fx.service.CreateUser(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestUserService_CreateUser_NilIsInvalidArgument(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateUser(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestUserService_CreateUser_RepositoryRejectsNil(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(entity.User{}, errors.WithStack(repository.ErrNilUser))

	_, err := fx.service.CreateUser(ctx, &entity.User{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestUserService_ReplaceUser(t *testing.T) {
	tests := []struct {
		name      string
		user      *entity.User
		setup     func(m *mockRepo.MockUserRepository)
		want      bool
		wantErrIs error
	}{
		{
			name:      "nil user",
			user:      nil,
			wantErrIs: domainerrors.ErrInvalidArgument,
		},
		{
			name:      "unset id",
			user:      &entity.User{Name: "Alice"},
			wantErrIs: domainerrors.ErrInvalidArgument,
		},
		{
			name: "replaced",
			user: &entity.User{ID: 1, Name: "Alice"},
			setup: func(m *mockRepo.MockUserRepository) {
				m.EXPECT().Replace(mock.Anything, entity.User{ID: 1, Name: "Alice"}).Return(true)
			},
			want: true,
		},
		{
			name: "missing",
			user: &entity.User{ID: 9, Name: "Ghost"},
			setup: func(m *mockRepo.MockUserRepository) {
				m.EXPECT().Replace(mock.Anything, entity.User{ID: 9, Name: "Ghost"}).Return(false)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			if tt.setup != nil {
				tt.setup(fx.userRepo)
			}

			got, err := fx.service.ReplaceUser(context.Background(), tt.user)
			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErrIs))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserService_PatchUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	patch := &entity.UserPatch{Name: entity.Some("Alicia")}

	fx.userRepo.EXPECT().Patch(ctx, int64(1), patch).Return(true)
	fx.userRepo.EXPECT().Patch(ctx, int64(2), patch).Return(false)

	ok, err := fx.service.PatchUser(ctx, 1, patch)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fx.service.PatchUser(ctx, 2, patch)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = fx.service.PatchUser(ctx, 1, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))
}

func TestUserService_DeleteAndCount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().DeleteByID(ctx, int64(1)).Return(true)
	fx.userRepo.EXPECT().DeleteByID(ctx, int64(2)).Return(false)
	fx.userRepo.EXPECT().Count(ctx).Return(3)

	assert.True(t, fx.service.DeleteUser(ctx, 1))
	assert.False(t, fx.service.DeleteUser(ctx, 2))
	assert.Equal(t, 3, fx.service.CountUsers(ctx))
}
