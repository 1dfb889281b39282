package service

import (
	"context"
	"errors"
	"testing"
	"time"

	followModel "social_backend/internal/domain/follow/model"
	"social_backend/internal/domain/user/model"
	"social_backend/internal/pkg/bizerr"
	"social_backend/internal/pkg/config"
	baseModel "social_backend/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetActiveByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, term string, limit, offset int) ([]model.UserSummary, error) {
	args := m.Called(ctx, term, limit, offset)
	return args.Get(0).([]model.UserSummary), args.Error(1)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockFollowStats is a mock of FollowStats
type MockFollowStats struct {
	mock.Mock
}

func (m *MockFollowStats) CountsFor(ctx context.Context, userID uint) (followModel.FollowCounts, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(followModel.FollowCounts), args.Error(1)
}

func (m *MockFollowStats) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

var ctx = context.Background()

func TestRegister(t *testing.T) {
	t.Run("Register success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFollowStats))

		repo.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)

		user, err := svc.Register(ctx, " alice ", "Alice A", "alice@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
	})

	t.Run("Missing credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFollowStats))

		_, err := svc.Register(ctx, "  ", "", "", "secret")

		assert.True(t, bizerr.Is(err, bizerr.KindInvalidInput))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Username taken", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFollowStats))

		repo.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)

		_, err := svc.Register(ctx, "alice", "", "", "secret")

		assert.True(t, bizerr.Is(err, bizerr.KindAlreadyExists))
	})
}

func TestLogin(t *testing.T) {
	config.GlobalConfig.JWT.Secret = "0123456789abcdef0123456789abcdef"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	stored := &model.User{BaseModel: baseModel.BaseModel{ID: 1}, Username: "alice", PasswordHash: string(hash)}

	t.Run("Login success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFollowStats))

		repo.On("GetByUsername", ctx, "alice").Return(stored, nil)

		token, user, err := svc.Login(ctx, "alice", "secret")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFollowStats))

		repo.On("GetByUsername", ctx, "alice").Return(stored, nil)

		_, _, err := svc.Login(ctx, "alice", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFollowStats))

		repo.On("GetByUsername", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Login(ctx, "ghost", "secret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestGetProfile(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bob := &model.User{BaseModel: baseModel.BaseModel{ID: 2, CreatedAt: created}, Username: "bob", FullName: "Bob B"}

	t.Run("Anonymous viewer", func(t *testing.T) {
		repo := new(MockUserRepository)
		follows := new(MockFollowStats)
		svc := NewUserService(repo, follows)

		repo.On("GetActiveByID", ctx, uint(2)).Return(bob, nil)
		follows.On("CountsFor", ctx, uint(2)).Return(followModel.FollowCounts{Following: 1, Followers: 4}, nil)

		profile, err := svc.GetProfile(ctx, 2, nil)

		require.NoError(t, err)
		assert.Equal(t, "bob", profile.Username)
		assert.Equal(t, int64(4), profile.Stats.Followers)
		assert.False(t, profile.IsFollowing)
		follows.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Viewer follows user", func(t *testing.T) {
		repo := new(MockUserRepository)
		follows := new(MockFollowStats)
		svc := NewUserService(repo, follows)

		viewer := uint(1)
		repo.On("GetActiveByID", ctx, uint(2)).Return(bob, nil)
		follows.On("CountsFor", ctx, uint(2)).Return(followModel.FollowCounts{}, nil)
		follows.On("IsFollowing", ctx, uint(1), uint(2)).Return(true, nil)

		profile, err := svc.GetProfile(ctx, 2, &viewer)

		require.NoError(t, err)
		assert.True(t, profile.IsFollowing)
	})

	t.Run("Deleted or missing user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewUserService(repo, new(MockFollowStats))

		repo.On("GetActiveByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetProfile(ctx, 9, nil)

		assert.True(t, bizerr.Is(err, bizerr.KindNotFound))
	})
}

func TestSearchUsers(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockFollowStats))

	_, err := svc.SearchUsers(ctx, "   ", 20, 0)
	assert.True(t, bizerr.Is(err, bizerr.KindInvalidInput))

	repo.On("Search", ctx, "al", 20, 0).Return([]model.UserSummary{{ID: 1, Username: "alice"}}, nil)
	users, err := svc.SearchUsers(ctx, " al ", 20, 0)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeleteAccount(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, new(MockFollowStats))

	repo.On("SoftDelete", ctx, uint(1)).Return(true, nil).Once()
	repo.On("SoftDelete", ctx, uint(1)).Return(false, nil).Once()
	repo.On("SoftDelete", ctx, uint(2)).Return(false, errors.New("db down"))

	assert.NoError(t, svc.DeleteAccount(ctx, 1))
	assert.True(t, bizerr.Is(svc.DeleteAccount(ctx, 1), bizerr.KindNotFound))
	assert.True(t, bizerr.Is(svc.DeleteAccount(ctx, 2), bizerr.KindInternal))
}
