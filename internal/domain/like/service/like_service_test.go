package service

import (
	"context"
	"errors"
	"testing"

	"social_backend/internal/domain/like/model"
	"social_backend/internal/pkg/bizerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockLikeRepository is a mock of LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, postID uint) (*model.Like, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockLikeRepository) PostActive(ctx context.Context, postID uint) (bool, error) {
	args := m.Called(ctx, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) ListPostLikers(ctx context.Context, postID uint, limit, offset int) ([]model.Liker, error) {
	args := m.Called(ctx, postID, limit, offset)
	return args.Get(0).([]model.Liker), args.Error(1)
}

func (m *MockLikeRepository) ListUserLikedPosts(ctx context.Context, userID uint, limit, offset int) ([]model.LikedPost, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]model.LikedPost), args.Error(1)
}

func (m *MockLikeRepository) Count(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]int64), args.Error(1)
}

func (m *MockLikeRepository) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	args := m.Called(ctx, userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]bool), args.Error(1)
}

var ctx = context.Background()

func TestLikePost(t *testing.T) {
	t.Run("Like success", func(t *testing.T) {
		repo := new(MockLikeRepository)
		svc := NewLikeService(repo)

		repo.On("PostActive", ctx, uint(10)).Return(true, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*model.Like")).Return(nil)

		like, err := svc.LikePost(ctx, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, uint(1), like.UserID)
		assert.Equal(t, uint(10), like.PostID)
	})

	t.Run("Post missing or deleted", func(t *testing.T) {
		repo := new(MockLikeRepository)
		svc := NewLikeService(repo)

		repo.On("PostActive", ctx, uint(10)).Return(false, nil)

		_, err := svc.LikePost(ctx, 1, 10)

		assert.True(t, bizerr.Is(err, bizerr.KindNotFound))
		assert.EqualError(t, err, "Post not found")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Second like is AlreadyExists", func(t *testing.T) {
		repo := new(MockLikeRepository)
		svc := NewLikeService(repo)

		repo.On("PostActive", ctx, uint(10)).Return(true, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*model.Like")).Return(nil).Once()
		repo.On("Create", ctx, mock.AnythingOfType("*model.Like")).Return(gorm.ErrDuplicatedKey).Once()

		_, err := svc.LikePost(ctx, 1, 10)
		require.NoError(t, err)

		_, err = svc.LikePost(ctx, 1, 10)
		assert.True(t, bizerr.Is(err, bizerr.KindAlreadyExists))
		assert.EqualError(t, err, "Already liked this post")
	})
}

func TestUnlikePost(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)

	repo.On("Delete", ctx, uint(1), uint(10)).Return(&model.Like{ID: 3, UserID: 1, PostID: 10}, nil).Once()
	repo.On("Delete", ctx, uint(1), uint(10)).Return(nil, nil).Once()

	like, err := svc.UnlikePost(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, uint(3), like.ID)

	_, err = svc.UnlikePost(ctx, 1, 10)
	assert.True(t, bizerr.Is(err, bizerr.KindNotFound))
	assert.EqualError(t, err, "Post not liked")
}

func TestCountLikes(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)

	repo.On("Count", ctx, uint(10)).Return(int64(2), nil)
	repo.On("Count", ctx, uint(11)).Return(int64(0), errors.New("timeout"))

	count, err := svc.CountLikes(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = svc.CountLikes(ctx, 11)
	assert.True(t, bizerr.Is(err, bizerr.KindInternal))
}

func TestBatchQueries(t *testing.T) {
	repo := new(MockLikeRepository)
	svc := NewLikeService(repo)

	ids := []uint{10, 11, 12}
	repo.On("CountByPostIDs", ctx, ids).Return(map[uint]int64{10: 2, 12: 1}, nil)
	repo.On("LikedPostIDs", ctx, uint(1), ids).Return(map[uint]bool{12: true}, nil)

	counts, err := svc.CountLikesByPostIDs(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[10])
	assert.Zero(t, counts[11])

	liked, err := svc.LikedPostIDs(ctx, 1, ids)
	require.NoError(t, err)
	assert.True(t, liked[12])
	assert.False(t, liked[10])
}
