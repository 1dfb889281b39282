package service

import (
	"context"

	"social_backend/internal/domain/like/model"
	"social_backend/internal/domain/like/repository"
	"social_backend/internal/pkg/bizerr"
	"social_backend/pkg/logger"

	"go.uber.org/zap"
)

// LikeService 点赞服务
type LikeService interface {
	LikePost(ctx context.Context, userID, postID uint) (*model.Like, error)
	UnlikePost(ctx context.Context, userID, postID uint) (*model.Like, error)
	ListPostLikers(ctx context.Context, postID uint, limit, offset int) ([]model.Liker, error)
	ListUserLikedPosts(ctx context.Context, userID uint, limit, offset int) ([]model.LikedPost, error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
	HasLiked(ctx context.Context, userID, postID uint) (bool, error)

	// 批量查询，供帖子列表和动态流组装使用
	CountLikesByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
}

type likeService struct {
	repo repository.LikeRepository
}

func NewLikeService(repo repository.LikeRepository) LikeService {
	return &likeService{repo: repo}
}

// LikePost 点赞，重复点赞由唯一索引识别
func (s *likeService) LikePost(ctx context.Context, userID, postID uint) (*model.Like, error) {
	active, err := s.repo.PostActive(ctx, postID)
	if err != nil {
		return nil, bizerr.Internal("like.LikePost", err)
	}
	if !active {
		return nil, bizerr.NotFound("Post not found")
	}

	like := &model.Like{UserID: userID, PostID: postID}
	if err := s.repo.Create(ctx, like); err != nil {
		if bizerr.IsUniqueViolation(err) {
			return nil, bizerr.AlreadyExists("Already liked this post")
		}
		return nil, bizerr.Internal("like.LikePost", err)
	}

	logger.L().Debug("post liked", zap.Uint("user_id", userID), zap.Uint("post_id", postID))
	return like, nil
}

// UnlikePost 取消点赞，返回被删除的点赞记录
func (s *likeService) UnlikePost(ctx context.Context, userID, postID uint) (*model.Like, error) {
	like, err := s.repo.Delete(ctx, userID, postID)
	if err != nil {
		return nil, bizerr.Internal("like.UnlikePost", err)
	}
	if like == nil {
		return nil, bizerr.NotFound("Post not liked")
	}
	return like, nil
}

func (s *likeService) ListPostLikers(ctx context.Context, postID uint, limit, offset int) ([]model.Liker, error) {
	likers, err := s.repo.ListPostLikers(ctx, postID, limit, offset)
	if err != nil {
		return nil, bizerr.Internal("like.ListPostLikers", err)
	}
	return likers, nil
}

func (s *likeService) ListUserLikedPosts(ctx context.Context, userID uint, limit, offset int) ([]model.LikedPost, error) {
	posts, err := s.repo.ListUserLikedPosts(ctx, userID, limit, offset)
	if err != nil {
		return nil, bizerr.Internal("like.ListUserLikedPosts", err)
	}
	return posts, nil
}

func (s *likeService) CountLikes(ctx context.Context, postID uint) (int64, error) {
	count, err := s.repo.Count(ctx, postID)
	if err != nil {
		return 0, bizerr.Internal("like.CountLikes", err)
	}
	return count, nil
}

func (s *likeService) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	ok, err := s.repo.Exists(ctx, userID, postID)
	if err != nil {
		return false, bizerr.Internal("like.HasLiked", err)
	}
	return ok, nil
}

func (s *likeService) CountLikesByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts, err := s.repo.CountByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, bizerr.Internal("like.CountLikesByPostIDs", err)
	}
	return counts, nil
}

func (s *likeService) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	liked, err := s.repo.LikedPostIDs(ctx, userID, postIDs)
	if err != nil {
		return nil, bizerr.Internal("like.LikedPostIDs", err)
	}
	return liked, nil
}
