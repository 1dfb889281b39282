package service

import (
	"context"

	"social_backend/internal/domain/follow/model"
	"social_backend/internal/domain/follow/repository"
	"social_backend/internal/pkg/bizerr"
	"social_backend/pkg/logger"

	"go.uber.org/zap"
)

// FollowService 关注关系服务
type FollowService interface {
	Follow(ctx context.Context, followerID, targetID uint) (*model.Follow, error)
	Unfollow(ctx context.Context, followerID, targetID uint) (*model.Follow, error)
	ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error)
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error)
	CountsFor(ctx context.Context, userID uint) (model.FollowCounts, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
}

type followService struct {
	repo repository.FollowRepository
}

func NewFollowService(repo repository.FollowRepository) FollowService {
	return &followService{repo: repo}
}

// Follow 关注用户
// 不做"先查后插"：直接插入，由唯一索引识别重复关注，避免并发请求同时通过检查
func (s *followService) Follow(ctx context.Context, followerID, targetID uint) (*model.Follow, error) {
	if followerID == targetID {
		return nil, bizerr.SelfReference("Cannot follow yourself")
	}

	active, err := s.repo.UserActive(ctx, targetID)
	if err != nil {
		return nil, bizerr.Internal("follow.Follow", err)
	}
	if !active {
		return nil, bizerr.NotFound("User not found")
	}

	follow := &model.Follow{FollowerID: followerID, FollowingID: targetID}
	if err := s.repo.Create(ctx, follow); err != nil {
		if bizerr.IsUniqueViolation(err) {
			return nil, bizerr.AlreadyExists("Already following this user")
		}
		return nil, bizerr.Internal("follow.Follow", err)
	}

	logger.L().Debug("user followed",
		zap.Uint("follower_id", followerID),
		zap.Uint("following_id", targetID),
	)
	return follow, nil
}

// Unfollow 取消关注，返回被删除的关注边
func (s *followService) Unfollow(ctx context.Context, followerID, targetID uint) (*model.Follow, error) {
	follow, err := s.repo.Delete(ctx, followerID, targetID)
	if err != nil {
		return nil, bizerr.Internal("follow.Unfollow", err)
	}
	if follow == nil {
		return nil, bizerr.NotFound("Not following this user")
	}
	return follow, nil
}

func (s *followService) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error) {
	users, err := s.repo.ListFollowing(ctx, userID, limit, offset)
	if err != nil {
		return nil, bizerr.Internal("follow.ListFollowing", err)
	}
	return users, nil
}

func (s *followService) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error) {
	users, err := s.repo.ListFollowers(ctx, userID, limit, offset)
	if err != nil {
		return nil, bizerr.Internal("follow.ListFollowers", err)
	}
	return users, nil
}

// CountsFor 关注数与粉丝数
// TODO: 是否排除已注销用户尚无定论，目前按原始边数统计
func (s *followService) CountsFor(ctx context.Context, userID uint) (model.FollowCounts, error) {
	following, err := s.repo.CountFollowing(ctx, userID)
	if err != nil {
		return model.FollowCounts{}, bizerr.Internal("follow.CountsFor", err)
	}
	followers, err := s.repo.CountFollowers(ctx, userID)
	if err != nil {
		return model.FollowCounts{}, bizerr.Internal("follow.CountsFor", err)
	}
	return model.FollowCounts{Following: following, Followers: followers}, nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	ok, err := s.repo.Exists(ctx, followerID, followingID)
	if err != nil {
		return false, bizerr.Internal("follow.IsFollowing", err)
	}
	return ok, nil
}
