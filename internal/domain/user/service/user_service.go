package service

import (
	"context"
	"errors"
	"strings"

	followModel "social_backend/internal/domain/follow/model"
	"social_backend/internal/domain/user/model"
	"social_backend/internal/domain/user/repository"
	"social_backend/internal/pkg/bizerr"
	"social_backend/pkg/logger"
	"social_backend/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 用户名或密码错误
var ErrInvalidCredentials = errors.New("invalid username or password")

// FollowStats 资料页需要的关注关系查询
type FollowStats interface {
	CountsFor(ctx context.Context, userID uint) (followModel.FollowCounts, error)
	IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error)
}

// UserService 用户服务接口
type UserService interface {
	Register(ctx context.Context, username, fullName, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, *model.User, error)
	GetProfile(ctx context.Context, userID uint, viewerID *uint) (*model.Profile, error)
	SearchUsers(ctx context.Context, query string, limit, offset int) ([]model.UserSummary, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

// userService 实现
type userService struct {
	repo    repository.UserRepository
	follows FollowStats
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, follows FollowStats) UserService {
	return &userService{repo: repo, follows: follows}
}

// Register 注册
func (s *userService) Register(ctx context.Context, username, fullName, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, bizerr.InvalidInput("Username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, bizerr.Internal("user.Register", err)
	}

	user := &model.User{
		Username:     username,
		FullName:     strings.TrimSpace(fullName),
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if bizerr.IsUniqueViolation(err) {
			return nil, bizerr.AlreadyExists("Username or email already taken")
		}
		return nil, bizerr.Internal("user.Register", err)
	}

	logger.L().Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login 登录，返回 token
func (s *userService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if bizerr.IsRecordNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, bizerr.Internal("user.Login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, _, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, bizerr.Internal("user.Login", err)
	}
	return token, user, nil
}

// GetProfile 用户资料 + 关注统计 + 浏览者是否已关注
func (s *userService) GetProfile(ctx context.Context, userID uint, viewerID *uint) (*model.Profile, error) {
	user, err := s.repo.GetActiveByID(ctx, userID)
	if err != nil {
		if bizerr.IsRecordNotFound(err) {
			return nil, bizerr.NotFound("User not found")
		}
		return nil, bizerr.Internal("user.GetProfile", err)
	}

	stats, err := s.follows.CountsFor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != nil {
		if isFollowing, err = s.follows.IsFollowing(ctx, *viewerID, user.ID); err != nil {
			return nil, err
		}
	}

	return &model.Profile{
		UserSummary: model.UserSummary{
			ID:        user.ID,
			Username:  user.Username,
			FullName:  user.FullName,
			CreatedAt: user.CreatedAt,
		},
		Stats:       stats,
		IsFollowing: isFollowing,
	}, nil
}

// SearchUsers 按名称搜索用户
func (s *userService) SearchUsers(ctx context.Context, query string, limit, offset int) ([]model.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, bizerr.InvalidInput("Search query is required")
	}

	users, err := s.repo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, bizerr.Internal("user.SearchUsers", err)
	}
	return users, nil
}

// DeleteAccount 注销账号（软删除）
// 已注销用户不再出现在关注列表、点赞列表、评论列表和动态流中
func (s *userService) DeleteAccount(ctx context.Context, userID uint) error {
	ok, err := s.repo.SoftDelete(ctx, userID)
	if err != nil {
		return bizerr.Internal("user.DeleteAccount", err)
	}
	if !ok {
		return bizerr.NotFound("User not found")
	}
	logger.L().Info("user account deleted", zap.Uint("user_id", userID))
	return nil
}
