package repository

import (
	"context"

	"social_backend/internal/domain/follow/model"
	userModel "social_backend/internal/domain/user/model"

	"gorm.io/gorm"
)

// FollowRepository 关注关系仓储
type FollowRepository interface {
	Create(ctx context.Context, follow *model.Follow) error
	Delete(ctx context.Context, followerID, followingID uint) (*model.Follow, error)
	UserActive(ctx context.Context, userID uint) (bool, error)
	ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error)
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error)
	CountFollowing(ctx context.Context, userID uint) (int64, error)
	CountFollowers(ctx context.Context, userID uint) (int64, error)
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create 插入关注边，重复时返回唯一约束错误
func (r *followRepository) Create(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

// Delete 删除关注边并返回被删除的记录，不存在时返回 nil
func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) (*model.Follow, error) {
	var rows []model.Follow
	err := r.db.WithContext(ctx).
		Raw("DELETE FROM follows WHERE follower_id = ? AND following_id = ? RETURNING *", followerID, followingID).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// UserActive 用户存在且未注销
func (r *followRepository) UserActive(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel.User{}).
		Where("id = ? AND is_deleted = FALSE", userID).
		Count(&count).Error
	return count > 0, err
}

const listFollowingSQL = `SELECT u.id, u.username, u.full_name, u.created_at, f.created_at AS followed_at
FROM follows f
JOIN users u ON f.following_id = u.id
WHERE f.follower_id = ? AND u.is_deleted = FALSE
ORDER BY f.created_at DESC, f.id DESC
LIMIT ? OFFSET ?`

const listFollowersSQL = `SELECT u.id, u.username, u.full_name, u.created_at, f.created_at AS followed_at
FROM follows f
JOIN users u ON f.follower_id = u.id
WHERE f.following_id = ? AND u.is_deleted = FALSE
ORDER BY f.created_at DESC, f.id DESC
LIMIT ? OFFSET ?`

// ListFollowing 我关注的人，按关注时间倒序
func (r *followRepository) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error) {
	users := make([]model.FollowUser, 0, limit)
	err := r.db.WithContext(ctx).Raw(listFollowingSQL, userID, limit, offset).Scan(&users).Error
	return users, err
}

// ListFollowers 关注我的人，按关注时间倒序
func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]model.FollowUser, error) {
	users := make([]model.FollowUser, 0, limit)
	err := r.db.WithContext(ctx).Raw(listFollowersSQL, userID, limit, offset).Scan(&users).Error
	return users, err
}

func (r *followRepository) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}
