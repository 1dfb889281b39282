package repository

import (
	"context"

	"social_backend/internal/domain/like/model"
	postModel "social_backend/internal/domain/post/model"

	"gorm.io/gorm"
)

// LikeRepository 点赞仓储
type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, userID, postID uint) (*model.Like, error)
	PostActive(ctx context.Context, postID uint) (bool, error)
	ListPostLikers(ctx context.Context, postID uint, limit, offset int) ([]model.Liker, error)
	ListUserLikedPosts(ctx context.Context, userID uint, limit, offset int) ([]model.LikedPost, error)
	Count(ctx context.Context, postID uint) (int64, error)
	Exists(ctx context.Context, userID, postID uint) (bool, error)
	CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create 插入点赞，重复时返回唯一约束错误
func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// Delete 删除点赞并返回被删除的记录，不存在时返回 nil
func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) (*model.Like, error) {
	var rows []model.Like
	err := r.db.WithContext(ctx).
		Raw("DELETE FROM likes WHERE user_id = ? AND post_id = ? RETURNING *", userID, postID).
		Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// PostActive 帖子存在且未删除
func (r *likeRepository) PostActive(ctx context.Context, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&postModel.Post{}).
		Where("id = ? AND is_deleted = FALSE", postID).
		Count(&count).Error
	return count > 0, err
}

const listLikersSQL = `SELECT u.id, u.username, u.full_name, l.created_at AS liked_at
FROM likes l
JOIN users u ON l.user_id = u.id
WHERE l.post_id = ? AND u.is_deleted = FALSE
ORDER BY l.created_at DESC, l.id DESC
LIMIT ? OFFSET ?`

const listLikedPostsSQL = `SELECT p.id, p.user_id, p.content, p.media_url, p.created_at,
       u.username, u.full_name, l.created_at AS liked_at
FROM likes l
JOIN posts p ON l.post_id = p.id
JOIN users u ON p.user_id = u.id
WHERE l.user_id = ? AND p.is_deleted = FALSE AND u.is_deleted = FALSE
ORDER BY l.created_at DESC, l.id DESC
LIMIT ? OFFSET ?`

func (r *likeRepository) ListPostLikers(ctx context.Context, postID uint, limit, offset int) ([]model.Liker, error) {
	likers := make([]model.Liker, 0, limit)
	err := r.db.WithContext(ctx).Raw(listLikersSQL, postID, limit, offset).Scan(&likers).Error
	return likers, err
}

func (r *likeRepository) ListUserLikedPosts(ctx context.Context, userID uint, limit, offset int) ([]model.LikedPost, error) {
	posts := make([]model.LikedPost, 0, limit)
	err := r.db.WithContext(ctx).Raw(listLikedPostsSQL, userID, limit, offset).Scan(&posts).Error
	return posts, err
}

// Count 点赞数，不检查帖子是否已删除
func (r *likeRepository) Count(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

type postCount struct {
	PostID uint
	Count  int64
}

// CountByPostIDs 批量统计点赞数，没有点赞的帖子不在结果中
func (r *likeRepository) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []postCount
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

// LikedPostIDs 返回 postIDs 中 userID 点赞过的帖子
func (r *likeRepository) LikedPostIDs(ctx context.Context, userID uint, postIDs []uint) (map[uint]bool, error) {
	liked := make(map[uint]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}
