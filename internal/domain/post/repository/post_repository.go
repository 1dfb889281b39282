package repository

import (
	"context"

	"social_backend/internal/domain/post/model"

	"gorm.io/gorm"
)

// PostRepository 帖子仓储
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	SoftDeleteOwned(ctx context.Context, postID, userID uint) (bool, error)
	GetWithAuthor(ctx context.Context, postID uint) (*model.PostWithAuthor, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]model.PostWithAuthor, error)
	Feed(ctx context.Context, viewerID uint, limit, offset int) ([]model.PostWithAuthor, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// SoftDeleteOwned 删除本人未删除的帖子
func (r *postRepository) SoftDeleteOwned(ctx context.Context, postID, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ? AND user_id = ? AND is_deleted = FALSE", postID, userID).
		Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}

const selectWithAuthor = `SELECT p.id, p.user_id, p.content, p.media_url, p.comments_enabled,
       p.created_at, p.updated_at, u.username, u.full_name
FROM posts p
JOIN users u ON p.user_id = u.id
`

const getWithAuthorSQL = selectWithAuthor + `WHERE p.id = ? AND p.is_deleted = FALSE`

const listByUserSQL = selectWithAuthor + `WHERE p.user_id = ? AND p.is_deleted = FALSE AND u.is_deleted = FALSE
ORDER BY p.created_at DESC, p.id DESC
LIMIT ? OFFSET ?`

// 本人帖子 + 关注对象的帖子，一次查询完成
const feedSQL = selectWithAuthor + `WHERE (p.user_id = ? OR p.user_id IN (
    SELECT following_id FROM follows WHERE follower_id = ?
  ))
  AND p.is_deleted = FALSE AND u.is_deleted = FALSE
ORDER BY p.created_at DESC, p.id DESC
LIMIT ? OFFSET ?`

// GetWithAuthor 单个帖子，只过滤帖子本身的删除状态
func (r *postRepository) GetWithAuthor(ctx context.Context, postID uint) (*model.PostWithAuthor, error) {
	var posts []model.PostWithAuthor
	if err := r.db.WithContext(ctx).Raw(getWithAuthorSQL, postID).Scan(&posts).Error; err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &posts[0], nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]model.PostWithAuthor, error) {
	posts := make([]model.PostWithAuthor, 0, limit)
	err := r.db.WithContext(ctx).Raw(listByUserSQL, userID, limit, offset).Scan(&posts).Error
	return posts, err
}

func (r *postRepository) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]model.PostWithAuthor, error) {
	posts := make([]model.PostWithAuthor, 0, limit)
	err := r.db.WithContext(ctx).Raw(feedSQL, viewerID, viewerID, limit, offset).Scan(&posts).Error
	return posts, err
}
