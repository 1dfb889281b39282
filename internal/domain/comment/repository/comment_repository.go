package repository

import (
	"context"

	"social_backend/internal/domain/comment/model"
	postModel "social_backend/internal/domain/post/model"

	"gorm.io/gorm"
)

// PostState 评论前需要的帖子状态
type PostState struct {
	Exists          bool
	CommentsEnabled bool
}

// CommentRepository 评论仓储
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	PostState(ctx context.Context, postID uint) (PostState, error)
	UpdateOwned(ctx context.Context, commentID, userID uint, content string) (*model.Comment, error)
	SoftDeleteOwned(ctx context.Context, commentID, userID uint) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]model.CommentWithAuthor, error)
	GetWithAuthor(ctx context.Context, commentID uint) (*model.CommentWithAuthor, error)
	Count(ctx context.Context, postID uint) (int64, error)
	CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// PostState 查询未删除帖子的评论开关
func (r *commentRepository) PostState(ctx context.Context, postID uint) (PostState, error) {
	var enabled []bool
	err := r.db.WithContext(ctx).Model(&postModel.Post{}).
		Where("id = ? AND is_deleted = FALSE", postID).
		Pluck("comments_enabled", &enabled).Error
	if err != nil || len(enabled) == 0 {
		return PostState{}, err
	}
	return PostState{Exists: true, CommentsEnabled: enabled[0]}, nil
}

const updateOwnedSQL = `UPDATE comments SET content = ?, updated_at = NOW()
WHERE id = ? AND user_id = ? AND is_deleted = FALSE
RETURNING *`

// 返回更新前的快照
const softDeleteOwnedSQL = `WITH prior AS (
  SELECT * FROM comments
  WHERE id = ? AND user_id = ? AND is_deleted = FALSE
  FOR UPDATE
)
UPDATE comments c SET is_deleted = TRUE, updated_at = NOW()
FROM prior
WHERE c.id = prior.id
RETURNING prior.*`

// UpdateOwned 修改本人未删除的评论，条件不满足时返回 nil
func (r *commentRepository) UpdateOwned(ctx context.Context, commentID, userID uint, content string) (*model.Comment, error) {
	var rows []model.Comment
	err := r.db.WithContext(ctx).Raw(updateOwnedSQL, content, commentID, userID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

// SoftDeleteOwned 软删除本人未删除的评论，条件不满足时返回 nil
func (r *commentRepository) SoftDeleteOwned(ctx context.Context, commentID, userID uint) (*model.Comment, error) {
	var rows []model.Comment
	err := r.db.WithContext(ctx).Raw(softDeleteOwnedSQL, commentID, userID).Scan(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

const selectWithAuthor = `SELECT c.id, c.post_id, c.user_id, c.content, c.created_at, c.updated_at,
       u.username, u.full_name
FROM comments c
JOIN users u ON c.user_id = u.id
`

const listByPostSQL = selectWithAuthor + `WHERE c.post_id = ? AND c.is_deleted = FALSE AND u.is_deleted = FALSE
ORDER BY c.created_at DESC, c.id DESC
LIMIT ? OFFSET ?`

const getWithAuthorSQL = selectWithAuthor + `WHERE c.id = ? AND c.is_deleted = FALSE AND u.is_deleted = FALSE`

// ListByPost 帖子评论，最新在前
func (r *commentRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]model.CommentWithAuthor, error) {
	comments := make([]model.CommentWithAuthor, 0, limit)
	err := r.db.WithContext(ctx).Raw(listByPostSQL, postID, limit, offset).Scan(&comments).Error
	return comments, err
}

// GetWithAuthor 单条评论，不存在时返回 gorm.ErrRecordNotFound
func (r *commentRepository) GetWithAuthor(ctx context.Context, commentID uint) (*model.CommentWithAuthor, error) {
	var comments []model.CommentWithAuthor
	if err := r.db.WithContext(ctx).Raw(getWithAuthorSQL, commentID).Scan(&comments).Error; err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &comments[0], nil
}

// Count 未删除评论数
func (r *commentRepository) Count(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND is_deleted = FALSE", postID).
		Count(&count).Error
	return count, err
}

type postCount struct {
	PostID uint
	Count  int64
}

// CountByPostIDs 批量统计未删除评论数
func (r *commentRepository) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []postCount
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ? AND is_deleted = FALSE", postIDs).
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
