package model

import (
	"time"

	baseModel "social_backend/pkg/model"
)

// Post 帖子模型
type Post struct {
	baseModel.BaseModel
	UserID          uint    `gorm:"not null;index:idx_posts_user_created,priority:1" json:"user_id"`
	Content         string  `gorm:"type:text;not null" json:"content"`
	MediaURL        *string `gorm:"size:500" json:"media_url"`
	CommentsEnabled bool    `gorm:"not null" json:"comments_enabled"`
	IsDeleted       bool    `gorm:"not null" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// PostWithAuthor 帖子及作者信息
type PostWithAuthor struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Content         string    `json:"content"`
	MediaURL        *string   `json:"media_url"`
	CommentsEnabled bool      `json:"comments_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Username        string    `json:"username"`
	FullName        string    `json:"full_name"`
}

// PostView 对外展示的帖子：作者、点赞数、评论数、当前浏览者是否点赞
type PostView struct {
	PostWithAuthor
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	HasLiked     bool  `json:"has_liked"`
}
