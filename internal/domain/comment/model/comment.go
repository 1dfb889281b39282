package model

import (
	"time"

	baseModel "social_backend/pkg/model"
)

// Comment 评论模型
type Comment struct {
	baseModel.BaseModel
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	PostID    uint   `gorm:"not null;index:idx_comments_post_created,priority:1" json:"post_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	IsDeleted bool   `gorm:"not null" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentWithAuthor 评论及作者信息
type CommentWithAuthor struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
}

// CommentCount 评论数
type CommentCount struct {
	PostID uint  `json:"post_id"`
	Count  int64 `json:"count"`
}
