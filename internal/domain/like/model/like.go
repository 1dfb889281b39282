package model

import "time"

// Like 点赞记录，(user_id, post_id) 唯一
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_pair" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_pair;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// Liker 点赞用户
type Liker struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	LikedAt  time.Time `json:"liked_at"`
}

// LikedPost 用户点赞过的帖子
type LikedPost struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	MediaURL  *string   `json:"media_url"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	LikedAt   time.Time `json:"liked_at"`
}

// LikeStatus 点赞状态
type LikeStatus struct {
	PostID   uint `json:"post_id"`
	HasLiked bool `json:"has_liked"`
}

// LikeCount 点赞数
type LikeCount struct {
	PostID uint  `json:"post_id"`
	Count  int64 `json:"count"`
}
