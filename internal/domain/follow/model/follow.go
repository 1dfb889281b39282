package model

import "time"

// Follow 关注关系（有向边）
// (follower_id, following_id) 唯一，且不允许自己关注自己，由数据库约束保证
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}

// FollowUser 关注/粉丝列表中的用户
type FollowUser struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	CreatedAt  time.Time `json:"created_at"`
	FollowedAt time.Time `json:"followed_at"`
}

// FollowCounts 关注数与粉丝数
// 直接统计关注边，不检查另一端用户是否已注销
type FollowCounts struct {
	Following int64 `json:"following"`
	Followers int64 `json:"followers"`
}
