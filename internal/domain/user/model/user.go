package model

import (
	"time"

	followModel "social_backend/internal/domain/follow/model"
	baseModel "social_backend/pkg/model"
)

// User 用户模型
type User struct {
	baseModel.BaseModel
	Username     string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	FullName     string `gorm:"size:100" json:"full_name"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `json:"-"` // 密码哈希不返回给前端
	IsDeleted    bool   `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary 用户公开信息（搜索、资料页）
type UserSummary struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile 用户资料页
type Profile struct {
	UserSummary
	Stats       followModel.FollowCounts `json:"stats"`
	IsFollowing bool                     `json:"is_following"`
}
