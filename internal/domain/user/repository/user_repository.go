package repository

import (
	"context"
	"strings"

	"social_backend/internal/domain/user/model"

	"gorm.io/gorm"
)

// UserRepository 接口定义
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetActiveByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Search(ctx context.Context, term string, limit, offset int) ([]model.UserSummary, error)
	SoftDelete(ctx context.Context, id uint) (bool, error)
}

// userRepository 实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建新的仓库实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetActiveByID 根据ID获取未注销用户
func (r *userRepository) GetActiveByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = FALSE", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名获取未注销用户
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ? AND is_deleted = FALSE", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

const searchSQL = `SELECT id, username, full_name, created_at
FROM users
WHERE (username ILIKE ? OR full_name ILIKE ?) AND is_deleted = FALSE
ORDER BY CASE WHEN username ILIKE ? THEN 1 WHEN full_name ILIKE ? THEN 2 ELSE 3 END,
         created_at DESC, id DESC
LIMIT ? OFFSET ?`

// Search 按用户名或姓名子串搜索，用户名命中优先
func (r *userRepository) Search(ctx context.Context, term string, limit, offset int) ([]model.UserSummary, error) {
	pattern := "%" + escapeLike(term) + "%"
	users := make([]model.UserSummary, 0, limit)
	err := r.db.WithContext(ctx).
		Raw(searchSQL, pattern, pattern, pattern, pattern, limit, offset).
		Scan(&users).Error
	return users, err
}

// SoftDelete 标记用户为已注销
func (r *userRepository) SoftDelete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND is_deleted = FALSE", id).
		Update("is_deleted", true)
	return res.RowsAffected > 0, res.Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike 转义 LIKE 通配符，搜索词按字面匹配
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
