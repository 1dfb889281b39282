package model

import (
	"time"
)

// BaseModel 基础模型，使用自增整型主键
// 软删除由各实体的 is_deleted 字段表达，不使用 gorm.DeletedAt：
// 部分统计（点赞数、关注数）需要忽略删除标记
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
