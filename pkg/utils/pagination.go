package utils

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination 页码分页请求参数（帖子列表、动态流）
type Pagination struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// PageResult 页码分页响应结果
// HasMore 仅表示本页已满，不是精确总数
type PageResult struct {
	List    interface{} `json:"list"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	HasMore bool        `json:"hasMore"`
}

// Normalize 填充默认值并限制上限
func (p *Pagination) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// GetPageOffset 计算分页偏移量
func (p *Pagination) GetPageOffset() (int, int) {
	p.Normalize()
	return (p.Page - 1) * p.Limit, p.Limit
}

// OffsetPagination limit/offset 分页请求参数（关注、点赞、评论列表）
type OffsetPagination struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

// OffsetResult limit/offset 分页响应结果
type OffsetResult struct {
	List   interface{} `json:"list"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// Normalize 填充默认值并限制上限
func (p *OffsetPagination) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
