// Package bizerr 定义业务错误分类。
//
// 业务失败（参数非法、资源不存在、重复操作、评论关闭）作为 *Error 返回给调用方，
// 存储层故障统一包装为 KindInternal，原始错误只用于日志，不暴露给客户端。
package bizerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind 错误类别
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindSelfReference
	KindNotFound
	KindAlreadyExists
	KindCommentsDisabled
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindSelfReference:
		return "self_reference"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindCommentsDisabled:
		return "comments_disabled"
	default:
		return "internal"
	}
}

// pgUniqueViolation PostgreSQL unique_violation 错误码
const pgUniqueViolation = "23505"

// Error 业务错误
type Error struct {
	Kind    Kind
	Message string // 面向用户的提示
	Op      string // 出错的操作，仅 Internal 使用
	Err     error  // 原始错误，仅 Internal 使用
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 创建业务错误
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func InvalidInput(msg string) *Error     { return New(KindInvalidInput, msg) }
func SelfReference(msg string) *Error    { return New(KindSelfReference, msg) }
func NotFound(msg string) *Error         { return New(KindNotFound, msg) }
func AlreadyExists(msg string) *Error    { return New(KindAlreadyExists, msg) }
func CommentsDisabled(msg string) *Error { return New(KindCommentsDisabled, msg) }

// Internal 包装存储层或逻辑故障
func Internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Op: op, Err: err}
}

// KindOf 返回错误类别，非业务错误一律视为 Internal
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindInternal
}

// Is 判断错误是否属于某个类别
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsUniqueViolation 判断是否为唯一约束冲突
// gorm 开启 TranslateError 时返回 ErrDuplicatedKey，否则检查 pgconn 原始错误
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsRecordNotFound 判断是否为记录不存在
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
