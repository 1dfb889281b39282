package utils

import (
	"errors"
	"strconv"
)

// ErrInvalidID 路径参数不是合法的正整数ID
var ErrInvalidID = errors.New("invalid id")

// ParseID 解析路径中的整型ID
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
