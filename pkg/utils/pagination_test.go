package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPageOffset(t *testing.T) {
	tests := []struct {
		name          string
		in            Pagination
		offset, limit int
	}{
		{"defaults", Pagination{}, 0, 20},
		{"third page", Pagination{Page: 3, Limit: 10}, 20, 10},
		{"negative page", Pagination{Page: -2, Limit: 5}, 0, 5},
		{"capped", Pagination{Page: 2, Limit: 500}, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := tt.in.GetPageOffset()
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}

func TestOffsetPaginationNormalize(t *testing.T) {
	p := OffsetPagination{Limit: 0, Offset: -4}
	p.Normalize()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = OffsetPagination{Limit: 1000, Offset: 40}
	p.Normalize()
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 40, p.Offset)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "abc", "1.5"} {
		_, err := ParseID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}
