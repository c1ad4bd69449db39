package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		limit   int
		total   int64
		want    PaginationMeta
	}{
		{
			name:  "first page of many",
			page:  1,
			limit: 10,
			total: 25,
			want: PaginationMeta{
				CurrentPage:  1,
				TotalPages:   3,
				TotalRecords: 25,
				HasNext:      true,
				HasPrev:      false,
			},
		},
		{
			name:  "middle page",
			page:  2,
			limit: 10,
			total: 25,
			want: PaginationMeta{
				CurrentPage:  2,
				TotalPages:   3,
				TotalRecords: 25,
				HasNext:      true,
				HasPrev:      true,
			},
		},
		{
			name:  "last page",
			page:  3,
			limit: 10,
			total: 25,
			want: PaginationMeta{
				CurrentPage:  3,
				TotalPages:   3,
				TotalRecords: 25,
				HasNext:      false,
				HasPrev:      true,
			},
		},
		{
			name:  "exact multiple has no extra page",
			page:  2,
			limit: 10,
			total: 20,
			want: PaginationMeta{
				CurrentPage:  2,
				TotalPages:   2,
				TotalRecords: 20,
				HasNext:      false,
				HasPrev:      true,
			},
		},
		{
			name:  "empty result set",
			page:  1,
			limit: 10,
			total: 0,
			want: PaginationMeta{
				CurrentPage:  1,
				TotalPages:   0,
				TotalRecords: 0,
				HasNext:      false,
				HasPrev:      false,
			},
		},
		{
			name:  "single record",
			page:  1,
			limit: 10,
			total: 1,
			want: PaginationMeta{
				CurrentPage:  1,
				TotalPages:   1,
				TotalRecords: 1,
				HasNext:      false,
				HasPrev:      false,
			},
		},
		{
			name:  "page past the end still reports no next",
			page:  5,
			limit: 10,
			total: 25,
			want: PaginationMeta{
				CurrentPage:  5,
				TotalPages:   3,
				TotalRecords: 25,
				HasNext:      false,
				HasPrev:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculatePagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestCalculatePaginationNormalizesBadInput(t *testing.T) {
	got := CalculatePagination(0, 0, 15)

	assert.Equal(t, 1, got.CurrentPage)
	assert.Equal(t, 2, got.TotalPages)
	assert.True(t, got.HasNext)
}

func TestParsePageLimit(t *testing.T) {
	page, limit := ParsePageLimit(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit = ParsePageLimit(-3, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, limit)

	page, limit = ParsePageLimit(7, 25)
	assert.Equal(t, 7, page)
	assert.Equal(t, 25, limit)
}
