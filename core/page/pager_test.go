package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		pageIndex  int
		pageSize   int
		want       Page
	}{
		{
			name:       "single partial page",
			totalCount: 3,
			pageIndex:  0,
			pageSize:   5,
			want:       Page{Offset: 0, Limit: 5, TotalPages: 1, HasPrev: false, HasNext: false},
		},
		{
			name:       "exactly one full page",
			totalCount: 5,
			pageIndex:  0,
			pageSize:   5,
			want:       Page{Offset: 0, Limit: 5, TotalPages: 1, HasPrev: false, HasNext: false},
		},
		{
			name:       "first of several pages",
			totalCount: 12,
			pageIndex:  0,
			pageSize:   5,
			want:       Page{Offset: 0, Limit: 5, TotalPages: 3, HasPrev: false, HasNext: true},
		},
		{
			name:       "middle page",
			totalCount: 12,
			pageIndex:  1,
			pageSize:   5,
			want:       Page{Offset: 5, Limit: 5, TotalPages: 3, HasPrev: true, HasNext: true},
		},
		{
			name:       "last page",
			totalCount: 12,
			pageIndex:  2,
			pageSize:   5,
			want:       Page{Offset: 10, Limit: 5, TotalPages: 3, HasPrev: true, HasNext: false},
		},
		{
			name:       "zero total still reports one page",
			totalCount: 0,
			pageIndex:  0,
			pageSize:   5,
			want:       Page{Offset: 0, Limit: 5, TotalPages: 1, HasPrev: false, HasNext: false},
		},
		{
			name:       "index past the end is not clamped",
			totalCount: 12,
			pageIndex:  5,
			pageSize:   5,
			want:       Page{Offset: 25, Limit: 5, TotalPages: 3, HasPrev: true, HasNext: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.totalCount, tt.pageIndex, tt.pageSize)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Pages must partition the ordered sequence: contiguous, non-overlapping,
// and covering every item exactly once.
func TestComputePartition(t *testing.T) {
	for _, totalCount := range []int{1, 4, 5, 6, 11, 25, 99} {
		for _, pageSize := range []int{1, 3, 5, 10} {
			p0 := Compute(totalCount, 0, pageSize)
			covered := 0
			for i := 0; i < p0.TotalPages; i++ {
				p := Compute(totalCount, i, pageSize)
				assert.Equal(t, covered, p.Offset, "pages must be contiguous")
				assert.Equal(t, pageSize, p.Limit)
				assert.Equal(t, i > 0, p.HasPrev)
				assert.Equal(t, i < p.TotalPages-1, p.HasNext)

				rows := totalCount - p.Offset
				if rows > pageSize {
					rows = pageSize
				}
				covered += rows
			}
			assert.Equal(t, totalCount, covered,
				"totalCount=%d pageSize=%d", totalCount, pageSize)
		}
	}
}
