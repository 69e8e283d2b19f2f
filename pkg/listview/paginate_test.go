package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginateTwelveItemsPageSizeTen(t *testing.T) {
	records := seq(12)

	p1 := Paginate(records, 10, 1)
	assert.Equal(t, seq(10), p1.Items)
	assert.Equal(t, 1, p1.FirstIndex)
	assert.Equal(t, 10, p1.LastIndex)
	assert.Equal(t, 2, p1.TotalPages)
	assert.Equal(t, "Showing 1 to 10 of 12 items", p1.RangeLabel())

	p2 := Paginate(records, 10, 2)
	assert.Equal(t, []int{11, 12}, p2.Items)
	assert.Equal(t, 11, p2.FirstIndex)
	assert.Equal(t, 12, p2.LastIndex)
	assert.Equal(t, "Showing 11 to 12 of 12 items", p2.RangeLabel())
}

func TestPaginateClampsPageNumber(t *testing.T) {
	records := seq(25)

	// Shrinking result sets clamp the cursor instead of rendering an
	// empty page.
	p := Paginate(records, 10, 99)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, p.Items)

	p = Paginate(records, 10, 0)
	assert.Equal(t, 1, p.Number)

	p = Paginate(records, 10, -5)
	assert.Equal(t, 1, p.Number)
}

func TestPaginateEmptySet(t *testing.T) {
	p := Paginate([]int{}, 10, 3)
	assert.Equal(t, 1, p.TotalPages, "totalPages is never below 1")
	assert.Equal(t, 1, p.Number)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.FirstIndex)
	assert.Equal(t, 0, p.LastIndex)
}

func TestPaginateBounds(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for page := -1; page <= 6; page++ {
			p := Paginate(seq(n), 10, page)
			assert.GreaterOrEqual(t, p.Number, 1)
			assert.LessOrEqual(t, p.Number, p.TotalPages)
			assert.LessOrEqual(t, len(p.Items), 10)
		}
	}
}

func TestPaginateLastPageRemainder(t *testing.T) {
	p := Paginate(seq(23), 10, 3)
	assert.Len(t, p.Items, 3)
}

func TestPaginateDefaultPageSize(t *testing.T) {
	p := Paginate(seq(15), 0, 1)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Len(t, p.Items, 10)
}

func TestPageNumbersSmallSet(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, PageNumbers(2, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, PageNumbers(1, 5))
}

func TestPageNumbersElidesLongRuns(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, Gap, 20}, PageNumbers(1, 20))
	assert.Equal(t, []int{1, Gap, 8, 9, 10, 11, 12, Gap, 20}, PageNumbers(10, 20))
	assert.Equal(t, []int{1, Gap, 16, 17, 18, 19, 20}, PageNumbers(20, 20))
}

func TestPageNumbersFirstAndLastAlwaysReachable(t *testing.T) {
	for total := 6; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			pages := PageNumbers(current, total)
			assert.Equal(t, 1, pages[0])
			assert.Equal(t, total, pages[len(pages)-1])
		}
	}
}
