package listview

import "fmt"

const (
	// DefaultPageSize is the fixed page size of every list screen.
	DefaultPageSize = 10

	// VisibleWindow is how many page buttons are shown before long runs
	// are elided with a gap.
	VisibleWindow = 5

	// Gap marks an elided run in PageNumbers output.
	Gap = -1
)

// Page is one rendered slice of a record list.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	FirstIndex int `json:"first_index"` // 1-based position of the first visible item, 0 when empty
	LastIndex  int `json:"last_index"`
}

// Paginate slices records into the requested page. The page number is
// clamped into [1, totalPages] so a shrinking record set never renders an
// empty page silently; totalPages is never below 1.
func Paginate[T any](records []T, pageSize, pageNumber int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	first := (pageNumber - 1) * pageSize
	last := first + pageSize
	if last > total {
		last = total
	}
	if first > total {
		first = total
	}

	page := Page[T]{
		Items:      records[first:last],
		Number:     pageNumber,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		LastIndex:  last,
	}
	if total > 0 {
		page.FirstIndex = first + 1
	}
	return page
}

// RangeLabel renders the "Showing X to Y of Z items" footer text.
func (p Page[T]) RangeLabel() string {
	return fmt.Sprintf("Showing %d to %d of %d items", p.FirstIndex, p.LastIndex, p.TotalItems)
}

// PageNumbers returns the visible page buttons, with Gap entries where long
// runs are elided. The first and last page are always reachable.
func PageNumbers(current, totalPages int) []int {
	if totalPages <= VisibleWindow {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + VisibleWindow - 1
	if end > totalPages {
		end = totalPages
	}
	if end == totalPages {
		start = end - VisibleWindow + 1
		if start < 1 {
			start = 1
		}
	}

	var pages []int
	if start > 1 {
		pages = append(pages, 1)
		if start > 2 {
			pages = append(pages, Gap)
		}
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	if end < totalPages {
		if end < totalPages-1 {
			pages = append(pages, Gap)
		}
		pages = append(pages, totalPages)
	}
	return pages
}
