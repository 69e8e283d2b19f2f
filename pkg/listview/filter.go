// Package listview implements the list/filter/search/sort/paginate/inline-edit
// pattern shared by the Equipment, Maintenance Schedule and Ticket screens.
// The screens differ only in record type and field accessors, so everything
// here is generic over the record type.
package listview

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Criteria is the conjunction of a screen's active filter predicates.
// A nil predicate is a no-op, which is how the 'ALL'/empty criterion
// values are represented.
type Criteria[T any] []func(T) bool

// Filter narrows records to those matching every active criterion.
// It is order-preserving and idempotent, and never mutates its input.
func Filter[T any](records []T, crit Criteria[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if crit.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (crit Criteria[T]) matches(r T) bool {
	for _, pred := range crit {
		if pred != nil && !pred(r) {
			return false
		}
	}
	return true
}

// IsAll reports whether a criterion value means "match everything".
func IsAll(value string) bool {
	return value == "" || strings.EqualFold(value, "ALL")
}

// Exact matches get(record) == want. 'ALL' or empty disables the criterion.
func Exact[T any](get func(T) string, want string) func(T) bool {
	if IsAll(want) {
		return nil
	}
	return func(r T) bool { return get(r) == want }
}

// ExactFold is Exact with case-insensitive comparison, used for status and
// type criteria whose spelling varies between screens.
func ExactFold[T any](get func(T) string, want string) func(T) bool {
	if IsAll(want) {
		return nil
	}
	return func(r T) bool { return strings.EqualFold(get(r), want) }
}

// CostBetween keeps records whose cost lies inside the inclusive range.
// A nil bound leaves that side unbounded; both nil disables the criterion.
func CostBetween[T any](get func(T) decimal.Decimal, min, max *decimal.Decimal) func(T) bool {
	if min == nil && max == nil {
		return nil
	}
	return func(r T) bool {
		cost := get(r)
		if min != nil && cost.LessThan(*min) {
			return false
		}
		if max != nil && cost.GreaterThan(*max) {
			return false
		}
		return true
	}
}

// DateBetween keeps records whose date lies inside the inclusive range.
// Records with an unparseable date fail the criterion, matching the
// behavior of comparing against an invalid Date on the dashboard.
func DateBetween[T any](get func(T) (time.Time, bool), start, end *time.Time) func(T) bool {
	if start == nil && end == nil {
		return nil
	}
	return func(r T) bool {
		d, ok := get(r)
		if !ok {
			return false
		}
		if start != nil && d.Before(*start) {
			return false
		}
		if end != nil && d.After(*end) {
			return false
		}
		return true
	}
}
