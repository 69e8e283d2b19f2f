package listview

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState tracks which column header is active. Selecting the active
// field again flips the direction; selecting a new field resets to
// ascending. No field selected means records stay in store order.
type SortState struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

func (s *SortState) Select(field string) {
	if s.Field == field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Field = field
	s.Direction = Ascending
}

func (s *SortState) Clear() {
	s.Field = ""
	s.Direction = Ascending
}

func (s SortState) Active() bool { return s.Field != "" }

// Sort orders records by the key's value under the table comparison rule:
// numeric when both sides parse as finite numbers, case-insensitive for
// strings, native ordering otherwise. The sort is stable and returns a new
// slice.
func Sort[T any](records []T, key func(T) any, dir Direction) []T {
	out := append([]T(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		c := CompareValues(key(out[i]), key(out[j]))
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// CompareValues implements the column comparison rule shared by every
// sortable table on the dashboard.
func CompareValues(a, b any) int {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64:
		f = n
	case decimal.Decimal:
		f, _ = n.Float64()
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
