package listview

import (
	"context"
	"strconv"
	"strings"
)

// QueryKind classifies a search box submission.
type QueryKind int

const (
	QueryEmpty QueryKind = iota
	QueryID
	QueryText
)

// Classify decides how a query is resolved: whitespace-only counts as
// empty, an integer is an identifier lookup, anything else is free text.
func Classify(query string) (QueryKind, int64) {
	q := strings.TrimSpace(query)
	if q == "" {
		return QueryEmpty, 0
	}
	if id, err := strconv.ParseInt(q, 10, 64); err == nil {
		return QueryID, id
	}
	return QueryText, 0
}

// Searcher resolves a query against the backend, falling back to the full
// unfiltered list whenever a lookup comes back empty or fails, so the
// screen is never left blank. The fallback applies to the id-lookup path
// as well.
type Searcher[T any] struct {
	LoadAll func(context.Context) ([]T, error)
	ByID    func(context.Context, int64) ([]T, error)
	ByText  func(context.Context, string) ([]T, error)

	NotFoundNotice     string
	SearchFailedNotice string
}

// Resolve returns the records to display plus the notice to surface, if
// any. An error is returned only when even the fallback load fails.
func (s Searcher[T]) Resolve(ctx context.Context, query string) ([]T, *Toast, error) {
	kind, id := Classify(query)
	if kind == QueryEmpty {
		records, err := s.LoadAll(ctx)
		return records, nil, err
	}

	var results []T
	var err error
	if kind == QueryID {
		results, err = s.ByID(ctx, id)
	} else {
		results, err = s.ByText(ctx, strings.TrimSpace(query))
	}

	if err != nil {
		records, loadErr := s.LoadAll(ctx)
		if loadErr != nil {
			return nil, nil, loadErr
		}
		return records, &Toast{Message: s.SearchFailedNotice, Kind: ToastError}, nil
	}
	if len(results) == 0 {
		records, loadErr := s.LoadAll(ctx)
		if loadErr != nil {
			return nil, nil, loadErr
		}
		return records, &Toast{Message: s.NotFoundNotice, Kind: ToastInfo}, nil
	}
	return results, nil, nil
}

// MatchText is the client-side free-text pass applied on top of an already
// fetched list: case-insensitive substring over the fields the screen
// indexes.
func MatchText[T any](records []T, fields func(T) []string, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		for _, f := range fields(r) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
