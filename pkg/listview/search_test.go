package listview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	kind, id := Classify("")
	assert.Equal(t, QueryEmpty, kind)

	kind, id = Classify("   \t ")
	assert.Equal(t, QueryEmpty, kind, "whitespace-only behaves as empty")

	kind, id = Classify("42")
	assert.Equal(t, QueryID, kind)
	assert.Equal(t, int64(42), id)

	kind, id = Classify(" 42 ")
	assert.Equal(t, QueryID, kind)
	assert.Equal(t, int64(42), id)

	kind, _ = Classify("treadmill")
	assert.Equal(t, QueryText, kind)

	kind, _ = Classify("4.2")
	assert.Equal(t, QueryText, kind, "non-integers are free text")
}

func testSearcher(all []row, byID map[int64][]row, byText map[string][]row) Searcher[row] {
	return Searcher[row]{
		LoadAll: func(context.Context) ([]row, error) { return all, nil },
		ByID: func(_ context.Context, id int64) ([]row, error) {
			return byID[id], nil
		},
		ByText: func(_ context.Context, q string) ([]row, error) {
			return byText[q], nil
		},
		NotFoundNotice:     "No results found. Showing all schedules.",
		SearchFailedNotice: "An error occurred while searching. Showing all schedules.",
	}
}

func TestResolveEmptyQueryReturnsFullList(t *testing.T) {
	all := sampleRows()
	s := testSearcher(all, nil, nil)

	got, notice, err := s.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, all, got)

	got, notice, err = s.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, all, got)
}

func TestResolveIDLookup(t *testing.T) {
	all := sampleRows()
	s := testSearcher(all, map[int64][]row{3: {all[2]}}, nil)

	got, notice, err := s.Resolve(context.Background(), "3")
	require.NoError(t, err)
	assert.Nil(t, notice)
	assert.Equal(t, []int64{3}, ids(got))
}

func TestResolveIDNotFoundFallsBackToFullList(t *testing.T) {
	all := sampleRows()
	s := testSearcher(all, map[int64][]row{}, nil)

	got, notice, err := s.Resolve(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, notice)
	assert.Equal(t, ToastInfo, notice.Kind)
	assert.Equal(t, "No results found. Showing all schedules.", notice.Message)
	assert.Equal(t, all, got, "fallback shows the same set as an empty query")
}

func TestResolveTextNotFoundFallsBackToFullList(t *testing.T) {
	all := sampleRows()
	s := testSearcher(all, nil, map[string][]row{})

	got, notice, err := s.Resolve(context.Background(), "nonexistent")
	require.NoError(t, err)
	require.NotNil(t, notice)
	assert.Equal(t, all, got)
}

func TestResolveSearchErrorFallsBackWithErrorNotice(t *testing.T) {
	all := sampleRows()
	s := testSearcher(all, nil, nil)
	s.ByText = func(context.Context, string) ([]row, error) {
		return nil, errors.New("boom")
	}

	got, notice, err := s.Resolve(context.Background(), "treadmill")
	require.NoError(t, err)
	require.NotNil(t, notice)
	assert.Equal(t, ToastError, notice.Kind)
	assert.Equal(t, all, got)
}

func TestResolveFallbackLoadFailure(t *testing.T) {
	s := testSearcher(nil, map[int64][]row{}, nil)
	s.LoadAll = func(context.Context) ([]row, error) { return nil, errors.New("down") }

	_, _, err := s.Resolve(context.Background(), "42")
	assert.Error(t, err)
}

func TestMatchText(t *testing.T) {
	all := sampleRows()

	got := MatchText(all, func(r row) []string {
		return []string{r.Type, r.Technician}
	}, "PREV")
	assert.Equal(t, []int64{1, 3}, ids(got), "substring match is case-insensitive")

	got = MatchText(all, func(r row) []string { return []string{r.Technician} }, "")
	assert.Equal(t, all, got)
}
