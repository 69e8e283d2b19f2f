package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"gym-admin/internal/dto"
	"gym-admin/internal/repositories"
	"gym-admin/pkg/listview"
)

// assembleView packages one screen's pipeline output with its transient UI
// state into the renderable payload.
func assembleView[T any](
	records []T,
	pageNumber int,
	sort listview.SortState,
	toaster *listview.Toaster,
	slot *listview.EditSlot,
	confirmer *listview.Confirmer,
) dto.ListViewDTO[T] {
	page := listview.Paginate(records, listview.DefaultPageSize, pageNumber)
	return dto.ListViewDTO[T]{
		Page:         page,
		PageNumbers:  listview.PageNumbers(page.Number, page.TotalPages),
		RangeLabel:   page.RangeLabel(),
		Sort:         sort,
		Edit:         slot.State(),
		Toast:        toaster.Current(),
		Confirmation: confirmer.Pending(),
	}
}

// cachedList serves a list snapshot from the cache when present, falling
// back to the backend and repopulating on a miss. Cache failures are
// logged and degrade to a direct load; they never fail the screen.
func cachedList[T any](
	ctx context.Context,
	cache repositories.CacheRepositoryInterface,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	load func(context.Context) ([]T, error),
) ([]T, error) {
	if cache != nil {
		if raw, err := cache.Get(ctx, key); err == nil && raw != "" {
			var out []T
			if err := json.Unmarshal([]byte(raw), &out); err == nil {
				return out, nil
			}
			logger.Warn("dropping undecodable cache entry", zap.String("key", key))
			_ = cache.Del(ctx, key)
		}
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := cache.Set(ctx, key, string(raw), ttl); err != nil {
				logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return out, nil
}
