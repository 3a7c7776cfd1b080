package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguelookup/pkg/models"
	"leaguelookup/pkg/redis"
	"time"
)

// Finished matches never change, so they can be kept for long.
const (
	matchDetailCacheDuration = 7 * 24 * time.Hour
	matchDetailKey           = "match:detail:%d"
)

// MatchCache is the public interface for the match detail cache.
type MatchCache interface {
	GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error)
	SetMatchDetail(ctx context.Context, detail *models.MatchDetail) error
}

// Create a redis cache client.
type matchCache struct {
	store Store
}

// NewMatchCache creates a new instance of the match cache.
func NewMatchCache(store Store) MatchCache {
	return &matchCache{
		store: store,
	}
}

// GetMatchDetail returns the cached match, or ErrMiss.
func (mc *matchCache) GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error) {
	result, err := mc.store.Get(ctx, fmt.Sprintf(matchDetailKey, gameID))
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't read match %d from cache: %w", gameID, err)
	}

	var detail models.MatchDetail
	if err := json.Unmarshal([]byte(result), &detail); err != nil {
		// A broken entry is the same as a missing one, it will be overwritten.
		return nil, ErrMiss
	}
	return &detail, nil
}

// SetMatchDetail saves a given match in cache.
func (mc *matchCache) SetMatchDetail(ctx context.Context, detail *models.MatchDetail) error {
	j, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(matchDetailKey, detail.GameID)
	if err := mc.store.Set(ctx, key, string(j), matchDetailCacheDuration); err != nil {
		return fmt.Errorf("couldn't cache match %d: %w", detail.GameID, err)
	}
	return nil
}
