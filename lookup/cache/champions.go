package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguelookup/pkg/redis"
	"strconv"
	"time"
)

const (
	championNamesCacheDuration = 24 * time.Hour
	championNamesKey           = "ddragon:champions:%s:%s"
)

// ChampionCache keeps the champion names of each Data Dragon version.
type ChampionCache interface {
	GetChampionNames(ctx context.Context, version string, language string) (map[int]string, error)
	SetChampionNames(ctx context.Context, version string, language string, names map[int]string) error
}

type championCache struct {
	store Store
}

// NewChampionCache creates a new instance of the champion cache.
func NewChampionCache(store Store) ChampionCache {
	return &championCache{
		store: store,
	}
}

// GetChampionNames returns the id to name map, or ErrMiss.
func (cc *championCache) GetChampionNames(ctx context.Context, version string, language string) (map[int]string, error) {
	result, err := cc.store.Get(ctx, fmt.Sprintf(championNamesKey, version, language))
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't read the champion names from cache: %w", err)
	}

	// JSON objects only have string keys.
	var raw map[string]string
	if err := json.Unmarshal([]byte(result), &raw); err != nil {
		return nil, ErrMiss
	}

	names := make(map[int]string, len(raw))
	for key, name := range raw {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		names[id] = name
	}
	return names, nil
}

// SetChampionNames saves the names of a version.
func (cc *championCache) SetChampionNames(ctx context.Context, version string, language string, names map[int]string) error {
	j, err := json.Marshal(names)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(championNamesKey, version, language)
	if err := cc.store.Set(ctx, key, string(j), championNamesCacheDuration); err != nil {
		return fmt.Errorf("couldn't cache the champion names: %w", err)
	}
	return nil
}
