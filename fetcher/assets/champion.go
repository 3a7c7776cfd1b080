package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguelookup/fetcher/requests"
	"leaguelookup/lookup/cache"
	"leaguelookup/pkg/logger"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// AssetFetcher reads the static data from the Data Dragon.
type AssetFetcher struct {
	httpClient *http.Client
	baseURL    string
	language   string
	cache      cache.ChampionCache
	logger     *logger.NewLogger
}

// Create the asset fetcher.
// The cache is optional, without it every call reaches the Data Dragon.
func CreateAssetFetcher(baseURL string, championCache cache.ChampionCache, log *logger.NewLogger) *AssetFetcher {
	if baseURL == "" {
		baseURL = DDragonURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if log == nil {
		log = logger.Nop()
	}

	return &AssetFetcher{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		language:   DefaultLanguage,
		cache:      championCache,
		logger:     log,
	}
}

// ChampionNames returns the champion id to name map of the latest version.
func (a *AssetFetcher) ChampionNames(ctx context.Context) (map[int]string, error) {
	version, err := a.GetLatestVersion(ctx)
	if err != nil {
		return nil, err
	}

	// Try the cache first.
	if a.cache != nil {
		names, err := a.cache.GetChampionNames(ctx, version, a.language)
		if err == nil {
			return names, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			a.logger.Warnf("Couldn't read the champion names from cache: %v", err)
		}
	}

	return a.revalidate(ctx, version)
}

// RevalidateChampionNames fetches the names of the latest version and overwrites the cache.
func (a *AssetFetcher) RevalidateChampionNames(ctx context.Context) (map[int]string, error) {
	version, err := a.GetLatestVersion(ctx)
	if err != nil {
		return nil, err
	}
	return a.revalidate(ctx, version)
}

// Fetch the names of the version and cache them.
func (a *AssetFetcher) revalidate(ctx context.Context, version string) (map[int]string, error) {
	names, err := a.fetchChampionNames(ctx, version)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.SetChampionNames(ctx, version, a.language, names); err != nil {
			a.logger.Warnf("Couldn't cache the champion names: %v", err)
		}
	}
	return names, nil
}

// Get the champion list of a given version.
func (a *AssetFetcher) fetchChampionNames(ctx context.Context, version string) (map[int]string, error) {
	// Format the champion api url.
	url := fmt.Sprintf("%scdn/%s/data/%s/champion.json", a.baseURL, version, a.language)
	resp, err := requests.Request(ctx, a.httpClient, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the champions: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &requests.StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	// Read the champion json.
	var championsData fullChampion
	if err := json.NewDecoder(resp.Body).Decode(&championsData); err != nil {
		return nil, fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	names := make(map[int]string, len(championsData.Data))
	for nameKey, champion := range championsData.Data {
		id, err := strconv.Atoi(champion.Key)
		if err != nil {
			a.logger.Warnf("Invalid key %q for champion %s", champion.Key, nameKey)
			continue
		}
		names[id] = champion.Name
	}
	return names, nil
}
