package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leaguelookup/fetcher/requests"
	"net/http"
)

// Get the latest version of the data from the ddragon.
func (a *AssetFetcher) GetLatestVersion(ctx context.Context) (string, error) {
	// Format the versions api url.
	url := a.baseURL + "api/versions.json"
	resp, err := requests.Request(ctx, a.httpClient, url)
	if err != nil {
		return "", fmt.Errorf("couldn't get the current version: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &requests.StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	// Read the version json/array into the version.
	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return "", fmt.Errorf("couldn't convert the body to json: %w", err)
	}

	if len(versions) == 0 {
		return "", errors.New("no versions available")
	}

	// The list is ordered from the newest.
	return versions[0], nil
}
