package spectatorfetcher

import (
	"context"
	"leaguelookup/fetcher/requests"
	"leaguelookup/pkg/models"
	"net/url"
)

const spectatorEndpoint = "spectator"

// The spectator fetcher with it's client.
type SpectatorFetcher struct {
	client *requests.Client
}

// Create a spectator fetcher.
func CreateSpectatorFetcher(client *requests.Client) *SpectatorFetcher {
	return &SpectatorFetcher{
		client: client,
	}
}

// Get the game the summoner is currently playing.
func (s *SpectatorFetcher) GetActiveGame(ctx context.Context, summonerID string) (*models.ActiveGame, error) {
	path := "/lol/spectator/v4/active-games/by-summoner/" + url.PathEscape(summonerID)
	return requests.GetJSON[models.ActiveGame](ctx, s.client, spectatorEndpoint, path, nil, requests.ErrNotInGame)
}
