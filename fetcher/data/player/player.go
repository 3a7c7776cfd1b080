package playerfetcher

import (
	"context"
	"leaguelookup/fetcher/requests"
	"leaguelookup/pkg/models"
	"net/url"
)

const summonerEndpoint = "summoner"

// The player fetcher with it's client.
type PlayerFetcher struct {
	client *requests.Client // Pointer to the client, since it's shared.
}

// Create a player fetcher.
func CreatePlayerFetcher(client *requests.Client) *PlayerFetcher {
	return &PlayerFetcher{
		client: client,
	}
}

// Get the summoner by it's name.
// Names can have spaces and non ascii letters, so they are escaped.
func (p *PlayerFetcher) GetAccount(ctx context.Context, name string) (*models.Account, error) {
	path := "/lol/summoner/v4/summoners/by-name/" + url.PathEscape(name)
	return requests.GetJSON[models.Account](ctx, p.client, summonerEndpoint, path, nil, requests.ErrAccountNotFound)
}
