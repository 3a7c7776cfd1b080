package matchfetcher

import (
	"context"
	"leaguelookup/fetcher/requests"
	"leaguelookup/pkg/models"
	"net/url"
	"strconv"
)

const (
	matchListEndpoint   = "matchlist"
	matchDetailEndpoint = "match"
)

// The match fetcher with it's client and list window.
type MatchFetcher struct {
	client *requests.Client
	queues []int
	window int
}

// Create a instance of the match fetcher.
func CreateMatchFetcher(client *requests.Client, queues []int, window int) *MatchFetcher {
	return &MatchFetcher{
		client: client,
		queues: queues,
		window: window,
	}
}

// Get the most recent matches of the account, most recent first.
// A empty list is reported the same way as the 404.
func (m *MatchFetcher) GetMatchList(ctx context.Context, accountID string) ([]models.MatchSummary, error) {
	path := "/lol/match/v4/matchlists/by-account/" + url.PathEscape(accountID)

	params := url.Values{}
	for _, queue := range m.queues {
		params.Add("queue", strconv.Itoa(queue))
	}
	if m.window > 0 {
		params.Set("endIndex", strconv.Itoa(m.window))
	}

	list, err := requests.GetJSON[models.MatchList](ctx, m.client, matchListEndpoint, path, params, requests.ErrNoMatchHistory)
	if err != nil {
		return nil, err
	}

	if len(list.Matches) == 0 {
		return nil, requests.ErrNoMatchHistory
	}

	// The API can ignore the endIndex for short histories, but never exceed the window.
	if m.window > 0 && len(list.Matches) > m.window {
		return list.Matches[:m.window], nil
	}
	return list.Matches, nil
}

// Get the full data of a match.
func (m *MatchFetcher) GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error) {
	path := "/lol/match/v4/matches/" + strconv.FormatInt(gameID, 10)
	return requests.GetJSON[models.MatchDetail](ctx, m.client, matchDetailEndpoint, path, nil, requests.ErrMatchNotFound)
}
