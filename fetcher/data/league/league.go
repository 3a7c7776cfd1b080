package leaguefetcher

import (
	"context"
	"leaguelookup/fetcher/requests"
	"leaguelookup/pkg/models"
	"net/url"
)

const leagueEndpoint = "league"

// LeagueEntry defines the type returned by the league entries.
type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	SummonerID   string `json:"summonerId"`
	SummonerName string `json:"summonerName"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

// ToRank returns the standing kept by the lookups.
func (e LeagueEntry) ToRank() models.Rank {
	return models.Rank{
		Tier:         e.Tier,
		Rank:         e.Rank,
		QueueType:    e.QueueType,
		Wins:         e.Wins,
		Losses:       e.Losses,
		HotStreak:    e.HotStreak,
		LeaguePoints: e.LeaguePoints,
	}
}

// The league fetcher with it's client.
type LeagueFetcher struct {
	client *requests.Client
}

// Create a league fetcher.
func CreateLeagueFetcher(client *requests.Client) *LeagueFetcher {
	return &LeagueFetcher{
		client: client,
	}
}

// Get every queue entry of a summoner.
// Unranked summoners return a empty list.
func (l *LeagueFetcher) GetLeagueEntries(ctx context.Context, summonerID string) ([]models.Rank, error) {
	path := "/lol/league/v4/entries/by-summoner/" + url.PathEscape(summonerID)
	entries, err := requests.GetJSON[[]LeagueEntry](ctx, l.client, leagueEndpoint, path, nil, requests.ErrAccountNotFound)
	if err != nil {
		return nil, err
	}

	ranks := make([]models.Rank, 0, len(*entries))
	for _, entry := range *entries {
		ranks = append(ranks, entry.ToRank())
	}
	return ranks, nil
}
