package data

import (
	"context"
	leaguefetcher "leaguelookup/fetcher/data/league"
	matchfetcher "leaguelookup/fetcher/data/match"
	playerfetcher "leaguelookup/fetcher/data/player"
	spectatorfetcher "leaguelookup/fetcher/data/spectator"
	"leaguelookup/fetcher/requests"
	"leaguelookup/pkg/config"
	"leaguelookup/pkg/metrics"
	"leaguelookup/pkg/models"
)

// Define a main fetcher.
// It's the only thing the lookups use to reach the Riot API.
type MainFetcher struct {
	Player    *playerfetcher.PlayerFetcher
	League    *leaguefetcher.LeagueFetcher
	Spectator *spectatorfetcher.SpectatorFetcher
	Match     *matchfetcher.MatchFetcher
}

// Function to instanciate the main fetcher.
// Every fetcher shares the same client, and so the same limiter.
func CreateMainFetcher(cfg *config.Config, limiter requests.Limiter, m metrics.Metrics) *MainFetcher {
	client := requests.CreateClient(cfg.Riot, limiter, m)

	return &MainFetcher{
		Player:    playerfetcher.CreatePlayerFetcher(client),
		League:    leaguefetcher.CreateLeagueFetcher(client),
		Spectator: spectatorfetcher.CreateSpectatorFetcher(client),
		Match:     matchfetcher.CreateMatchFetcher(client, cfg.History.Queues, cfg.History.Window),
	}
}

func (f *MainFetcher) GetAccount(ctx context.Context, name string) (*models.Account, error) {
	return f.Player.GetAccount(ctx, name)
}

func (f *MainFetcher) GetLeagueEntries(ctx context.Context, summonerID string) ([]models.Rank, error) {
	return f.League.GetLeagueEntries(ctx, summonerID)
}

func (f *MainFetcher) GetActiveGame(ctx context.Context, summonerID string) (*models.ActiveGame, error) {
	return f.Spectator.GetActiveGame(ctx, summonerID)
}

func (f *MainFetcher) GetMatchList(ctx context.Context, accountID string) ([]models.MatchSummary, error) {
	return f.Match.GetMatchList(ctx, accountID)
}

func (f *MainFetcher) GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error) {
	return f.Match.GetMatchDetail(ctx, gameID)
}
