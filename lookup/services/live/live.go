package liveservice

import (
	"context"
	"fmt"
	"leaguelookup/pkg/logger"
	"leaguelookup/pkg/metrics"
	"leaguelookup/pkg/models"

	"golang.org/x/sync/errgroup"
)

// Players on a summoner's rift game.
const expectedParticipants = 10

// LiveSource resolves the account and its active game.
type LiveSource interface {
	GetAccount(ctx context.Context, name string) (*models.Account, error)
	GetActiveGame(ctx context.Context, summonerID string) (*models.ActiveGame, error)
}

// RankResolver returns the solo queue rank of a summoner.
type RankResolver interface {
	ResolveRank(ctx context.Context, summonerID string) (models.Rank, error)
}

// LiveService builds the live match report.
type LiveService struct {
	source   LiveSource
	ranks    RankResolver
	logger   *logger.NewLogger
	metrics  metrics.Metrics
	failFast bool
}

type LiveServiceDeps struct {
	Source  LiveSource
	Ranks   RankResolver
	Logger  *logger.NewLogger
	Metrics metrics.Metrics

	// Abort the whole report when a single rank can't be resolved.
	FailFast bool
}

// NewLiveService creates a service for the live match lookups.
func NewLiveService(deps *LiveServiceDeps) *LiveService {
	ls := &LiveService{
		source:   deps.Source,
		ranks:    deps.Ranks,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		failFast: deps.FailFast,
	}
	if ls.logger == nil {
		ls.logger = logger.Nop()
	}
	if ls.metrics == nil {
		ls.metrics = metrics.Nop{}
	}
	return ls
}

// AggregateLiveMatch returns the ranked rosters of the game the player is in.
func (ls *LiveService) AggregateLiveMatch(ctx context.Context, username string) (*models.LiveMatch, error) {
	account, err := ls.source.GetAccount(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("couldn't resolve the account %s: %w", username, err)
	}

	game, err := ls.source.GetActiveGame(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("couldn't get the active game of %s: %w", username, err)
	}

	if len(game.Participants) != expectedParticipants {
		ls.logger.Warnf("Game %d has %d participants, expected %d", game.GameID, len(game.Participants), expectedParticipants)
	}

	participants := make([]models.LiveParticipant, len(game.Participants))
	for i, p := range game.Participants {
		participants[i] = models.LiveParticipant{
			SummonerName: p.SummonerName,
			SummonerID:   p.SummonerID,
			ChampionID:   p.ChampionID,
			Team:         models.TeamSideOf(p.TeamID),
			Status:       models.RankUnresolved,
		}
	}

	if err := ls.resolveRanks(ctx, participants); err != nil {
		return nil, err
	}

	blue, red := PartitionTeams(participants)
	return &models.LiveMatch{
		GameMode: game.GameMode,
		GameType: game.GameType,
		Blue:     blue,
		Red:      red,
	}, nil
}

// Resolve every rank at once, each goroutine writes only its own slot.
func (ls *LiveService) resolveRanks(ctx context.Context, participants []models.LiveParticipant) error {
	if ls.failFast {
		g, gCtx := errgroup.WithContext(ctx)
		for i := range participants {
			g.Go(func() error {
				rank, err := ls.ranks.ResolveRank(gCtx, participants[i].SummonerID)
				if err != nil {
					return fmt.Errorf("couldn't resolve the rank of %s: %w", participants[i].SummonerName, err)
				}
				participants[i].Rank = rank
				participants[i].Status = models.RankResolved
				return nil
			})
		}
		return g.Wait()
	}

	var g errgroup.Group
	for i := range participants {
		g.Go(func() error {
			rank, err := ls.ranks.ResolveRank(ctx, participants[i].SummonerID)
			if err != nil {
				ls.logger.Warnf("Couldn't resolve the rank of %s: %v", participants[i].SummonerName, err)
				ls.metrics.IncDegraded("live")
				return nil
			}
			participants[i].Rank = rank
			participants[i].Status = models.RankResolved
			return nil
		})
	}
	_ = g.Wait()

	// A cancelled lookup is not a degraded one.
	return ctx.Err()
}

// PartitionTeams splits the participants by side, keeping the game order.
func PartitionTeams(participants []models.LiveParticipant) (models.Roster, models.Roster) {
	blue := models.Roster{Side: models.TeamBlue}
	red := models.Roster{Side: models.TeamRed}

	for _, p := range participants {
		if p.Team == models.TeamBlue {
			blue.Participants = append(blue.Participants, p)
		} else {
			red.Participants = append(red.Participants, p)
		}
	}
	return blue, red
}
