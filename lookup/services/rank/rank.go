package rankservice

import (
	"context"
	"fmt"
	"leaguelookup/pkg/models"
	queuevalues "leaguelookup/pkg/riotvalues/queue"
)

// LeagueSource returns every queue entry of a summoner.
type LeagueSource interface {
	GetLeagueEntries(ctx context.Context, summonerID string) ([]models.Rank, error)
}

// RankService collapses the queue entries into the solo queue rank.
type RankService struct {
	source LeagueSource
}

// NewRankService creates a service for resolving ranks.
func NewRankService(source LeagueSource) *RankService {
	return &RankService{
		source: source,
	}
}

// ResolveRank returns the solo queue rank of the summoner.
// Players without a solo queue entry get the unranked sentinel, not a error.
func (rs *RankService) ResolveRank(ctx context.Context, summonerID string) (models.Rank, error) {
	entries, err := rs.source.GetLeagueEntries(ctx, summonerID)
	if err != nil {
		return models.Rank{}, fmt.Errorf("couldn't get the league entries of %s: %w", summonerID, err)
	}
	return SoloQueueRank(entries), nil
}

// SoloQueueRank picks the ranked solo entry from the list.
func SoloQueueRank(entries []models.Rank) models.Rank {
	for _, entry := range entries {
		if entry.QueueType == queuevalues.RankedSoloQueueType {
			return entry
		}
	}
	return models.Unranked()
}
