package rankservice

import (
	"context"
	"errors"
	"leaguelookup/fetcher/requests"
	"leaguelookup/lookup/services/testutil"
	"leaguelookup/pkg/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRank(t *testing.T) {
	ctx := context.Background()
	flex := models.Rank{Tier: "SILVER", Rank: "I", QueueType: "RANKED_FLEX_SR", Wins: 1, Losses: 1}
	solo := testutil.SoloRank("GOLD", "II", 60, 40)

	tests := []struct {
		name     string
		entries  []models.Rank
		expected models.Rank
	}{
		{name: "solo queue among others", entries: []models.Rank{flex, solo}, expected: solo},
		{name: "only flex", entries: []models.Rank{flex}, expected: models.Unranked()},
		{name: "no entries", entries: []models.Rank{}, expected: models.Unranked()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := new(testutil.MockRiotSource)
			source.On("GetLeagueEntries", ctx, "summ-1").Return(tt.entries, nil)

			rank, err := NewRankService(source).ResolveRank(ctx, "summ-1")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rank)
			testutil.VerifyAllMocks(t, source)
		})
	}
}

func TestResolveRankUnrankedSentinel(t *testing.T) {
	rank := SoloQueueRank(nil)

	assert.Equal(t, "N/A", rank.Tier)
	assert.Equal(t, "N/A", rank.Rank)
	assert.Equal(t, "N/A", rank.QueueType)
	assert.Equal(t, -1, rank.Wins)
	assert.Equal(t, -1, rank.Losses)
	assert.Equal(t, -1, rank.LeaguePoints)
	assert.Equal(t, -1.0, rank.WinRatio())
}

func TestResolveRankError(t *testing.T) {
	ctx := context.Background()

	source := new(testutil.MockRiotSource)
	source.On("GetLeagueEntries", ctx, "summ-1").Return(nil, requests.ErrAccountNotFound)

	_, err := NewRankService(source).ResolveRank(ctx, "summ-1")
	assert.True(t, errors.Is(err, requests.ErrAccountNotFound))
}
