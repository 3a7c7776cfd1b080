package liveservice

import (
	"context"
	"errors"
	"fmt"
	"leaguelookup/fetcher/requests"
	"leaguelookup/lookup/services/testutil"
	"leaguelookup/pkg/metrics"
	"leaguelookup/pkg/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock of the rank resolver.
type mockRankResolver struct {
	mock.Mock
}

func (m *mockRankResolver) ResolveRank(ctx context.Context, summonerID string) (models.Rank, error) {
	args := m.Called(ctx, summonerID)
	return args.Get(0).(models.Rank), args.Error(1)
}

// Helper to initialize the mocks.
func setupTestService(failFast bool) (*LiveService, *testutil.MockRiotSource, *mockRankResolver, *metrics.Mock) {
	source := new(testutil.MockRiotSource)
	ranks := new(mockRankResolver)
	m := metrics.NewMock()

	service := NewLiveService(&LiveServiceDeps{
		Source:   source,
		Ranks:    ranks,
		Metrics:  m,
		FailFast: failFast,
	})
	return service, source, ranks, m
}

// Game with the given number of players, alternating teams.
func newGame(players int) *models.ActiveGame {
	game := &models.ActiveGame{GameID: 1, GameMode: "CLASSIC", GameType: "MATCHED_GAME"}
	for i := 0; i < players; i++ {
		teamID := 100
		if i%2 == 1 {
			teamID = 200
		}
		game.Participants = append(game.Participants, models.ActiveParticipant{
			TeamID:       teamID,
			SummonerName: fmt.Sprintf("player%d", i),
			SummonerID:   fmt.Sprintf("summ-player%d", i),
			ChampionID:   i + 1,
		})
	}
	return game
}

func TestAggregateLiveMatch(t *testing.T) {
	service, source, ranks, m := setupTestService(false)
	account := testutil.NewAccount("Faker123")

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetActiveGame", mock.Anything, account.ID).Return(newGame(10), nil)
	ranks.On("ResolveRank", mock.Anything, mock.Anything).Return(testutil.SoloRank("GOLD", "II", 10, 10), nil)

	match, err := service.AggregateLiveMatch(context.Background(), "Faker123")
	require.NoError(t, err)

	assert.Equal(t, "CLASSIC", match.GameMode)
	assert.Equal(t, "MATCHED_GAME", match.GameType)
	require.Len(t, match.Blue.Participants, 5)
	require.Len(t, match.Red.Participants, 5)

	for _, p := range match.Blue.Participants {
		assert.Equal(t, models.TeamBlue, p.Team)
		assert.True(t, p.Resolved())
	}
	for _, p := range match.Red.Participants {
		assert.Equal(t, models.TeamRed, p.Team)
	}

	// Game order is kept inside each roster.
	assert.Equal(t, "player0", match.Blue.Participants[0].SummonerName)
	assert.Equal(t, "player2", match.Blue.Participants[1].SummonerName)
	assert.Equal(t, "player1", match.Red.Participants[0].SummonerName)
	assert.Equal(t, "GOLD II", match.Blue.AverageRank())

	ranks.AssertNumberOfCalls(t, "ResolveRank", 10)
	assert.Equal(t, 0, m.Degraded("live"))
	testutil.VerifyAllMocks(t, source, ranks)
}

func TestAggregateLiveMatchResolvesConcurrently(t *testing.T) {
	service, source, ranks, _ := setupTestService(false)
	account := testutil.NewAccount("Faker123")

	// Every lookup blocks until all ten are in flight.
	barrier := testutil.NewBarrier(10, 2*time.Second)

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetActiveGame", mock.Anything, account.ID).Return(newGame(10), nil)
	for i := 0; i < 10; i++ {
		ranks.On("ResolveRank", mock.Anything, fmt.Sprintf("summ-player%d", i)).
			Return(testutil.SoloRank("GOLD", "II", i, 1), nil).
			Run(func(mock.Arguments) { barrier.Arrive() })
	}

	match, err := service.AggregateLiveMatch(context.Background(), "Faker123")
	require.NoError(t, err)
	assert.False(t, barrier.TimedOut(), "rank lookups were not in flight at the same time")

	// Each rank lands on its own participant, whatever order they finished.
	for _, roster := range []models.Roster{match.Blue, match.Red} {
		for _, p := range roster.Participants {
			var index int
			_, err := fmt.Sscanf(p.SummonerName, "player%d", &index)
			require.NoError(t, err)
			assert.Equal(t, index, p.Rank.Wins, p.SummonerName)
		}
	}
}

func TestAggregateLiveMatchDegrades(t *testing.T) {
	service, source, ranks, m := setupTestService(false)
	account := testutil.NewAccount("Faker123")

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetActiveGame", mock.Anything, account.ID).Return(newGame(10), nil)
	ranks.On("ResolveRank", mock.Anything, "summ-player3").Return(models.Rank{}, requests.ErrTransport)
	ranks.On("ResolveRank", mock.Anything, mock.Anything).Return(models.Unranked(), nil)

	match, err := service.AggregateLiveMatch(context.Background(), "Faker123")
	require.NoError(t, err)

	assert.Equal(t, 0, match.Blue.Unresolved())
	assert.Equal(t, 1, match.Red.Unresolved())
	assert.Equal(t, "player3", match.Red.Participants[1].SummonerName)
	assert.False(t, match.Red.Participants[1].Resolved())
	assert.Equal(t, 1, m.Degraded("live"))

	// Nobody is ranked.
	assert.Equal(t, "N/A", match.Blue.AverageRank())
}

func TestAggregateLiveMatchFailFast(t *testing.T) {
	service, source, ranks, _ := setupTestService(true)
	account := testutil.NewAccount("Faker123")

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetActiveGame", mock.Anything, account.ID).Return(newGame(10), nil)
	ranks.On("ResolveRank", mock.Anything, "summ-player3").Return(models.Rank{}, requests.ErrTransport)
	ranks.On("ResolveRank", mock.Anything, mock.Anything).Return(models.Unranked(), nil)

	match, err := service.AggregateLiveMatch(context.Background(), "Faker123")
	assert.Nil(t, match)
	assert.True(t, errors.Is(err, requests.ErrTransport))
}

func TestAggregateLiveMatchErrors(t *testing.T) {
	tests := []struct {
		name        string
		accountErr  error
		gameErr     error
		expectedErr error
	}{
		{name: "account not found", accountErr: requests.ErrAccountNotFound, expectedErr: requests.ErrAccountNotFound},
		{name: "not in game", gameErr: requests.ErrNotInGame, expectedErr: requests.ErrNotInGame},
		{name: "malformed game", gameErr: requests.ErrMalformedResponse, expectedErr: requests.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, source, ranks, _ := setupTestService(false)
			account := testutil.NewAccount("Faker123")

			if tt.accountErr != nil {
				source.On("GetAccount", mock.Anything, "Faker123").Return(nil, tt.accountErr)
			} else {
				source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
				source.On("GetActiveGame", mock.Anything, account.ID).Return(nil, tt.gameErr)
			}

			_, err := service.AggregateLiveMatch(context.Background(), "Faker123")
			assert.True(t, errors.Is(err, tt.expectedErr))
			ranks.AssertNotCalled(t, "ResolveRank", mock.Anything, mock.Anything)
			testutil.VerifyAllMocks(t, source)
		})
	}
}

func TestAggregateLiveMatchUnexpectedSize(t *testing.T) {
	service, source, ranks, _ := setupTestService(false)
	account := testutil.NewAccount("Faker123")

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetActiveGame", mock.Anything, account.ID).Return(newGame(7), nil)
	ranks.On("ResolveRank", mock.Anything, mock.Anything).Return(models.Unranked(), nil)

	match, err := service.AggregateLiveMatch(context.Background(), "Faker123")
	require.NoError(t, err)
	assert.Len(t, match.Blue.Participants, 4)
	assert.Len(t, match.Red.Participants, 3)
}

func TestAggregateLiveMatchCancelled(t *testing.T) {
	service, source, ranks, _ := setupTestService(false)
	account := testutil.NewAccount("Faker123")

	ctx, cancel := context.WithCancel(context.Background())

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetActiveGame", mock.Anything, account.ID).Return(newGame(10), nil).Run(func(mock.Arguments) { cancel() })
	ranks.On("ResolveRank", mock.Anything, mock.Anything).Return(models.Rank{}, context.Canceled)

	_, err := service.AggregateLiveMatch(ctx, "Faker123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPartitionTeams(t *testing.T) {
	participants := []models.LiveParticipant{
		{SummonerName: "a", Team: models.TeamSideOf(100)},
		{SummonerName: "b", Team: models.TeamSideOf(200)},
		{SummonerName: "c", Team: models.TeamSideOf(300)},
	}

	blue, red := PartitionTeams(participants)
	assert.Equal(t, models.TeamBlue, blue.Side)
	assert.Len(t, blue.Participants, 1)
	assert.Len(t, red.Participants, 2)
}
