package testutil

import (
	"context"
	"leaguelookup/pkg/models"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock of the Riot API, implements every source used by the services.
// ============================================================================

type MockRiotSource struct {
	mock.Mock
}

func (m *MockRiotSource) GetAccount(ctx context.Context, name string) (*models.Account, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockRiotSource) GetLeagueEntries(ctx context.Context, summonerID string) ([]models.Rank, error) {
	args := m.Called(ctx, summonerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rank), args.Error(1)
}

func (m *MockRiotSource) GetActiveGame(ctx context.Context, summonerID string) (*models.ActiveGame, error) {
	args := m.Called(ctx, summonerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActiveGame), args.Error(1)
}

func (m *MockRiotSource) GetMatchList(ctx context.Context, accountID string) ([]models.MatchSummary, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MatchSummary), args.Error(1)
}

func (m *MockRiotSource) GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchDetail), args.Error(1)
}

// ============================================================================
// Mock of the match detail cache.
// ============================================================================

type MockMatchCache struct {
	mock.Mock
}

func (m *MockMatchCache) GetMatchDetail(ctx context.Context, gameID int64) (*models.MatchDetail, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MatchDetail), args.Error(1)
}

func (m *MockMatchCache) SetMatchDetail(ctx context.Context, detail *models.MatchDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

// ============================================================================
// Fixtures.
// ============================================================================

// NewAccount returns a account with ids derived from the name.
func NewAccount(name string) *models.Account {
	return &models.Account{
		ID:            "summ-" + name,
		AccountID:     "acc-" + name,
		Puuid:         "puuid-" + name,
		Name:          name,
		SummonerLevel: 100,
	}
}

// SoloRank returns a solo queue entry.
func SoloRank(tier string, division string, wins int, losses int) models.Rank {
	return models.Rank{
		Tier:         tier,
		Rank:         division,
		QueueType:    "RANKED_SOLO_5x5",
		Wins:         wins,
		Losses:       losses,
		LeaguePoints: 50,
	}
}
