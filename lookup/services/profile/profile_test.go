package profileservice

import (
	"context"
	"errors"
	"leaguelookup/fetcher/requests"
	rankservice "leaguelookup/lookup/services/rank"
	roleservice "leaguelookup/lookup/services/role"
	"leaguelookup/lookup/services/testutil"
	"leaguelookup/pkg/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Helper to build the service over the real rank and role services.
func setupTestService() (*ProfileService, *testutil.MockRiotSource) {
	source := new(testutil.MockRiotSource)
	service := NewProfileService(&ProfileServiceDeps{
		Source: source,
		Ranks:  rankservice.NewRankService(source),
		Roles:  roleservice.NewRoleService(source),
	})
	return service, source
}

func TestLookupProfileUnranked(t *testing.T) {
	service, source := setupTestService()
	account := testutil.NewAccount("Faker123")

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetLeagueEntries", mock.Anything, account.ID).Return([]models.Rank{}, nil)
	source.On("GetMatchList", mock.Anything, account.AccountID).Return([]models.MatchSummary{
		{GameID: 1, Lane: "MID", Role: "SOLO"},
	}, nil)

	profile, err := service.LookupProfile(context.Background(), "Faker123")
	require.NoError(t, err)

	assert.Equal(t, models.Unranked(), profile.Rank)
	assert.Equal(t, models.RoleMid, profile.TopRole)
	assert.Equal(t, *account, profile.Account)
	testutil.VerifyAllMocks(t, source)
}

func TestLookupProfile(t *testing.T) {
	service, source := setupTestService()
	account := testutil.NewAccount("Faker123")
	solo := testutil.SoloRank("CHALLENGER", "I", 300, 200)

	source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
	source.On("GetLeagueEntries", mock.Anything, account.ID).Return([]models.Rank{solo}, nil)
	source.On("GetMatchList", mock.Anything, account.AccountID).Return(nil, requests.ErrNoMatchHistory)

	profile, err := service.LookupProfile(context.Background(), "Faker123")
	require.NoError(t, err)

	assert.Equal(t, solo, profile.Rank)
	assert.Equal(t, 60.0, profile.Rank.WinRatio())
	assert.Equal(t, models.RoleUnknown, profile.TopRole)
}

func TestLookupProfileErrors(t *testing.T) {
	t.Run("account not found", func(t *testing.T) {
		service, source := setupTestService()
		source.On("GetAccount", mock.Anything, "nobody").Return(nil, requests.ErrAccountNotFound)

		_, err := service.LookupProfile(context.Background(), "nobody")
		assert.True(t, errors.Is(err, requests.ErrAccountNotFound))
		source.AssertNotCalled(t, "GetLeagueEntries", mock.Anything, mock.Anything)
	})

	t.Run("rank fails", func(t *testing.T) {
		service, source := setupTestService()
		account := testutil.NewAccount("Faker123")

		source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
		source.On("GetLeagueEntries", mock.Anything, account.ID).Return(nil, requests.ErrMalformedResponse)
		source.On("GetMatchList", mock.Anything, account.AccountID).Return([]models.MatchSummary{}, nil).Maybe()

		_, err := service.LookupProfile(context.Background(), "Faker123")
		assert.True(t, errors.Is(err, requests.ErrMalformedResponse))
	})

	t.Run("role fails", func(t *testing.T) {
		service, source := setupTestService()
		account := testutil.NewAccount("Faker123")

		source.On("GetAccount", mock.Anything, "Faker123").Return(account, nil)
		source.On("GetLeagueEntries", mock.Anything, account.ID).Return([]models.Rank{}, nil).Maybe()
		source.On("GetMatchList", mock.Anything, account.AccountID).Return(nil, &requests.StatusError{StatusCode: 500})

		_, err := service.LookupProfile(context.Background(), "Faker123")
		assert.True(t, errors.Is(err, requests.ErrUnexpectedStatus))
	})
}
