package roleservice

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

// Helper to build a match list from lane/role pairs.
func matches(pairs ...[2]string) []models.MatchSummary {
	list := make([]models.MatchSummary, len(pairs))
	for i, pair := range pairs {
		list[i] = models.MatchSummary{GameID: int64(i + 1), Queue: 420, Lane: pair[0], Role: pair[1]}
	}
	return list
}

var (
	carry   = [2]string{"BOTTOM", "DUO_CARRY"}
	support = [2]string{"BOTTOM", "DUO_SUPPORT"}
	top     = [2]string{"TOP", "SOLO"}
	jungle  = [2]string{"JUNGLE", "NONE"}
	mid     = [2]string{"MID", "SOLO"}
)

func TestTopRole(t *testing.T) {
	tests := []struct {
		name     string
		matches  []models.MatchSummary
		expected models.Role
	}{
		{name: "bottom tie goes to support", matches: matches(carry, carry, carry, support, support, support), expected: models.RoleSupport},
		{name: "bottom carry", matches: matches(carry, carry, support, top), expected: models.RoleADC},
		{name: "bottom support", matches: matches(support, support, carry, mid), expected: models.RoleSupport},
		{name: "bottom role other than carry is support", matches: matches([2]string{"BOTTOM", "SOLO"}, [2]string{"BOTTOM", "NONE"}, carry), expected: models.RoleSupport},
		{name: "single lane", matches: matches(jungle, jungle, top), expected: models.RoleJungle},
		{name: "bottom split doesn't reduce the lane count", matches: matches(carry, support, mid), expected: models.RoleSupport},
		{name: "lane tie keeps the most recent", matches: matches(mid, top, top, mid), expected: models.RoleMid},
		{name: "lane tie keeps the most recent bottom", matches: matches(carry, top, top, carry), expected: models.RoleADC},
		{name: "empty history", matches: nil, expected: models.RoleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role := CountRoles(tt.matches).TopRole()
			assert.Equal(t, tt.expected, role)

			// Same input, same answer.
			assert.Equal(t, role, CountRoles(tt.matches).TopRole())
		})
	}
}

func TestCountRoles(t *testing.T) {
	count := CountRoles(matches(carry, support, support, top))

	assert.Equal(t, 3, count.Lanes["BOTTOM"])
	assert.Equal(t, 1, count.Lanes["TOP"])
	assert.Equal(t, 1, count.Carry)
	assert.Equal(t, 2, count.Support)
}

func TestDetermineRole(t *testing.T) {
	assert.Equal(t, models.RoleADC, DetermineRole("BOTTOM", "DUO_CARRY"))
	assert.Equal(t, models.RoleSupport, DetermineRole("BOTTOM", "DUO_SUPPORT"))
	assert.Equal(t, models.RoleSupport, DetermineRole("BOTTOM", "DUO"))
	assert.Equal(t, models.RoleTop, DetermineRole("TOP", "SOLO"))
	assert.Equal(t, models.Role("NONE"), DetermineRole("NONE", "DUO"))
}

func TestClassifyTopRole(t *testing.T) {
	ctx := context.Background()

	t.Run("classified", func(t *testing.T) {
		source := new(testutil.MockRiotSource)
		source.On("GetMatchList", ctx, "acc-1").Return(matches(top, top, mid), nil)

		role, err := NewRoleService(source).ClassifyTopRole(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, models.RoleTop, role)
		testutil.VerifyAllMocks(t, source)
	})

	t.Run("no history is unknown", func(t *testing.T) {
		source := new(testutil.MockRiotSource)
		source.On("GetMatchList", ctx, "acc-1").Return(nil, requests.ErrNoMatchHistory)

		role, err := NewRoleService(source).ClassifyTopRole(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, models.RoleUnknown, role)
	})

	t.Run("other errors are returned", func(t *testing.T) {
		source := new(testutil.MockRiotSource)
		source.On("GetMatchList", ctx, "acc-1").Return(nil, requests.ErrTransport)

		_, err := NewRoleService(source).ClassifyTopRole(ctx, "acc-1")
		assert.True(t, errors.Is(err, requests.ErrTransport))
	})
}
