package report

import (
	"bytes"
	"leaguelookup/pkg/models"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestWinRatio(t *testing.T) {
	assert.Equal(t, "N/A", WinRatio(-1))
	assert.Equal(t, "60.0%", WinRatio(60))
	assert.Equal(t, "50.0%", WinRatio(50))
}

func TestChampionName(t *testing.T) {
	names := map[int]string{22: "Ashe"}

	assert.Equal(t, "Ashe", ChampionName(names, 22))
	assert.Equal(t, "Unknown Champ", ChampionName(names, 9999))
	assert.Equal(t, "Unknown Champ", ChampionName(nil, 22))
}

func TestRank(t *testing.T) {
	rank := models.Rank{Tier: "GOLD", Rank: "II", LeaguePoints: 42, Wins: 10, Losses: 5}

	assert.Equal(t, "GOLD II (42 LP)", Rank(rank))
	assert.Equal(t, "10W 5L", Record(rank))
	assert.Equal(t, "N/A", Rank(models.Unranked()))
	assert.Equal(t, "N/A", Record(models.Unranked()))
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	PrintProfile(&buf, &models.UserAccount{
		Account: models.Account{Name: "Faker123", SummonerLevel: 412},
		Rank:    models.Unranked(),
		TopRole: models.RoleMid,
	})

	out := buf.String()
	assert.Contains(t, out, "Faker123")
	assert.Contains(t, out, "412")
	assert.Contains(t, out, "MID")
	assert.Contains(t, out, "N/A")
}

func TestPrintLiveMatch(t *testing.T) {
	var buf bytes.Buffer
	PrintLiveMatch(&buf, &models.LiveMatch{
		GameMode: "CLASSIC",
		GameType: "MATCHED_GAME",
		Blue: models.Roster{Side: models.TeamBlue, Participants: []models.LiveParticipant{
			{SummonerName: "ally", ChampionID: 22, Status: models.RankResolved, Rank: models.Rank{Tier: "GOLD", Rank: "II", Wins: 6, Losses: 4}},
		}},
		Red: models.Roster{Side: models.TeamRed, Participants: []models.LiveParticipant{
			{SummonerName: "enemy", ChampionID: 1, Status: models.RankUnresolved},
		}},
	}, map[int]string{22: "Ashe"})

	out := buf.String()
	assert.Contains(t, out, "CLASSIC")
	assert.Contains(t, out, "Blue team")
	assert.Contains(t, out, "Red team")
	assert.Contains(t, out, "Ashe")
	assert.Contains(t, out, "Unknown Champ")
	assert.Contains(t, out, "G_II")
	assert.Contains(t, out, "60.0%")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	PrintHistory(&buf, &models.HistoryReport{
		Username: "Faker123",
		Records: []models.UserMatchRecord{
			{GameID: 3, Queue: 420, Champion: 22, Role: models.RoleADC, Outcome: models.OutcomeWin},
			{GameID: 2, Queue: 400, Champion: 22, Role: models.RoleADC, Outcome: models.OutcomeUnavailable},
		},
	}, map[int]string{22: "Ashe"})

	out := buf.String()
	assert.Contains(t, out, "1W 0L")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "1 unavailable")
	assert.Contains(t, out, "Ranked Solo")
	assert.Contains(t, out, "Normal Draft")
	assert.Contains(t, out, "Unavailable")
}
