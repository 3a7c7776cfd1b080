package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"leaguelookup/pkg/messages"
	"leaguelookup/pkg/models"
	queuevalues "leaguelookup/pkg/riotvalues/queue"
)

var (
	cAbove   = color.New(color.FgGreen)
	cBelow   = color.New(color.FgRed)
	cHeader  = color.New(color.FgCyan, color.Bold)
	cWin     = color.New(color.FgGreen, color.Bold)
	cLoss    = color.New(color.FgRed, color.Bold)
	cMuted   = color.New(color.Faint)
	cStreak  = color.New(color.FgYellow)
	notAvail = "N/A"
)

// Shared table layout.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// WinRatio formats a percentage, colored by its standing.
func WinRatio(p float64) string {
	standing := models.ClassifyWinRatio(p)
	if standing == models.StandingNA {
		return notAvail
	}

	text := fmt.Sprintf("%.1f%%", p)
	switch standing {
	case models.StandingAboveAverage:
		return cAbove.Sprint(text)
	case models.StandingBelowAverage:
		return cBelow.Sprint(text)
	default:
		return text
	}
}

// ChampionName returns the name of the champion, or the unknown placeholder.
func ChampionName(names map[int]string, id int) string {
	if name, ok := names[id]; ok {
		return name
	}
	return messages.UnknownChampion
}

// Rank formats the tier, division and points.
func Rank(r models.Rank) string {
	if !r.IsRanked() {
		return notAvail
	}
	return fmt.Sprintf("%s %s (%d LP)", r.Tier, r.Rank, r.LeaguePoints)
}

// Record formats the wins and losses.
func Record(r models.Rank) string {
	if !r.IsRanked() {
		return notAvail
	}
	return fmt.Sprintf("%dW %dL", r.Wins, r.Losses)
}

// PrintProfile prints the profile table.
func PrintProfile(w io.Writer, profile *models.UserAccount) {
	fmt.Fprintf(w, "\n%s\n\n", cHeader.Sprint(profile.Account.Name))

	hotStreak := "No"
	if profile.Rank.HotStreak {
		hotStreak = cStreak.Sprint("Yes")
	}

	table := newTable(w)
	table.Header("LEVEL", "RANK", "W/L", "WIN RATIO", "HOT STREAK", "MAIN ROLE")
	table.Append(
		strconv.Itoa(profile.Account.SummonerLevel),
		Rank(profile.Rank),
		Record(profile.Rank),
		WinRatio(profile.Rank.WinRatio()),
		hotStreak,
		string(profile.TopRole),
	)
	table.Render()
}

// PrintLiveMatch prints a table for each team.
func PrintLiveMatch(w io.Writer, match *models.LiveMatch, champions map[int]string) {
	fmt.Fprintf(w, "\n%s  |  %s\n", cHeader.Sprint(match.GameMode), match.GameType)

	for _, roster := range []models.Roster{match.Blue, match.Red} {
		fmt.Fprintf(w, "\n%s team  |  Average rank: %s\n\n", roster.Side, roster.AverageRank())

		table := newTable(w)
		table.Header("SUMMONER", "CHAMPION", "RANK", "TIER", "W/L", "WIN RATIO")
		for _, p := range roster.Participants {
			if !p.Resolved() {
				table.Append(p.SummonerName, ChampionName(champions, p.ChampionID),
					cMuted.Sprint("?"), cMuted.Sprint("?"), cMuted.Sprint("?"), cMuted.Sprint("?"))
				continue
			}
			table.Append(
				p.SummonerName,
				ChampionName(champions, p.ChampionID),
				Rank(p.Rank),
				p.Rank.ShortTier(),
				Record(p.Rank),
				WinRatio(p.Rank.WinRatio()),
			)
		}
		table.Render()
	}
}

// Outcome formats the result of a match.
func Outcome(o models.Outcome) string {
	switch o {
	case models.OutcomeWin:
		return cWin.Sprint(o.String())
	case models.OutcomeLoss:
		return cLoss.Sprint(o.String())
	default:
		return cMuted.Sprint(o.String())
	}
}

// PrintHistory prints the history summary and its matches.
func PrintHistory(w io.Writer, report *models.HistoryReport, champions map[int]string) {
	fmt.Fprintf(w, "\n%s  |  %dW %dL  |  Win ratio: %s",
		cHeader.Sprint(report.Username), report.Wins(), report.Losses(), WinRatio(report.WinRatio()))
	if unavailable := report.Unavailable(); unavailable > 0 {
		fmt.Fprintf(w, "  |  %d unavailable", unavailable)
	}
	fmt.Fprint(w, "\n\n")

	table := newTable(w)
	table.Header("MATCH", "QUEUE", "CHAMPION", "ROLE", "OUTCOME")
	for _, record := range report.Records {
		table.Append(
			strconv.FormatInt(record.GameID, 10),
			queuevalues.QueueName(record.Queue),
			ChampionName(champions, record.Champion),
			string(record.Role),
			Outcome(record.Outcome),
		)
	}
	table.Render()
}
