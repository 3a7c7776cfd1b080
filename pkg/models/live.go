package models

import (
	tiervalues "leaguelookup/pkg/riotvalues/tier"
)

// Team id of the blue side on the Riot API.
const BlueTeamID = 100

// TeamSide splits a match in two groups.
type TeamSide int

const (
	TeamBlue TeamSide = iota
	TeamRed
)

// TeamSideOf maps a Riot team id to a side, anything besides 100 is red.
func TeamSideOf(teamID int) TeamSide {
	if teamID == BlueTeamID {
		return TeamBlue
	}
	return TeamRed
}

func (t TeamSide) String() string {
	if t == TeamBlue {
		return "Blue"
	}
	return "Red"
}

// ActiveGame is the response of the spectator endpoint.
type ActiveGame struct {
	GameID       int64               `json:"gameId"`
	GameMode     string              `json:"gameMode"`
	GameType     string              `json:"gameType"`
	GameQueueID  int                 `json:"gameQueueConfigId"`
	GameLength   int                 `json:"gameLength"`
	Participants []ActiveParticipant `json:"participants"`
}

// ActiveParticipant is a player of the active game.
type ActiveParticipant struct {
	TeamID       int    `json:"teamId"`
	SummonerName string `json:"summonerName"`
	SummonerID   string `json:"summonerId"`
	ChampionID   int    `json:"championId"`
}

// RankStatus tells if the rank lookup of a participant succeeded.
type RankStatus int

const (
	RankUnresolved RankStatus = iota
	RankResolved
)

// LiveParticipant is a roster entry enriched with the rank.
// Rank is only meaningful when Status is RankResolved.
type LiveParticipant struct {
	SummonerName string
	SummonerID   string
	ChampionID   int
	Team         TeamSide
	Status       RankStatus
	Rank         Rank
}

// Resolved reports if the rank could be fetched.
func (p LiveParticipant) Resolved() bool {
	return p.Status == RankResolved
}

// Roster is one of the two teams of a live match.
type Roster struct {
	Side         TeamSide
	Participants []LiveParticipant
}

// AverageRank of the resolved and ranked members.
func (r Roster) AverageRank() string {
	var scores []int
	for _, p := range r.Participants {
		if !p.Resolved() || !p.Rank.IsRanked() {
			continue
		}
		scores = append(scores, p.Rank.NumericScore())
	}
	return tiervalues.AverageRank(scores)
}

// Unresolved counts the members without rank data.
func (r Roster) Unresolved() int {
	total := 0
	for _, p := range r.Participants {
		if !p.Resolved() {
			total++
		}
	}
	return total
}

// LiveMatch is the live game report.
type LiveMatch struct {
	GameMode string
	GameType string
	Blue     Roster
	Red      Roster
}
