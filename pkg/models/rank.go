package models

import (
	tiervalues "leaguelookup/pkg/riotvalues/tier"
)

// Rank is the standing of a player in a single queue, as returned by the league endpoint.
type Rank struct {
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	QueueType    string `json:"queueType"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	LeaguePoints int    `json:"leaguePoints"`
}

// Unranked returns the sentinel used when the player has no entry on the queue.
func Unranked() Rank {
	return Rank{
		Tier:         tiervalues.Unranked,
		Rank:         tiervalues.Unranked,
		QueueType:    tiervalues.Unranked,
		Wins:         -1,
		Losses:       -1,
		HotStreak:    false,
		LeaguePoints: -1,
	}
}

// IsRanked reports if the rank is a real ladder entry.
func (r Rank) IsRanked() bool {
	return tiervalues.IsKnownTier(r.Tier) && r.Wins != -1
}

// WinRatio returns the percentage of games won, or -1 when it can't be computed.
func (r Rank) WinRatio() float64 {
	if r.Wins == -1 || r.Wins+r.Losses <= 0 {
		return -1.0
	}
	return float64(r.Wins) / float64(r.Wins+r.Losses) * 100
}

// ShortTier is the compact tier, like G_II.
func (r Rank) ShortTier() string {
	return tiervalues.ShortTier(r.Tier, r.Rank)
}

// NumericScore places the rank on the tier scale.
func (r Rank) NumericScore() int {
	return tiervalues.CalculateRank(r.Tier, r.Rank, r.LeaguePoints)
}

// Standing classifies a win ratio against the average player.
type Standing int

const (
	StandingNA Standing = iota
	StandingBelowAverage
	StandingNeutral
	StandingAboveAverage
)

// Win ratio thresholds.
const (
	aboveAverageThreshold = 55.0
	belowAverageThreshold = 48.0
)

// ClassifyWinRatio maps a percentage to its standing.
// Both thresholds are neutral.
func ClassifyWinRatio(p float64) Standing {
	switch {
	case p == -1:
		return StandingNA
	case p > aboveAverageThreshold:
		return StandingAboveAverage
	case p < belowAverageThreshold:
		return StandingBelowAverage
	default:
		return StandingNeutral
	}
}

func (s Standing) String() string {
	switch s {
	case StandingBelowAverage:
		return "below-average"
	case StandingNeutral:
		return "neutral"
	case StandingAboveAverage:
		return "above-average"
	default:
		return "N/A"
	}
}
