package models

// MatchList is the response of the match list endpoint.
type MatchList struct {
	Matches    []MatchSummary `json:"matches"`
	StartIndex int            `json:"startIndex"`
	EndIndex   int            `json:"endIndex"`
	TotalGames int            `json:"totalGames"`
}

// MatchSummary is a single entry of the match list.
type MatchSummary struct {
	GameID    int64  `json:"gameId"`
	Queue     int    `json:"queue"`
	Season    int    `json:"season"`
	Role      string `json:"role"`
	Lane      string `json:"lane"`
	Champion  int    `json:"champion"`
	Timestamp int64  `json:"timestamp"`
}

// MatchDetail contains the parts of a match used to find who won.
type MatchDetail struct {
	GameID                int64                 `json:"gameId"`
	QueueID               int                   `json:"queueId"`
	GameMode              string                `json:"gameMode"`
	GameDuration          int                   `json:"gameDuration"`
	Teams                 []MatchTeam           `json:"teams"`
	Participants          []MatchParticipant    `json:"participants"`
	ParticipantIdentities []ParticipantIdentity `json:"participantIdentities"`
}

// MatchTeam holds the result of one side.
// Win is "Win" or "Fail".
type MatchTeam struct {
	TeamID int    `json:"teamId"`
	Win    string `json:"win"`
}

// MatchParticipant is a roster entry of the match.
type MatchParticipant struct {
	ParticipantID int `json:"participantId"`
	TeamID        int `json:"teamId"`
	ChampionID    int `json:"championId"`
}

// ParticipantIdentity links a participant to the player account.
type ParticipantIdentity struct {
	ParticipantID int           `json:"participantId"`
	Player        MatchIdentity `json:"player"`
}

// MatchIdentity is the player data of an identity.
type MatchIdentity struct {
	AccountID    string `json:"accountId"`
	SummonerName string `json:"summonerName"`
	SummonerID   string `json:"summonerId"`
}
