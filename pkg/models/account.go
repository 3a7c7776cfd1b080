package models

// Account is a resolved summoner.
// The summoner id is used by the league and spectator endpoints, the account id by the match endpoints.
type Account struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	Puuid         string `json:"puuid"`
	Name          string `json:"name"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// UserAccount is the profile report.
type UserAccount struct {
	Account Account
	Rank    Rank
	TopRole Role
}
