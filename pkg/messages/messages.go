package messages

const (
	BadStatusCodeMsg = "API returned status code %d on URL %s"
	FailedToParseMsg = "failed to parse API response"
	RequestFailedMsg = "API request failed on URL %s"
	UnknownChampion  = "Unknown Champ"
)
