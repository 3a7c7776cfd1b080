package assets

// Consts used across the package.
const (
	DDragonURL      = "https://ddragon.leagueoflegends.com/"
	DefaultLanguage = "en_US"
)

// Definition for extracting the champion data.
// The champion id is the "key", the "id" is the name key (MonkeyKing).
type fullChampion struct {
	Data map[string]championData `json:"data"`
}

type championData struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}
