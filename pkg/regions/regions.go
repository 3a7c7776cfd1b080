package regions

import "slices"

// Simple package containing the region list.
// Create the types for clarity.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "SG2", "TW2", "VN2"},
}

// IsSubRegion verifies if the platform value exists.
func IsSubRegion(region SubRegion) bool {
	for _, subRegions := range RegionList {
		if slices.Contains(subRegions, region) {
			return true
		}
	}
	return false
}

