package tiervalues

import (
	"fmt"
	"slices"
	"strings"
)

// Tier value used by the unranked sentinel.
const Unranked = "N/A"

var tierValues = map[string]int{
	"IRON":        0,
	"BRONZE":      10000,
	"SILVER":      20000,
	"GOLD":        30000,
	"PLATINUM":    40000,
	"EMERALD":     50000,
	"DIAMOND":     60000,
	"MASTER":      70000,
	"GRANDMASTER": 80000,
	"CHALLENGER":  90000,
}

var rankValues = map[string]int{
	"IV":  0,
	"III": 2500,
	"II":  5000,
	"I":   7500,
}

// Pre-sorted slices for better lookup.
var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}
var rankNames = []string{"IV", "III", "II", "I"}

// Tiers without divisions.
var apexTiers = map[string]string{
	"MASTER":      "MAST",
	"GRANDMASTER": "GRAND",
	"CHALLENGER":  "CHAL",
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// IsKnownTier verifies if the tier is part of the ladder.
func IsKnownTier(tier string) bool {
	_, exists := tierValues[normalize(tier)]
	return exists
}

// Calculate numeric rank from tier and division.
func CalculateRank(tier string, rank string, lp int) int {
	tier = normalize(tier)

	baseValue, exists := tierValues[tier]
	if !exists {
		return 0 // Unknown tier
	}

	rank = normalize(rank)

	divisionValue, exists := rankValues[rank]
	if !exists {
		return baseValue
	}

	// Don't add the division value if it's a highelo.
	if _, apex := apexTiers[tier]; apex {
		divisionValue = 0
	}

	if lp < 0 {
		lp = 0
	}

	return baseValue + divisionValue + lp
}

// CalculateInverseRank takes a numeric value and returns the closest tier and rank.
func CalculateInverseRank(value int) string {
	if value < 0 {
		return "IRON IV"
	}

	// Go through each tier, if the value is greater, then it's the right one.
	tierIndex := 0
	for i := len(tierNames) - 1; i >= 0; i-- {
		if value >= tierValues[tierNames[i]] {
			tierIndex = i
			break
		}
	}

	tier := tierNames[tierIndex]

	// Early return if it's a elo without division.
	if _, apex := apexTiers[tier]; apex {
		return tier
	}

	remainingValue := value - tierValues[tier]

	// Apply same logic for ranks.
	rankIndex := 0
	for i := len(rankNames) - 1; i >= 0; i-- {
		if remainingValue >= rankValues[rankNames[i]] {
			rankIndex = i
			break
		}
	}

	return fmt.Sprintf("%s %s", tier, rankNames[rankIndex])
}

// AverageRank returns the tier and rank of the mean of the scores.
// Returns the unranked value when there is nothing to average.
func AverageRank(scores []int) string {
	if len(scores) == 0 {
		return Unranked
	}

	total := 0
	for _, score := range scores {
		total += score
	}

	return CalculateInverseRank(total / len(scores))
}

// ShortTier formats a tier and division for narrow columns.
// GOLD II becomes G_II, apex tiers use a fixed abbreviation.
func ShortTier(tier string, rank string) string {
	tier = normalize(tier)
	if tier == "" || tier == Unranked {
		return Unranked
	}

	if short, apex := apexTiers[tier]; apex {
		return short
	}

	if !slices.Contains(tierNames, tier) {
		return tier
	}

	return tier[:1] + "_" + normalize(rank)
}
