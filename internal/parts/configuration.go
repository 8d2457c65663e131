package parts

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

const (
	maxLevelSpread     = 5
	maxRarityVariance  = 4.0
	ratingScale        = 5.0
	synergyRatingBonus = 0.1
	conflictPenalty    = 0.2
	maxConfigRating    = 10.0
)

// Recommendation messages emitted by ValidateConfiguration
const (
	RecommendBalanceLevels = "Balance upgrade levels across parts"
	RecommendSimilarRarity = "Use parts of similar rarity"
)

// Synergy records a positive bonus PartA grants PartB
type Synergy struct {
	PartA string  `json:"part_a"`
	PartB string  `json:"part_b"`
	Bonus float64 `json:"bonus"`
}

// ConfigurationReport is the result of validating a set of parts together
type ConfigurationReport struct {
	IsBalanced      bool      `json:"is_balanced"`
	Conflicts       []string  `json:"conflicts"`
	Synergies       []Synergy `json:"synergies"`
	Recommendations []string  `json:"recommendations"`
	OverallRating   float64   `json:"overall_rating"`
}

// ValidateConfiguration checks a set of parts for completeness, pairwise
// compatibility and balance, and rates the whole set in [0, 10].
// Nil entries are ignored.
func ValidateConfiguration(candidates []*Part) *ConfigurationReport {
	report := &ConfigurationReport{}

	parts := make([]*Part, 0, len(candidates))
	for _, p := range candidates {
		if p != nil {
			parts = append(parts, p)
		}
	}

	present := make(map[robot.PartCategory]bool, len(parts))
	for _, p := range parts {
		present[p.category] = true
	}
	for _, cat := range robot.RequiredPartCategories() {
		if !present[cat] {
			report.Conflicts = append(report.Conflicts, fmt.Sprintf("Missing required part: %s", cat))
		}
	}

	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			a, b := parts[i], parts[j]
			if !a.IsCompatibleWith(b) {
				report.Conflicts = append(report.Conflicts,
					fmt.Sprintf("Incompatible parts: %s and %s", a.name, b.name))
				continue
			}
			if bonus := a.SynergyBonus(b); bonus > 0 {
				report.Synergies = append(report.Synergies, Synergy{PartA: a.id, PartB: b.id, Bonus: bonus})
			}
		}
	}

	if levelSpread(parts) > maxLevelSpread {
		report.Recommendations = append(report.Recommendations, RecommendBalanceLevels)
	}
	if rarityVariance(parts) > maxRarityVariance {
		report.Recommendations = append(report.Recommendations, RecommendSimilarRarity)
	}

	rating := meanPerformance(parts)*ratingScale +
		synergyRatingBonus*float64(len(report.Synergies)) -
		conflictPenalty*float64(len(report.Conflicts))
	report.OverallRating = math.Max(0, math.Min(maxConfigRating, rating))
	report.IsBalanced = len(report.Conflicts) == 0

	return report
}

func levelSpread(parts []*Part) int {
	if len(parts) == 0 {
		return 0
	}
	lo, hi := parts[0].upgradeLevel, parts[0].upgradeLevel
	for _, p := range parts[1:] {
		lo = min(lo, p.upgradeLevel)
		hi = max(hi, p.upgradeLevel)
	}
	return hi - lo
}

func rarityVariance(parts []*Part) float64 {
	if len(parts) == 0 {
		return 0
	}

	var sum float64
	for _, p := range parts {
		sum += float64(p.rarity.Rank())
	}
	mean := sum / float64(len(parts))

	var sq float64
	for _, p := range parts {
		d := float64(p.rarity.Rank()) - mean
		sq += d * d
	}
	return sq / float64(len(parts))
}

// MeanPerformance is the average PerformanceScore of parts, 0 when empty
func MeanPerformance(parts []*Part) float64 {
	return meanPerformance(parts)
}

func meanPerformance(parts []*Part) float64 {
	if len(parts) == 0 {
		return 0
	}
	var total float64
	for _, p := range parts {
		total += p.PerformanceScore()
	}
	return total / float64(len(parts))
}
