package assembly

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/parts"
	"github.com/KirkDiggler/robot-forge/internal/skeletons"
)

const (
	maxPerformanceParts = 10
	lowRatingThreshold  = 50.0
	maxScore            = 100.0
	chassisScoreDivisor = 5.0
	partsScoreScale     = 50.0
)

// RecommendLowRating accompanies the low rating warning
const RecommendLowRating = "Install higher rarity parts or upgrade existing ones to raise the rating"

// optimize applies the requested optimizations to the built robot and
// returns the parts that remain installed.
func optimize(opts Options, built *robot.Robot, plan *Plan, result *Result) []*parts.Part {
	installed := make([]*parts.Part, 0, len(plan.Assignment.Assigned))
	for _, a := range plan.Assignment.Assigned {
		installed = append(installed, a.Part)
	}

	if opts.OptimizePerformance && len(built.Parts) > maxPerformanceParts {
		dropped := len(built.Parts) - maxPerformanceParts
		built.Parts = built.Parts[:maxPerformanceParts]
		installed = installed[:maxPerformanceParts]
		result.Optimizations = append(result.Optimizations,
			fmt.Sprintf("Removed %d parts to stay within %d for performance", dropped, maxPerformanceParts))
	}

	if opts.OptimizeCost {
		var downgraded int
		for i := range built.Parts {
			if built.Parts[i].Part.Rarity == robot.RarityLegendary {
				built.Parts[i].Part.Rarity = robot.RarityRare
				downgraded++
			}
		}
		if downgraded > 0 {
			result.Optimizations = append(result.Optimizations,
				fmt.Sprintf("Replaced %d legendary parts with rare equivalents to reduce cost", downgraded))
		}
	}

	return installed
}

func finalize(req *Request, weights RatingWeights, built *robot.Robot, installed []*parts.Part, plan *Plan, result *Result) {
	result.Warnings = append(result.Warnings, plan.Warnings...)
	for _, u := range plan.Assignment.Unassigned {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Part %s was not installed: %s", u.Part.ID(), u.Reason))
	}
	for _, s := range plan.Assignment.Substitutions {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Substituted %s with %s in %s", s.Removed.ID(), s.Installed.ID(), s.SlotID))
	}
	for _, c := range plan.Checks {
		if !c.Passed {
			result.Warnings = append(result.Warnings, c.Message)
		}
	}

	report := parts.ValidateConfiguration(installed)
	result.Warnings = append(result.Warnings, report.Conflicts...)
	result.Recommendations = append(result.Recommendations, report.Recommendations...)

	chipScores := make([]float64, 0, len(plan.Chips))
	for _, c := range plan.Chips {
		chipScores = append(chipScores, c.Chip.PowerScore())
	}

	built.Rating = Rating(weights, req.Chassis, installed, chipScores)
	if built.Rating < lowRatingThreshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Robot rating %.1f is below %.0f", built.Rating, lowRatingThreshold))
		result.Recommendations = append(result.Recommendations, RecommendLowRating)
	}

	result.Robot = built
	result.Success = true
}

// Rating blends chassis durability, part performance and chip power into
// a score in [0, 100].
func Rating(w RatingWeights, chassis *skeletons.Skeleton, installed []*parts.Part, chipScores []float64) float64 {
	chassisScore := math.Min(maxScore, float64(chassis.EffectiveDurability())/chassisScoreDivisor)
	partsScore := parts.MeanPerformance(installed) * partsScoreScale

	var chipsScore float64
	if len(chipScores) > 0 {
		for _, s := range chipScores {
			chipsScore += s
		}
		chipsScore /= float64(len(chipScores))
	}

	return w.Chassis*chassisScore + w.Parts*partsScore + w.Chips*chipsScore
}
