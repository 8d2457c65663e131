package assembly

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
	"github.com/KirkDiggler/robot-forge/internal/parts"
)

// Policy names
const (
	PolicyBalanced    = "balanced"
	PolicyPerformance = "performance"
)

// StepTimings are the per-step durations a policy plans with
type StepTimings struct {
	MountChassis   time.Duration
	PerCorePart    time.Duration
	PerLimb        time.Duration
	PerAccessory   time.Duration
	PerChip        time.Duration
	FinalCalibrate time.Duration
}

// RatingWeights blend the chassis, parts and chips scores into a rating
type RatingWeights struct {
	Chassis float64
	Parts   float64
	Chips   float64
}

// Policy is the part selection rule plugged into the pipeline
type Policy interface {
	Name() string
	// Order returns the candidate parts in fill order, dropping any the
	// policy never installs.
	Order(candidates []*parts.Part) []*parts.Part
	Timings() StepTimings
	Weights() RatingWeights
}

type balancedPolicy struct{}

var categoryPriority = map[robot.PartCategory]int{
	robot.CategoryHead:      0,
	robot.CategoryTorso:     1,
	robot.CategoryArm:       2,
	robot.CategoryLeg:       3,
	robot.CategoryAccessory: 4,
}

// Balanced fills slots in body order: head, torso, arms, legs, accessories.
func Balanced() Policy { return balancedPolicy{} }

func (balancedPolicy) Name() string { return PolicyBalanced }

func (balancedPolicy) Order(candidates []*parts.Part) []*parts.Part {
	out := slices.Clone(candidates)
	slices.SortStableFunc(out, func(a, b *parts.Part) int {
		return cmp.Compare(categoryPriority[a.Category()], categoryPriority[b.Category()])
	})
	return out
}

func (balancedPolicy) Timings() StepTimings {
	return StepTimings{
		MountChassis:   120 * time.Second,
		PerCorePart:    90 * time.Second,
		PerLimb:        60 * time.Second,
		PerAccessory:   30 * time.Second,
		PerChip:        45 * time.Second,
		FinalCalibrate: 180 * time.Second,
	}
}

func (balancedPolicy) Weights() RatingWeights {
	return RatingWeights{Chassis: 0.3, Parts: 0.5, Chips: 0.2}
}

type performancePolicy struct{}

// Performance skips COMMON parts and installs the rarest first.
func Performance() Policy { return performancePolicy{} }

func (performancePolicy) Name() string { return PolicyPerformance }

func (performancePolicy) Order(candidates []*parts.Part) []*parts.Part {
	out := make([]*parts.Part, 0, len(candidates))
	for _, p := range candidates {
		if p.Rarity() != robot.RarityCommon {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b *parts.Part) int {
		return cmp.Compare(b.Rarity().Rank(), a.Rarity().Rank())
	})
	return out
}

func (performancePolicy) Timings() StepTimings {
	return StepTimings{
		MountChassis:   60 * time.Second,
		PerCorePart:    45 * time.Second,
		PerLimb:        30 * time.Second,
		PerAccessory:   15 * time.Second,
		PerChip:        20 * time.Second,
		FinalCalibrate: 90 * time.Second,
	}
}

func (performancePolicy) Weights() RatingWeights {
	return RatingWeights{Chassis: 0.35, Parts: 0.55, Chips: 0.10}
}

// PolicyForArchetype picks Performance for autonomous and elite builds and
// for light or flying chassis, Balanced for everything else.
func PolicyForArchetype(archetype robot.Archetype, chassis robot.ChassisType) Policy {
	switch archetype {
	case robot.ArchetypeAutonomous, robot.ArchetypeElite:
		return Performance()
	}
	switch chassis {
	case robot.ChassisLight, robot.ChassisFlying:
		return Performance()
	}
	return Balanced()
}

// PolicyByName resolves an explicit policy name, case-insensitively
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyBalanced:
		return Balanced(), nil
	case PolicyPerformance:
		return Performance(), nil
	default:
		return nil, errors.InvalidArgumentf("unknown assembly strategy %q", name)
	}
}
