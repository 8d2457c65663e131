package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// Arm unlock levels
const (
	DualWieldingLevel = 7
	PowerStrikeLevel  = 10

	maxDualWieldLevelGap = 3
)

// DualWielding lets two arms attack in the same turn
type DualWielding struct {
	Enabled        bool
	OffHandPenalty float64
}

// PowerStrike is a charged heavy hit
type PowerStrike struct {
	Enabled          bool
	DamageMultiplier float64
	Cooldown         int
}

// ArmCapabilities are the tiered capabilities of an arm
type ArmCapabilities struct {
	DualWielding DualWielding
	PowerStrike  PowerStrike
}

func armCapabilities(level int) ArmCapabilities {
	var caps ArmCapabilities
	if level >= DualWieldingLevel {
		caps.DualWielding = DualWielding{Enabled: true, OffHandPenalty: 0.25}
	}
	if level >= PowerStrikeLevel {
		caps.PowerStrike = PowerStrike{Enabled: true, DamageMultiplier: 1.5, Cooldown: 3}
	}
	return caps
}

var armSynergy = map[robot.PartCategory]float64{
	robot.CategoryTorso: 0.15,
	robot.CategoryHead:  0.12,
}

const armPairSynergy = 0.20

func armSynergyBonus(p, other *Part) float64 {
	if other.category == robot.CategoryArm {
		if p.upgradeLevel >= DualWieldingLevel && other.upgradeLevel >= DualWieldingLevel {
			return armPairSynergy
		}
		return 0
	}
	return armSynergy[other.category]
}

func armMetrics(s robot.Stats, _ *Part) []Metric {
	return []Metric{
		metric("damage_output", float64(s.Attack)),
		metric("precision", float64(s.Perception)),
		metric("handling", float64(s.Speed)),
	}
}

// DualWieldCheck is the outcome of CanDualWield
type DualWieldCheck struct {
	Capable      bool
	Requirements []string
}

// CanDualWield reports whether this arm can be paired with other for dual
// wielding, listing every unmet requirement.
func (p *Part) CanDualWield(other *Part) DualWieldCheck {
	var reqs []string

	if p.category != robot.CategoryArm {
		reqs = append(reqs, "Only arm parts can dual wield")
	}
	if other == nil || other.category != robot.CategoryArm {
		reqs = append(reqs, "Both parts must be arms")
		return DualWieldCheck{Requirements: reqs}
	}
	if p.upgradeLevel < DualWieldingLevel {
		reqs = append(reqs, "This arm needs upgrade level 7 for dual wielding")
	}
	if other.upgradeLevel < DualWieldingLevel {
		reqs = append(reqs, "Other arm needs upgrade level 7 for dual wielding")
	}
	if abs(p.upgradeLevel-other.upgradeLevel) > maxDualWieldLevelGap {
		reqs = append(reqs, "Upgrade levels must be similar (difference of 3 or less)")
	}

	return DualWieldCheck{Capable: len(reqs) == 0, Requirements: reqs}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
