package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// Leg unlock levels
const (
	DoubleJumpLevel  = 6
	TurboBoostLevel  = 9
	EarthShakerLevel = 12
)

// DoubleJump allows a second jump mid-air
type DoubleJump struct {
	Enabled     bool
	HeightBonus float64
}

// TurboBoost is a temporary speed surge
type TurboBoost struct {
	Enabled         bool
	SpeedMultiplier float64
	Duration        int
}

// EarthShaker is a ground slam that stuns nearby enemies
type EarthShaker struct {
	Enabled   bool
	Radius    int
	StunTurns int
}

// LegCapabilities are the tiered capabilities of a leg
type LegCapabilities struct {
	DoubleJump  DoubleJump
	TurboBoost  TurboBoost
	EarthShaker EarthShaker
}

func legCapabilities(level int) LegCapabilities {
	var caps LegCapabilities
	if level >= DoubleJumpLevel {
		caps.DoubleJump = DoubleJump{Enabled: true, HeightBonus: 0.5}
	}
	if level >= TurboBoostLevel {
		caps.TurboBoost = TurboBoost{Enabled: true, SpeedMultiplier: 1.5, Duration: 3}
	}
	if level >= EarthShakerLevel {
		caps.EarthShaker = EarthShaker{Enabled: true, Radius: 3, StunTurns: 1}
	}
	return caps
}

var legSynergy = map[robot.PartCategory]float64{
	robot.CategoryArm:   0.05,
	robot.CategoryTorso: 0.10,
}

func legMetrics(s robot.Stats, _ *Part) []Metric {
	return []Metric{
		metric("mobility", float64(s.Speed)),
		metric("stability", float64(s.Defense)),
		metric("jump_power", float64(s.Speed+s.Attack)/2),
	}
}
