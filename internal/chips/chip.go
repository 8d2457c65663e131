// Package chips implements the expansion chip capability model. Chips are
// keyed by effect instead of body category and have no durability.
package chips

import (
	"math"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

const (
	maxPowerScore         = 100.0
	energyScalePerLevel   = 0.05
	durationLevelsPerTurn = 5
	cooldownLevelsPerTurn = 4
)

// Chip is a constructed expansion chip. Use Create or FromRecord.
type Chip struct {
	id           string
	name         string
	description  string
	effect       robot.ChipEffect
	rarity       robot.Rarity
	params       robot.ChipParams
	upgradeLevel int
}

// ID returns the chip identifier
func (c *Chip) ID() string { return c.id }

// Name returns the display name
func (c *Chip) Name() string { return c.name }

// Effect returns the chip's effect tag
func (c *Chip) Effect() robot.ChipEffect { return c.effect }

// Rarity returns the chip's rarity tier
func (c *Chip) Rarity() robot.Rarity { return c.rarity }

// UpgradeLevel returns the current upgrade level
func (c *Chip) UpgradeLevel() int { return c.upgradeLevel }

// Params returns the base effect parameters
func (c *Chip) Params() robot.ChipParams { return c.params }

// EffectiveValue scales the effect value by rarity and upgrade level
func (c *Chip) EffectiveValue() float64 {
	return c.params.Value * c.rarity.Multiplier() * robot.UpgradeMultiplier(c.upgradeLevel)
}

// EffectiveDuration gains a turn every five upgrade levels
func (c *Chip) EffectiveDuration() int {
	return c.params.Duration + c.upgradeLevel/durationLevelsPerTurn
}

// EffectiveCooldown loses a turn every four upgrade levels, never below one
func (c *Chip) EffectiveCooldown() int {
	return max(1, c.params.Cooldown-c.upgradeLevel/cooldownLevelsPerTurn)
}

// EffectiveEnergyCost grows five percent per upgrade level, rounded up
func (c *Chip) EffectiveEnergyCost() int {
	return int(math.Ceil(float64(c.params.EnergyCost) * (1 + float64(c.upgradeLevel)*energyScalePerLevel)))
}

// Upgrade raises the level by one, returning false at the rarity cap
func (c *Chip) Upgrade() bool {
	if c.upgradeLevel >= c.rarity.MaxUpgradeLevel() {
		return false
	}
	c.upgradeLevel++
	return true
}

// PowerScore rates the chip in [0, 100]
func (c *Chip) PowerScore() float64 {
	score := c.rarity.Multiplier() * robot.UpgradeMultiplier(c.upgradeLevel) / 3 * 100
	return math.Min(maxPowerScore, score)
}

// IsCompatibleWith reports whether two chips can be installed together
func (c *Chip) IsCompatibleWith(other *Chip) bool {
	if other == nil || c.effect == other.effect {
		return false
	}
	a, b := c.rarity, other.rarity
	return (a != robot.RarityUltraRare || b != robot.RarityCommon) &&
		(a != robot.RarityCommon || b != robot.RarityUltraRare)
}

// ToRecord flattens the chip for storage
func (c *Chip) ToRecord() robot.ChipRecord {
	return robot.ChipRecord{
		ID:           c.id,
		Effect:       c.effect,
		Rarity:       c.rarity,
		Name:         c.name,
		Description:  c.description,
		Params:       c.params,
		UpgradeLevel: c.upgradeLevel,
	}
}
