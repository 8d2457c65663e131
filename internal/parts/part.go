package parts

import (
	"math"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

const (
	upgradeRestoreRatio  = 0.10
	energyScalePerLevel  = 0.05
	baseDurability       = 100
	durabilityPerStat    = 2
	durabilityPerRarityX = 50
)

// Part is a constructed robot part. Use Create or FromRecord to build one.
type Part struct {
	id        string
	name      string
	category  robot.PartCategory
	rarity    robot.Rarity
	base      robot.Stats
	abilities []robot.Ability

	upgradeLevel      int
	currentDurability int
	maxDurability     int
}

// ID returns the part identifier
func (p *Part) ID() string { return p.id }

// Name returns the display name
func (p *Part) Name() string { return p.name }

// Category returns the body section the part fits
func (p *Part) Category() robot.PartCategory { return p.category }

// Rarity returns the part's rarity tier
func (p *Part) Rarity() robot.Rarity { return p.rarity }

// BaseStats returns the stats the part was built with
func (p *Part) BaseStats() robot.Stats { return p.base }

// UpgradeLevel returns the current upgrade level
func (p *Part) UpgradeLevel() int { return p.upgradeLevel }

// CurrentDurability returns the remaining durability
func (p *Part) CurrentDurability() int { return p.currentDurability }

// MaxDurability returns the durability ceiling fixed at construction
func (p *Part) MaxDurability() int { return p.maxDurability }

// Abilities returns a copy of every ability the part carries
func (p *Part) Abilities() []robot.Ability {
	out := make([]robot.Ability, len(p.abilities))
	copy(out, p.abilities)
	return out
}

// MaxUpgradeLevel returns the cap for the part's rarity
func (p *Part) MaxUpgradeLevel() int {
	return p.rarity.MaxUpgradeLevel()
}

// DurabilityRatio is current over max durability, in [0, 1]
func (p *Part) DurabilityRatio() float64 {
	if p.maxDurability <= 0 {
		return 0
	}
	return float64(p.currentDurability) / float64(p.maxDurability)
}

func maxDurabilityFor(stats robot.Stats, rarity robot.Rarity) int {
	total := stats.Attack + stats.Defense + stats.Speed
	return int(math.Floor(float64(baseDurability+total*durabilityPerStat) + rarity.Multiplier()*durabilityPerRarityX))
}

// EffectiveStats scales the base stats by rarity, upgrade level and wear.
// Energy consumption grows with upgrade level only.
func (p *Part) EffectiveStats() robot.Stats {
	return robot.Stats{
		Attack:            p.scaleStat(p.base.Attack),
		Defense:           p.scaleStat(p.base.Defense),
		Speed:             p.scaleStat(p.base.Speed),
		Perception:        p.scaleStat(p.base.Perception),
		EnergyConsumption: int(math.Ceil(float64(p.base.EnergyConsumption) * (1 + float64(p.upgradeLevel)*energyScalePerLevel))),
	}
}

func (p *Part) scaleStat(base int) int {
	return int(math.Floor(float64(base) * p.rarity.Multiplier() * robot.UpgradeMultiplier(p.upgradeLevel) * p.DurabilityRatio()))
}

// Upgrade raises the level by one and restores a tenth of max durability.
// At the rarity cap it returns false and changes nothing.
func (p *Part) Upgrade() bool {
	if p.upgradeLevel >= p.MaxUpgradeLevel() {
		return false
	}

	p.upgradeLevel++
	restore := int(math.Floor(float64(p.maxDurability) * upgradeRestoreRatio))
	p.currentDurability = min(p.maxDurability, p.currentDurability+restore)

	return true
}

// PerformMaintenance restores quality times the missing durability.
// Quality is clamped into [0, 1].
func (p *Part) PerformMaintenance(quality float64) {
	if math.IsNaN(quality) {
		return
	}
	quality = math.Max(0, math.Min(1, quality))

	missing := p.maxDurability - p.currentDurability
	restored := int(math.Floor(quality * float64(missing)))
	p.currentDurability = min(p.maxDurability, p.currentDurability+restored)
}

// IsCompatibleWith reports whether two parts can be fitted together.
// Parts of the same category never are; neither are ULTRA_RARE and COMMON.
func (p *Part) IsCompatibleWith(other *Part) bool {
	if other == nil || p.category == other.category {
		return false
	}
	return !rarityClash(p.rarity, other.rarity)
}

func rarityClash(a, b robot.Rarity) bool {
	return (a == robot.RarityUltraRare && b == robot.RarityCommon) ||
		(a == robot.RarityCommon && b == robot.RarityUltraRare)
}

// ToRecord flattens the part for storage
func (p *Part) ToRecord() robot.PartRecord {
	return robot.PartRecord{
		ID:                p.id,
		Category:          p.category,
		Rarity:            p.rarity,
		Name:              p.name,
		Stats:             p.base,
		Abilities:         p.Abilities(),
		UpgradeLevel:      p.upgradeLevel,
		CurrentDurability: p.currentDurability,
		MaxDurability:     p.maxDurability,
	}
}
