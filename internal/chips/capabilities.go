package chips

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// Capability is the tiered bonus an effect unlocks at a fixed level
type Capability struct {
	Name    string
	Level   int
	Enabled bool
}

type tier struct {
	name  string
	level int
}

var effectTiers = map[robot.ChipEffect]tier{
	robot.EffectAttackBuff:       {name: "overdrive", level: 5},
	robot.EffectDefenseBuff:      {name: "fortress", level: 5},
	robot.EffectSpeedBuff:        {name: "afterburner", level: 6},
	robot.EffectEnergyEfficiency: {name: "regenerator", level: 8},
	robot.EffectCriticalBoost:    {name: "executioner", level: 8},
	robot.EffectShieldGenerator:  {name: "barrier_pulse", level: 10},
}

// Capability returns the effect's tiered capability for the current level
func (c *Chip) Capability() Capability {
	t := effectTiers[c.effect]
	return Capability{Name: t.name, Level: t.level, Enabled: c.upgradeLevel >= t.level}
}

var effectSynergy = map[robot.ChipEffect]map[robot.ChipEffect]float64{
	robot.EffectAttackBuff:       {robot.EffectCriticalBoost: 0.15},
	robot.EffectCriticalBoost:    {robot.EffectAttackBuff: 0.10},
	robot.EffectDefenseBuff:      {robot.EffectShieldGenerator: 0.12},
	robot.EffectShieldGenerator:  {robot.EffectDefenseBuff: 0.12},
	robot.EffectSpeedBuff:        {robot.EffectEnergyEfficiency: 0.08},
	robot.EffectEnergyEfficiency: {robot.EffectSpeedBuff: 0.05},
}

// SynergyBonus is the bonus this chip grants when installed next to other
func (c *Chip) SynergyBonus(other *Chip) float64 {
	if other == nil {
		return 0
	}
	return effectSynergy[c.effect][other.effect]
}
