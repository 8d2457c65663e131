package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// Torso unlock levels
const (
	ReactiveArmorLevel  = 8
	EnergyOverloadLevel = 11
)

// ReactiveArmor reduces incoming damage
type ReactiveArmor struct {
	Enabled         bool
	DamageReduction float64
}

// EnergyOverload trades hull damage for a power surge
type EnergyOverload struct {
	Enabled    bool
	PowerBonus float64
	SelfDamage float64
}

// TorsoCapabilities are the tiered capabilities of a torso
type TorsoCapabilities struct {
	ReactiveArmor  ReactiveArmor
	EnergyOverload EnergyOverload
}

func torsoCapabilities(level int) TorsoCapabilities {
	var caps TorsoCapabilities
	if level >= ReactiveArmorLevel {
		caps.ReactiveArmor = ReactiveArmor{Enabled: true, DamageReduction: 0.2}
	}
	if level >= EnergyOverloadLevel {
		caps.EnergyOverload = EnergyOverload{Enabled: true, PowerBonus: 0.3, SelfDamage: 0.1}
	}
	return caps
}

var torsoSynergy = map[robot.PartCategory]float64{
	robot.CategoryArm:  0.15,
	robot.CategoryLeg:  0.10,
	robot.CategoryHead: 0.08,
}

func torsoMetrics(s robot.Stats, p *Part) []Metric {
	return []Metric{
		metric("armor", float64(s.Defense)),
		metric("integrity", float64(p.currentDurability)/5),
		metric("power_output", float64(s.Attack)),
	}
}
