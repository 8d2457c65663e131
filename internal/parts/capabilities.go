package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// Capabilities is the tiered capability set of one part. Exactly one of
// the category fields is set, matching Category. Accessories have none.
type Capabilities struct {
	Category robot.PartCategory
	Arm      *ArmCapabilities
	Leg      *LegCapabilities
	Torso    *TorsoCapabilities
	Head     *HeadCapabilities
}

// Capabilities derives the capability set for the part's current level
func (p *Part) Capabilities() Capabilities {
	caps := Capabilities{Category: p.category}

	switch p.category {
	case robot.CategoryArm:
		arm := armCapabilities(p.upgradeLevel)
		caps.Arm = &arm
	case robot.CategoryLeg:
		leg := legCapabilities(p.upgradeLevel)
		caps.Leg = &leg
	case robot.CategoryTorso:
		torso := torsoCapabilities(p.upgradeLevel)
		caps.Torso = &torso
	case robot.CategoryHead:
		head := headCapabilities(p.upgradeLevel)
		caps.Head = &head
	case robot.CategoryAccessory:
	}

	return caps
}

// EnabledNames lists the unlocked capabilities by name
func (c Capabilities) EnabledNames() []string {
	var names []string
	add := func(enabled bool, name string) {
		if enabled {
			names = append(names, name)
		}
	}

	switch {
	case c.Arm != nil:
		add(c.Arm.DualWielding.Enabled, "dual_wielding")
		add(c.Arm.PowerStrike.Enabled, "power_strike")
	case c.Leg != nil:
		add(c.Leg.DoubleJump.Enabled, "double_jump")
		add(c.Leg.TurboBoost.Enabled, "turbo_boost")
		add(c.Leg.EarthShaker.Enabled, "earth_shaker")
	case c.Torso != nil:
		add(c.Torso.ReactiveArmor.Enabled, "reactive_armor")
		add(c.Torso.EnergyOverload.Enabled, "energy_overload")
	case c.Head != nil:
		add(c.Head.BattleAnalysis.Enabled, "battle_analysis")
		add(c.Head.MindLink.Enabled, "mind_link")
	}

	return names
}
