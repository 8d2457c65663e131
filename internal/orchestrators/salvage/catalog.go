package salvage

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/parts"
)

// rarityBand maps the top of a d100 range to a rarity
type rarityBand struct {
	upTo   int
	rarity robot.Rarity
}

var rarityBands = []rarityBand{
	{upTo: 40, rarity: robot.RarityCommon},
	{upTo: 65, rarity: robot.RarityUncommon},
	{upTo: 82, rarity: robot.RarityRare},
	{upTo: 92, rarity: robot.RarityEpic},
	{upTo: 97, rarity: robot.RarityLegendary},
	{upTo: 99, rarity: robot.RarityUltraRare},
	{upTo: 100, rarity: robot.RarityPrototype},
}

func rarityFor(roll int) robot.Rarity {
	for _, b := range rarityBands {
		if roll <= b.upTo {
			return b.rarity
		}
	}
	return robot.RarityPrototype
}

// statWeights multiply a 3d6 roll per stat
type statWeights struct {
	attack, defense, speed, perception int
}

type categoryEntry struct {
	weights   statWeights
	names     []string
	abilities []robot.Ability
}

func ability(id, name, description string, level int) robot.Ability {
	return robot.Ability{ID: id, Name: name, Description: description, RequiredLevel: &level}
}

var catalog = map[robot.PartCategory]categoryEntry{
	robot.CategoryArm: {
		weights: statWeights{attack: 3, defense: 1, speed: 1, perception: 1},
		names:   []string{"Servo Arm", "Hydraulic Claw", "Piston Fist", "Arc Welder"},
		abilities: []robot.Ability{
			ability("dual_wield", "Dual Wield", "Fight with a weapon in each arm", parts.DualWieldingLevel),
			ability("power_strike", "Power Strike", "Overcharged melee blow", parts.PowerStrikeLevel),
			ability("grip_lock", "Grip Lock", "Pin a target in place", 2),
		},
	},
	robot.CategoryLeg: {
		weights: statWeights{attack: 1, defense: 1, speed: 3, perception: 1},
		names:   []string{"Strider Legs", "Tread Unit", "Spring Actuators", "Gyro Wheels"},
		abilities: []robot.Ability{
			ability("double_jump", "Double Jump", "Second jump in mid air", parts.DoubleJumpLevel),
			ability("turbo_boost", "Turbo Boost", "Short burst of speed", parts.TurboBoostLevel),
			ability("earth_shaker", "Earth Shaker", "Stomp that staggers nearby foes", parts.EarthShakerLevel),
		},
	},
	robot.CategoryTorso: {
		weights: statWeights{attack: 1, defense: 3, speed: 1, perception: 1},
		names:   []string{"Bulwark Core", "Reactor Frame", "Plated Chassis", "Capacitor Hull"},
		abilities: []robot.Ability{
			ability("reactive_armor", "Reactive Armor", "Plating that answers impacts", parts.ReactiveArmorLevel),
			ability("energy_overload", "Energy Overload", "Vent stored charge as a blast", parts.EnergyOverloadLevel),
			ability("coolant_flush", "Coolant Flush", "Shed heat after a long fight", 1),
		},
	},
	robot.CategoryHead: {
		weights: statWeights{attack: 1, defense: 1, speed: 1, perception: 3},
		names:   []string{"Optic Cluster", "Sensor Dome", "Targeting Visor", "Cortex Helm"},
		abilities: []robot.Ability{
			ability("battle_analysis", "Battle Analysis", "Read an opponent's weak points", parts.BattleAnalysisLevel),
			ability("mind_link", "Mind Link", "Share sight with allied units", parts.MindLinkLevel),
			ability("night_vision", "Night Vision", "See without light", 0),
		},
	},
	robot.CategoryAccessory: {
		weights: statWeights{attack: 2, defense: 2, speed: 2, perception: 2},
		names:   []string{"Signal Booster", "Cloak Emitter", "Magnet Coil", "Spare Battery"},
		abilities: []robot.Ability{
			ability("signal_boost", "Signal Boost", "Extend allied sensor range", 3),
			ability("emergency_power", "Emergency Power", "Last-ditch energy reserve", 6),
		},
	},
}
