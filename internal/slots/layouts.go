package slots

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

func slot(id string, required bool, x, y int, accepts ...Component) Definition {
	return Definition{ID: id, Accepts: accepts, Required: required, Position: Position{X: x, Y: y}}
}

var (
	soulChip = slot(SoulChipSlot, true, 0, 1, ComponentSoulChip)

	lightLayout = []Definition{
		slot("HEAD_1", true, 0, 0, ComponentHead),
		slot("TORSO_1", true, 0, 1, ComponentTorso),
		slot("ARM_LEFT_1", false, -1, 1, ComponentArm),
		slot("ARM_RIGHT_1", false, 1, 1, ComponentArm),
		slot("LEG_1", true, 0, 2, ComponentLeg),
		slot("ACCESSORY_1", false, 1, 0, ComponentAccessory),
		slot("EXPANSION_1", false, -1, 0, ComponentExpansionChip),
		soulChip,
	}

	balancedLayout = []Definition{
		slot("HEAD_1", true, 0, 0, ComponentHead),
		slot("TORSO_1", true, 0, 1, ComponentTorso),
		slot("ARM_LEFT_1", false, -1, 1, ComponentArm),
		slot("ARM_RIGHT_1", false, 1, 1, ComponentArm),
		slot("LEG_LEFT_1", true, -1, 2, ComponentLeg),
		slot("LEG_RIGHT_1", false, 1, 2, ComponentLeg),
		slot("ACCESSORY_1", false, -1, 0, ComponentAccessory),
		slot("ACCESSORY_2", false, 1, 0, ComponentAccessory),
		slot("EXPANSION_1", false, -2, 1, ComponentExpansionChip),
		slot("EXPANSION_2", false, 2, 1, ComponentExpansionChip),
		soulChip,
	}

	heavyLayout = []Definition{
		slot("HEAD_1", true, 0, 0, ComponentHead),
		slot("TORSO_1", true, 0, 1, ComponentTorso),
		slot("ARM_LEFT_1", false, -1, 1, ComponentArm),
		slot("ARM_LEFT_2", false, -2, 1, ComponentArm),
		slot("ARM_RIGHT_1", false, 1, 1, ComponentArm),
		slot("ARM_RIGHT_2", false, 2, 1, ComponentArm),
		slot("LEG_LEFT_1", true, -1, 2, ComponentLeg),
		slot("LEG_LEFT_2", false, -2, 2, ComponentLeg),
		slot("LEG_RIGHT_1", false, 1, 2, ComponentLeg),
		slot("LEG_RIGHT_2", false, 2, 2, ComponentLeg),
		slot("ACCESSORY_1", false, 1, 0, ComponentAccessory),
		slot("EXPANSION_1", false, -2, 0, ComponentExpansionChip),
		slot("EXPANSION_2", false, -1, 0, ComponentExpansionChip),
		slot("EXPANSION_3", false, 2, 0, ComponentExpansionChip),
		soulChip,
	}

	flyingLayout = []Definition{
		slot("HEAD_1", true, 0, 0, ComponentHead),
		slot("HEAD_2", false, 1, 0, ComponentHead),
		slot("TORSO_1", true, 0, 1, ComponentTorso),
		slot("ARM_LEFT_1", false, -1, 1, ComponentArm),
		slot("ARM_RIGHT_1", false, 1, 1, ComponentArm),
		slot("LEG_1", true, 0, 2, ComponentLeg),
		slot("ACCESSORY_1", false, -2, 1, ComponentAccessory),
		slot("ACCESSORY_2", false, 2, 1, ComponentAccessory),
		slot("EXPANSION_1", false, -1, 0, ComponentExpansionChip),
		slot("EXPANSION_2", false, -1, 2, ComponentExpansionChip),
		soulChip,
	}

	modularLayout = []Definition{
		slot("HEAD_1", true, 0, 0, ComponentHead),
		slot("HEAD_2", false, 1, 0, ComponentHead),
		slot("TORSO_1", true, 0, 1, ComponentTorso),
		slot("ARM_LEFT_1", false, -1, 1, ComponentArm),
		slot("ARM_LEFT_2", false, -2, 1, ComponentArm),
		slot("ARM_RIGHT_1", false, 1, 1, ComponentArm),
		slot("ARM_RIGHT_2", false, 2, 1, ComponentArm),
		slot("LEG_LEFT_1", true, -1, 2, ComponentLeg),
		slot("LEG_LEFT_2", false, -2, 2, ComponentLeg),
		slot("LEG_RIGHT_1", false, 1, 2, ComponentLeg),
		slot("LEG_RIGHT_2", false, 2, 2, ComponentLeg),
		slot("ACCESSORY_1", false, -3, 1, ComponentAccessory, ComponentArm),
		slot("ACCESSORY_2", false, 3, 1, ComponentAccessory, ComponentArm),
		slot("EXPANSION_1", false, -1, 0, ComponentExpansionChip),
		slot("EXPANSION_2", false, -2, 0, ComponentExpansionChip),
		slot("EXPANSION_3", false, 2, 0, ComponentExpansionChip),
		soulChip,
	}

	layouts = map[robot.ChassisType][]Definition{
		robot.ChassisLight:    lightLayout,
		robot.ChassisBalanced: balancedLayout,
		robot.ChassisHeavy:    heavyLayout,
		robot.ChassisFlying:   flyingLayout,
		robot.ChassisModular:  modularLayout,
	}
)
