package testutils

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// PartRecord returns a valid part record with modest stats
func PartRecord(id string, category robot.PartCategory, rarity robot.Rarity) robot.PartRecord {
	return robot.PartRecord{
		ID:       id,
		Category: category,
		Rarity:   rarity,
		Name:     string(category) + " " + id,
		Stats: robot.Stats{
			Attack:            20,
			Defense:           20,
			Speed:             20,
			Perception:        20,
			EnergyConsumption: 10,
		},
	}
}

// ChipRecord returns a valid expansion chip record
func ChipRecord(id string, effect robot.ChipEffect, rarity robot.Rarity) robot.ChipRecord {
	return robot.ChipRecord{
		ID:     id,
		Effect: effect,
		Rarity: rarity,
		Name:   string(effect) + " " + id,
		Params: robot.ChipParams{
			Value:      10,
			Duration:   3,
			Cooldown:   5,
			EnergyCost: 4,
		},
	}
}

// SkeletonRecord returns a valid chassis record
func SkeletonRecord(id string, chassis robot.ChassisType, slots int) robot.SkeletonRecord {
	return robot.SkeletonRecord{
		ID:             id,
		Type:           chassis,
		Rarity:         robot.RarityCommon,
		Slots:          slots,
		BaseDurability: 300,
	}
}

// FullLoadout returns one part record of every category at the given rarity
func FullLoadout(rarity robot.Rarity) []robot.PartRecord {
	return []robot.PartRecord{
		PartRecord("head-1", robot.CategoryHead, rarity),
		PartRecord("torso-1", robot.CategoryTorso, rarity),
		PartRecord("arm-1", robot.CategoryArm, rarity),
		PartRecord("leg-1", robot.CategoryLeg, rarity),
		PartRecord("acc-1", robot.CategoryAccessory, rarity),
	}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
