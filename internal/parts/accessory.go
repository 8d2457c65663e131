package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

const accessorySynergy = 0.03

func accessorySynergyBonus(other *Part) float64 {
	if other.category == robot.CategoryAccessory {
		return 0
	}
	return accessorySynergy
}

func accessoryMetrics(s robot.Stats, _ *Part) []Metric {
	return []Metric{
		metric("utility", float64(s.Attack+s.Defense+s.Speed+s.Perception)/4),
	}
}
