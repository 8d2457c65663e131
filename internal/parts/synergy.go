package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// SynergyBonus is the bonus this part grants when fitted alongside other.
// The relation is not symmetric; each category has its own outgoing table.
func (p *Part) SynergyBonus(other *Part) float64 {
	if other == nil {
		return 0
	}

	switch p.category {
	case robot.CategoryArm:
		return armSynergyBonus(p, other)
	case robot.CategoryLeg:
		return legSynergy[other.category]
	case robot.CategoryTorso:
		return torsoSynergy[other.category]
	case robot.CategoryHead:
		return headSynergy[other.category]
	case robot.CategoryAccessory:
		return accessorySynergyBonus(other)
	default:
		return 0
	}
}
