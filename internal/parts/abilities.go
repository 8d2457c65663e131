package parts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
)

// RequiredLevel returns the upgrade level an ability needs. Records that
// predate the explicit field fall back to keywords in the ability ID; that
// fallback is logged because it misfires on IDs that merely contain a
// keyword.
func RequiredLevel(ctx context.Context, ability robot.Ability) int {
	if ability.RequiredLevel != nil {
		return *ability.RequiredLevel
	}

	level := inferRequiredLevel(ability.ID)
	slog.WarnContext(ctx, "ability has no explicit required level, inferring from id",
		"ability_id", ability.ID,
		"inferred_level", level)

	return level
}

func inferRequiredLevel(abilityID string) int {
	id := strings.ToLower(abilityID)
	switch {
	case strings.Contains(id, "legendary"):
		return 15
	case strings.Contains(id, "master"):
		return 10
	case strings.Contains(id, "advanced"):
		return 5
	default:
		return 0
	}
}

// IsAbilityAvailable reports whether the part's level unlocks ability
func (p *Part) IsAbilityAvailable(ctx context.Context, ability robot.Ability) bool {
	return p.upgradeLevel >= RequiredLevel(ctx, ability)
}

// AvailableAbilities returns the abilities the current level unlocks
func (p *Part) AvailableAbilities(ctx context.Context) []robot.Ability {
	var out []robot.Ability
	for _, a := range p.abilities {
		if p.IsAbilityAvailable(ctx, a) {
			out = append(out, a)
		}
	}
	return out
}
