package parts

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
)

// CreateInput carries everything needed to build a part
type CreateInput struct {
	ID           string
	Name         string
	Rarity       robot.Rarity
	Stats        robot.Stats
	Abilities    []robot.Ability
	UpgradeLevel int
}

// Validate checks the input is complete
func (i *CreateInput) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", i.ID, vb)
	errors.ValidateRequired("name", i.Name, vb)
	if !i.Rarity.IsValid() {
		vb.Fieldf("rarity", "unknown rarity %q", i.Rarity)
	}
	errors.ValidateMin("stats.attack", i.Stats.Attack, 0, vb)
	errors.ValidateMin("stats.defense", i.Stats.Defense, 0, vb)
	errors.ValidateMin("stats.speed", i.Stats.Speed, 0, vb)
	errors.ValidateMin("stats.perception", i.Stats.Perception, 0, vb)
	errors.ValidateMin("stats.energy_consumption", i.Stats.EnergyConsumption, 0, vb)
	for idx, a := range i.Abilities {
		if a.ID == "" {
			vb.Fieldf("abilities", "ability %d has no id", idx)
		}
	}
	return vb.Build()
}

// Create builds a part of the given category. Unknown categories are
// rejected with INVALID_ARGUMENT and an upgrade level outside the rarity's
// range with OUT_OF_RANGE. The part starts at full durability.
func Create(category robot.PartCategory, input *CreateInput) (*Part, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch category {
	case robot.CategoryArm, robot.CategoryLeg, robot.CategoryTorso,
		robot.CategoryHead, robot.CategoryAccessory:
	default:
		return nil, errors.InvalidArgumentf("unknown part category %q", category).
			WithMeta("part_id", input.ID)
	}

	if err := input.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid part %q", input.ID)
	}

	maxLevel := input.Rarity.MaxUpgradeLevel()
	if input.UpgradeLevel < 0 || input.UpgradeLevel > maxLevel {
		return nil, errors.OutOfRangef("upgrade level %d outside [0, %d] for %s part %q",
			input.UpgradeLevel, maxLevel, input.Rarity, input.ID).
			WithMeta("part_id", input.ID)
	}

	abilities := make([]robot.Ability, len(input.Abilities))
	copy(abilities, input.Abilities)

	maxDur := maxDurabilityFor(input.Stats, input.Rarity)

	return &Part{
		id:                input.ID,
		name:              input.Name,
		category:          category,
		rarity:            input.Rarity,
		base:              input.Stats,
		abilities:         abilities,
		upgradeLevel:      input.UpgradeLevel,
		currentDurability: maxDur,
		maxDurability:     maxDur,
	}, nil
}

// FromRecord rebuilds a part from its flat record. Durability fields on the
// record are ignored.
func FromRecord(rec robot.PartRecord) (*Part, error) {
	return Create(rec.Category, &CreateInput{
		ID:           rec.ID,
		Name:         rec.Name,
		Rarity:       rec.Rarity,
		Stats:        rec.Stats,
		Abilities:    rec.Abilities,
		UpgradeLevel: rec.UpgradeLevel,
	})
}

// FromRecords rebuilds a list of parts, stopping at the first failure
func FromRecords(recs []robot.PartRecord) ([]*Part, error) {
	out := make([]*Part, 0, len(recs))
	for _, rec := range recs {
		p, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
