package chips

import (
	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
)

// CreateInput carries everything needed to build a chip
type CreateInput struct {
	ID           string
	Name         string
	Description  string
	Rarity       robot.Rarity
	Params       robot.ChipParams
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
	if i.Params.Value < 0 {
		vb.Field("params.value", "must not be negative")
	}
	errors.ValidateMin("params.duration", i.Params.Duration, 0, vb)
	errors.ValidateMin("params.cooldown", i.Params.Cooldown, 0, vb)
	errors.ValidateMin("params.energy_cost", i.Params.EnergyCost, 0, vb)
	return vb.Build()
}

// Create builds a chip with the given effect. Catalogued effects without an
// implementation are rejected with UNIMPLEMENTED, unknown ones with
// INVALID_ARGUMENT.
func Create(effect robot.ChipEffect, input *CreateInput) (*Chip, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch effect {
	case robot.EffectAttackBuff, robot.EffectDefenseBuff, robot.EffectSpeedBuff,
		robot.EffectEnergyEfficiency, robot.EffectCriticalBoost, robot.EffectShieldGenerator:
	case robot.EffectStealthField, robot.EffectRepairNanites:
		return nil, errors.Unimplementedf("chip effect %s is not implemented", effect).
			WithMeta("chip_id", input.ID)
	default:
		return nil, errors.InvalidArgumentf("unknown chip effect %q", effect).
			WithMeta("chip_id", input.ID)
	}

	if err := input.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid chip %q", input.ID)
	}

	maxLevel := input.Rarity.MaxUpgradeLevel()
	if input.UpgradeLevel < 0 || input.UpgradeLevel > maxLevel {
		return nil, errors.OutOfRangef("upgrade level %d outside [0, %d] for %s chip %q",
			input.UpgradeLevel, maxLevel, input.Rarity, input.ID).
			WithMeta("chip_id", input.ID)
	}

	return &Chip{
		id:           input.ID,
		name:         input.Name,
		description:  input.Description,
		effect:       effect,
		rarity:       input.Rarity,
		params:       input.Params,
		upgradeLevel: input.UpgradeLevel,
	}, nil
}

// FromRecord rebuilds a chip from its flat record
func FromRecord(rec robot.ChipRecord) (*Chip, error) {
	return Create(rec.Effect, &CreateInput{
		ID:           rec.ID,
		Name:         rec.Name,
		Description:  rec.Description,
		Rarity:       rec.Rarity,
		Params:       rec.Params,
		UpgradeLevel: rec.UpgradeLevel,
	})
}

// FromRecords rebuilds a list of chips, stopping at the first failure
func FromRecords(recs []robot.ChipRecord) ([]*Chip, error) {
	out := make([]*Chip, 0, len(recs))
	for _, rec := range recs {
		c, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
