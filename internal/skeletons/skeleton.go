// Package skeletons models robot chassis. A Skeleton is immutable once
// built and implements rpg-toolkit's core.Entity.
package skeletons

import (
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
)

// EntityType is the rpg-toolkit entity type of a chassis
const EntityType = "skeleton"

// Skeleton is a constructed chassis
type Skeleton struct {
	id             string
	chassisType    robot.ChassisType
	rarity         robot.Rarity
	slots          int
	baseDurability int
	mobility       robot.MobilityType
}

var _ core.Entity = (*Skeleton)(nil)

// GetID returns the chassis ID
func (s *Skeleton) GetID() string { return s.id }

// GetType returns the entity type for rpg-toolkit
func (s *Skeleton) GetType() string { return EntityType }

// Type returns the chassis type
func (s *Skeleton) Type() robot.ChassisType { return s.chassisType }

// Rarity returns the chassis rarity
func (s *Skeleton) Rarity() robot.Rarity { return s.rarity }

// Slots is the number of parts the chassis can carry
func (s *Skeleton) Slots() int { return s.slots }

// BaseDurability returns the durability before rarity scaling
func (s *Skeleton) BaseDurability() int { return s.baseDurability }

// Mobility returns how the chassis moves
func (s *Skeleton) Mobility() robot.MobilityType { return s.mobility }

// EffectiveDurability is base durability scaled by rarity, rounded down
func (s *Skeleton) EffectiveDurability() int {
	return int(math.Floor(float64(s.baseDurability) * s.rarity.Multiplier()))
}

// ToRecord flattens the chassis for storage
func (s *Skeleton) ToRecord() robot.SkeletonRecord {
	return robot.SkeletonRecord{
		ID:             s.id,
		Type:           s.chassisType,
		Rarity:         s.rarity,
		Slots:          s.slots,
		BaseDurability: s.baseDurability,
		MobilityType:   s.mobility,
	}
}

// FromRecord builds a chassis from its record. Mobility defaults by
// chassis type when the record leaves it empty.
func FromRecord(rec robot.SkeletonRecord) (*Skeleton, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", rec.ID, vb)
	if !rec.Type.IsValid() {
		vb.Fieldf("type", "unknown chassis type %q", rec.Type)
	}
	if !rec.Rarity.IsValid() {
		vb.Fieldf("rarity", "unknown rarity %q", rec.Rarity)
	}
	errors.ValidateMin("slots", rec.Slots, 1, vb)
	errors.ValidateMin("base_durability", rec.BaseDurability, 0, vb)
	if rec.MobilityType != "" && !rec.MobilityType.IsValid() {
		vb.Fieldf("mobility_type", "unknown mobility type %q", rec.MobilityType)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrapf(err, "invalid skeleton %q", rec.ID)
	}

	mobility := rec.MobilityType
	if mobility == "" {
		mobility = rec.Type.DefaultMobility()
	}

	return &Skeleton{
		id:             rec.ID,
		chassisType:    rec.Type,
		rarity:         rec.Rarity,
		slots:          rec.Slots,
		baseDurability: rec.BaseDurability,
		mobility:       mobility,
	}, nil
}
