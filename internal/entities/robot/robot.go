// Package robot holds the shared vocabulary of robot-forge: rarity tiers,
// part categories, chassis types, the flat records parts, chips and
// skeletons are exchanged in, and the assembled Robot record.
package robot

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeRobot is the rpg-toolkit entity type of an assembled robot
const EntityTypeRobot = "robot"

// InstalledPart is a part record mounted in a named slot
type InstalledPart struct {
	SlotID string     `json:"slot_id" yaml:"slot_id"`
	Part   PartRecord `json:"part" yaml:"part"`
}

// InstalledChip is a chip record mounted in a named slot
type InstalledChip struct {
	SlotID string     `json:"slot_id" yaml:"slot_id"`
	Chip   ChipRecord `json:"chip" yaml:"chip"`
}

// Robot is the assembled configuration produced by the assembly pipeline
type Robot struct {
	ID         string          `json:"id" yaml:"id"`
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Archetype  Archetype       `json:"archetype,omitempty" yaml:"archetype,omitempty"`
	Chassis    SkeletonRecord  `json:"chassis" yaml:"chassis"`
	Parts      []InstalledPart `json:"parts" yaml:"parts"`
	Chips      []InstalledChip `json:"chips,omitempty" yaml:"chips,omitempty"`
	SoulChipID string          `json:"soul_chip_id,omitempty" yaml:"soul_chip_id,omitempty"`
	Rating     float64         `json:"rating" yaml:"rating"`
}

// GetID returns the robot's ID
func (r *Robot) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Robot) GetType() string {
	return EntityTypeRobot
}

var _ core.Entity = (*Robot)(nil)

// Ref is a lightweight core.Entity for a robot that has not been assembled yet
type Ref string

// GetID returns the referenced robot ID
func (r Ref) GetID() string {
	return string(r)
}

// GetType returns the entity type for rpg-toolkit
func (r Ref) GetType() string {
	return EntityTypeRobot
}
