package robot

// Loadout is everything a workshop needs to assemble one robot, in the
// flat record form it is stored and shipped in.
type Loadout struct {
	RobotID    string         `json:"robot_id" yaml:"robot_id"`
	RobotName  string         `json:"robot_name,omitempty" yaml:"robot_name,omitempty"`
	Archetype  Archetype      `json:"archetype,omitempty" yaml:"archetype,omitempty"`
	Strategy   string         `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Chassis    SkeletonRecord `json:"chassis" yaml:"chassis"`
	Parts      []PartRecord   `json:"parts" yaml:"parts"`
	Chips      []ChipRecord   `json:"chips,omitempty" yaml:"chips,omitempty"`
	SoulChipID string         `json:"soul_chip_id,omitempty" yaml:"soul_chip_id,omitempty"`
}
