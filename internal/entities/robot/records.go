package robot

// Stats are the raw combat attributes of a part
type Stats struct {
	Attack            int `json:"attack" yaml:"attack"`
	Defense           int `json:"defense" yaml:"defense"`
	Speed             int `json:"speed" yaml:"speed"`
	Perception        int `json:"perception" yaml:"perception"`
	EnergyConsumption int `json:"energy_consumption" yaml:"energy_consumption"`
}

// Ability is a special move granted by a part.
// RequiredLevel is nil on records written before the field existed.
type Ability struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	RequiredLevel *int   `json:"required_level,omitempty" yaml:"required_level,omitempty"`
}

// PartRecord is the flat form a part is stored and exchanged in.
// Durability fields are advisory; a part built from a record starts at full
// durability.
type PartRecord struct {
	ID                string       `json:"id" yaml:"id"`
	Category          PartCategory `json:"category" yaml:"category"`
	Rarity            Rarity       `json:"rarity" yaml:"rarity"`
	Name              string       `json:"name" yaml:"name"`
	Stats             Stats        `json:"stats" yaml:"stats"`
	Abilities         []Ability    `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	UpgradeLevel      int          `json:"upgrade_level" yaml:"upgrade_level"`
	CurrentDurability int          `json:"current_durability,omitempty" yaml:"current_durability,omitempty"`
	MaxDurability     int          `json:"max_durability,omitempty" yaml:"max_durability,omitempty"`
}

// ChipParams are the tunables of an expansion chip effect
type ChipParams struct {
	Value      float64 `json:"value" yaml:"value"`
	Duration   int     `json:"duration" yaml:"duration"`
	Cooldown   int     `json:"cooldown" yaml:"cooldown"`
	EnergyCost int     `json:"energy_cost" yaml:"energy_cost"`
}

// ChipRecord is the flat form of an expansion chip
type ChipRecord struct {
	ID           string     `json:"id" yaml:"id"`
	Effect       ChipEffect `json:"effect" yaml:"effect"`
	Rarity       Rarity     `json:"rarity" yaml:"rarity"`
	Name         string     `json:"name" yaml:"name"`
	Description  string     `json:"description,omitempty" yaml:"description,omitempty"`
	Params       ChipParams `json:"params" yaml:"params"`
	UpgradeLevel int        `json:"upgrade_level" yaml:"upgrade_level"`
}

// SkeletonRecord is the flat form of a chassis
type SkeletonRecord struct {
	ID             string       `json:"id" yaml:"id"`
	Type           ChassisType  `json:"type" yaml:"type"`
	Rarity         Rarity       `json:"rarity" yaml:"rarity"`
	Slots          int          `json:"slots" yaml:"slots"`
	BaseDurability int          `json:"base_durability" yaml:"base_durability"`
	MobilityType   MobilityType `json:"mobility_type,omitempty" yaml:"mobility_type,omitempty"`
}
