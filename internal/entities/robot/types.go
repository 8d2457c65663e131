package robot

// PartCategory identifies which body section a part belongs to
type PartCategory string

// Part categories
const (
	CategoryArm       PartCategory = "ARM"
	CategoryLeg       PartCategory = "LEG"
	CategoryTorso     PartCategory = "TORSO"
	CategoryHead      PartCategory = "HEAD"
	CategoryAccessory PartCategory = "ACCESSORY"
)

// String returns the string representation of the category
func (c PartCategory) String() string {
	return string(c)
}

// IsValid checks if the category is one of the known part categories
func (c PartCategory) IsValid() bool {
	switch c {
	case CategoryArm, CategoryLeg, CategoryTorso, CategoryHead, CategoryAccessory:
		return true
	default:
		return false
	}
}

// AllPartCategories returns all part categories
func AllPartCategories() []PartCategory {
	return []PartCategory{
		CategoryArm,
		CategoryLeg,
		CategoryTorso,
		CategoryHead,
		CategoryAccessory,
	}
}

// RequiredPartCategories are the categories every complete robot needs
func RequiredPartCategories() []PartCategory {
	return []PartCategory{CategoryArm, CategoryLeg, CategoryTorso, CategoryHead}
}

// ChassisType is the skeleton family a robot is built on
type ChassisType string

// Chassis types
const (
	ChassisLight    ChassisType = "LIGHT"
	ChassisBalanced ChassisType = "BALANCED"
	ChassisHeavy    ChassisType = "HEAVY"
	ChassisFlying   ChassisType = "FLYING"
	ChassisModular  ChassisType = "MODULAR"
)

// String returns the string representation of the chassis type
func (c ChassisType) String() string {
	return string(c)
}

// IsValid checks if the chassis type is known
func (c ChassisType) IsValid() bool {
	switch c {
	case ChassisLight, ChassisBalanced, ChassisHeavy, ChassisFlying, ChassisModular:
		return true
	default:
		return false
	}
}

// AllChassisTypes returns all chassis types
func AllChassisTypes() []ChassisType {
	return []ChassisType{ChassisLight, ChassisBalanced, ChassisHeavy, ChassisFlying, ChassisModular}
}

// DefaultMobility is the mobility a chassis gets when a record leaves it unset
func (c ChassisType) DefaultMobility() MobilityType {
	switch c {
	case ChassisHeavy:
		return MobilityTracked
	case ChassisFlying:
		return MobilityAerial
	case ChassisModular:
		return MobilityHybrid
	default:
		return MobilityBipedal
	}
}

// MobilityType describes how a chassis moves
type MobilityType string

// Mobility types
const (
	MobilityBipedal MobilityType = "BIPEDAL"
	MobilityTracked MobilityType = "TRACKED"
	MobilityWheeled MobilityType = "WHEELED"
	MobilityAerial  MobilityType = "AERIAL"
	MobilityHybrid  MobilityType = "HYBRID"
)

// IsValid checks if the mobility type is known
func (m MobilityType) IsValid() bool {
	switch m {
	case MobilityBipedal, MobilityTracked, MobilityWheeled, MobilityAerial, MobilityHybrid:
		return true
	default:
		return false
	}
}

// Archetype is the role a robot is being built for
type Archetype string

// Bot archetypes
const (
	ArchetypeStandard   Archetype = "STANDARD"
	ArchetypeAutonomous Archetype = "AUTONOMOUS"
	ArchetypeElite      Archetype = "ELITE"
	ArchetypeGuardian   Archetype = "GUARDIAN"
	ArchetypeSupport    Archetype = "SUPPORT"
)

// ChipEffect identifies what an expansion chip does
type ChipEffect string

// Chip effects. STEALTH_FIELD and REPAIR_NANITES are catalogued but have
// no behaviour yet.
const (
	EffectAttackBuff       ChipEffect = "ATTACK_BUFF"
	EffectDefenseBuff      ChipEffect = "DEFENSE_BUFF"
	EffectSpeedBuff        ChipEffect = "SPEED_BUFF"
	EffectEnergyEfficiency ChipEffect = "ENERGY_EFFICIENCY"
	EffectCriticalBoost    ChipEffect = "CRITICAL_BOOST"
	EffectShieldGenerator  ChipEffect = "SHIELD_GENERATOR"
	EffectStealthField     ChipEffect = "STEALTH_FIELD"
	EffectRepairNanites    ChipEffect = "REPAIR_NANITES"
)

// String returns the string representation of the effect
func (e ChipEffect) String() string {
	return string(e)
}
