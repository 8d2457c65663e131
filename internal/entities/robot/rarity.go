package robot

// Rarity is the quality tier of a part, chip or chassis
type Rarity string

// Rarity tiers, lowest to highest
const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
	RarityUltraRare Rarity = "ULTRA_RARE"
	RarityPrototype Rarity = "PROTOTYPE"
)

type rarityTier struct {
	title           string
	rank            int
	multiplier      float64
	maxUpgradeLevel int
}

// Multipliers and upgrade caps both grow strictly with rank.
var rarityTiers = map[Rarity]rarityTier{
	RarityCommon:    {title: "Common", rank: 1, multiplier: 1.0, maxUpgradeLevel: 3},
	RarityUncommon:  {title: "Uncommon", rank: 2, multiplier: 1.2, maxUpgradeLevel: 5},
	RarityRare:      {title: "Rare", rank: 3, multiplier: 1.5, maxUpgradeLevel: 8},
	RarityEpic:      {title: "Epic", rank: 4, multiplier: 1.8, maxUpgradeLevel: 12},
	RarityLegendary: {title: "Legendary", rank: 5, multiplier: 2.2, maxUpgradeLevel: 15},
	RarityUltraRare: {title: "Ultra Rare", rank: 6, multiplier: 2.6, maxUpgradeLevel: 20},
	RarityPrototype: {title: "Prototype", rank: 7, multiplier: 3.0, maxUpgradeLevel: 25},
}

// AllRarities returns every rarity ordered by rank
func AllRarities() []Rarity {
	return []Rarity{
		RarityCommon,
		RarityUncommon,
		RarityRare,
		RarityEpic,
		RarityLegendary,
		RarityUltraRare,
		RarityPrototype,
	}
}

// String returns the string representation of the rarity
func (r Rarity) String() string {
	return string(r)
}

// Title returns the display name of the tier, or the raw value if unknown
func (r Rarity) Title() string {
	if tier, ok := rarityTiers[r]; ok {
		return tier.title
	}
	return string(r)
}

// IsValid checks if the rarity is one of the known tiers
func (r Rarity) IsValid() bool {
	_, ok := rarityTiers[r]
	return ok
}

// Rank returns the ordinal of the tier, 1 for COMMON through 7 for PROTOTYPE.
// Unknown rarities rank 0.
func (r Rarity) Rank() int {
	return rarityTiers[r].rank
}

// Multiplier returns the stat multiplier of the tier
func (r Rarity) Multiplier() float64 {
	if tier, ok := rarityTiers[r]; ok {
		return tier.multiplier
	}
	return 1.0
}

// MaxUpgradeLevel returns the highest upgrade level reachable at this tier
func (r Rarity) MaxUpgradeLevel() int {
	return rarityTiers[r].maxUpgradeLevel
}

// UpgradeMultiplier is the stat scaling applied per upgrade level
func UpgradeMultiplier(level int) float64 {
	return 1 + float64(level)*0.1
}
