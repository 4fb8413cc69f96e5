package domain

// Armor materials and pieces. Plate exists in the command surface but is
// only rendered on the board when explicitly enabled.
var (
	Materials = []string{"Cloth", "Leather", "Plate"}
	Pieces    = []string{"Head", "Chestplate", "Leggings", "Boots", "Gloves", "Belt"}
)

// Accessory kinds tracked per user. Each kind holds a single tier.
const (
	AccessoryRing  = "ring"
	AccessoryHeart = "heart"
)

// AccessoryKinds lists the configured accessory kinds in display order.
var AccessoryKinds = []string{AccessoryRing, AccessoryHeart}

// Rarities in ascending order. The index of a rarity is its ordinal.
var Rarities = []string{"Common", "Uncommon", "Rare", "Epic", "Legendary", "Mythic"}

// Tier bounds for tools, armor and accessories.
const (
	MinTier = 1
	MaxTier = 10
)

// ValidTier reports whether tier is within the allowed range.
func ValidTier(tier int) bool {
	return tier >= MinTier && tier <= MaxTier
}

// ValidRaritiesForTier returns the rarities selectable for the given tier:
// the first min(tier, len(Rarities)) entries of the rarity ordering. A
// tier-1 item may only be Common; anything tier 6 and up may be any rarity.
func ValidRaritiesForTier(tier int) []string {
	if tier < MinTier {
		return nil
	}
	n := tier
	if n > len(Rarities) {
		n = len(Rarities)
	}
	out := make([]string, n)
	copy(out, Rarities[:n])
	return out
}

// RarityAllowed reports whether rarity is selectable at the given tier.
func RarityAllowed(rarity string, tier int) bool {
	for _, r := range ValidRaritiesForTier(tier) {
		if r == rarity {
			return true
		}
	}
	return false
}

// IsMaterial reports whether name is a known armor material.
func IsMaterial(name string) bool {
	for _, m := range Materials {
		if m == name {
			return true
		}
	}
	return false
}

// IsPiece reports whether name is a known armor piece.
func IsPiece(name string) bool {
	for _, p := range Pieces {
		if p == name {
			return true
		}
	}
	return false
}

// IsAccessoryKind reports whether kind is a configured accessory kind.
func IsAccessoryKind(kind string) bool {
	for _, k := range AccessoryKinds {
		if k == kind {
			return true
		}
	}
	return false
}
