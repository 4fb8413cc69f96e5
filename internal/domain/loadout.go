package domain

// Loadout is a tier + rarity pair for a tool or armor piece.
type Loadout struct {
	Tier   int
	Rarity string
}

// ArmorKey identifies one armor slot for a user.
type ArmorKey struct {
	Material string
	Piece    string
}

// Snapshot maps consumed by the board core. Keys are platform user IDs.
type (
	// AssignmentSnapshot maps user → professions held.
	AssignmentSnapshot map[string][]string
	// ToolSnapshot maps user → tool name → loadout.
	ToolSnapshot map[string]map[string]Loadout
	// ArmorSnapshot maps user → armor slot → loadout.
	ArmorSnapshot map[string]map[ArmorKey]Loadout
	// AccessorySnapshot maps user → tier for one accessory kind.
	AccessorySnapshot map[string]int
)
