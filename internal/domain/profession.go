package domain

// Professions lists every profession members can assign themselves to,
// in board display order.
var Professions = []string{
	"Carpentry", "Farming", "Fishing", "Foraging", "Forestry",
	"Hunting", "Leatherworking", "Masonry", "Mining", "Scholar",
	"Smithing", "Tailoring", "Cooking",
}

// Tools lists every trackable tool.
var Tools = []string{
	"Saw", "Hoe", "Fishing Rod", "Machete", "Axe",
	"Hunting Bow", "Knife", "Chisel", "Pickaxe", "Quill", "Hammer", "Shears",
}

// ProfessionTool maps a profession to its tracked tool. Professions without
// a tool (Cooking) are absent from the map.
var ProfessionTool = map[string]string{
	"Carpentry":      "Saw",
	"Farming":        "Hoe",
	"Fishing":        "Fishing Rod",
	"Foraging":       "Machete",
	"Forestry":       "Axe",
	"Hunting":        "Hunting Bow",
	"Leatherworking": "Knife",
	"Masonry":        "Chisel",
	"Mining":         "Pickaxe",
	"Scholar":        "Quill",
	"Smithing":       "Hammer",
	"Tailoring":      "Shears",
}

// Levels lists the selectable profession levels, lowest first.
var Levels = []string{"10", "20", "30", "40", "50", "60", "70", "80", "90", "100"}

// IsProfession reports whether name is a known profession.
func IsProfession(name string) bool {
	for _, p := range Professions {
		if p == name {
			return true
		}
	}
	return false
}

// IsTool reports whether name is a known tool.
func IsTool(name string) bool {
	for _, t := range Tools {
		if t == name {
			return true
		}
	}
	return false
}
