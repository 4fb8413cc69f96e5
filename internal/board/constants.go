package board

// Board identifiers, used as metric labels and refresher keys.
const (
	BoardAssignment = "assignment"
	BoardArmor      = "armor"
)

// Page packing limits.
const (
	// MaxPageChars bounds a text page's description. Discord allows 4096
	// characters per embed description; 3000 leaves margin for titles and
	// trailing separators.
	MaxPageChars = 3000
	// MaxFieldsPerPage is Discord's per-embed field cap rounded down to a
	// multiple of the group size.
	MaxFieldsPerPage = 24
	// FieldsPerGroup is the number of fields one user's armor summary
	// occupies (identity, cloth, leather). Plate adds a fourth.
	FieldsPerGroup = 3
)

// Metadata store keys. The list keys hold a JSON-encoded ordered array of
// message IDs; the legacy keys hold a single ID and are kept in sync for
// backward compatibility with older deployments.
const (
	AssignmentListKey   = "board_message_ids"
	AssignmentLegacyKey = "board_message_id"
	ArmorListKey        = "armor_message_ids"
	ArmorLegacyKey      = "armor_message_id"
)

// Display strings.
const (
	AssignmentTitle     = "📋 Assigned Professions"
	AssignmentContTitle = "📋 Assigned Professions (cont’d)"
	ArmorTitle          = "🛡️ Armor Board"
	ArmorSubtitle       = "*Cloth, Leather, Rings & Hearts*"

	InitializingBody   = "*Initializing…*"
	NoAssignmentsLine  = "*No one assigned*"
	NoArmorBody        = "*No armor, rings or hearts set yet.*"
	NoPiecePlaceholder = "*(none)*"

	FieldNameUser    = "User"
	FieldNameCloth   = "🧵 Cloth"
	FieldNameLeather = "🥾 Leather"
	FieldNamePlate   = "🪨 Plate"
)

// Log messages.
const (
	LogMsgOfflineSkip       = "Offline mode, skipping board refresh"
	LogMsgBoardRefreshed    = "Board refreshed"
	LogMsgBoardRefreshError = "Board refresh failed"
)
