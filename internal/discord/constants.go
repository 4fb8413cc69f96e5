package discord

// Embed colors
const (
	ColorSuccess = 0x2ecc71
	ColorInfo    = 0x3498db
	ColorWarn    = 0xf39c12
	ColorError   = 0xe74c3c
	ColorNeutral = 0x95a5a6
	ColorWelcome = 0x9b59b6
)

// Footer constants for standardized embed footers.
const (
	FooterDominion      = "Lich-core Dominion"
	FooterDominionAdmin = "Lich-core Dominion Admin"
)

// Component custom ID prefixes. Values after the prefix are colon-separated.
const (
	ComponentToolRarity    = "tool-rarity"
	ComponentArmorRarity   = "armor-rarity"
	ComponentProfessionSel = "profession-select"
	ComponentLevelSel      = "level-select"
)

// User-facing messages
const (
	MsgUnknownProfession  = "❌ That profession is not tracked here."
	MsgUnknownTool        = "❌ That tool is not tracked here."
	MsgUnknownArmorSlot   = "❌ That armor slot is not tracked here."
	MsgInvalidTier        = "❌ Tier must be between 1 and 10."
	MsgRarityNotAllowed   = "❌ That rarity is not available at this tier."
	MsgNothingToRemove    = "ℹ️ You had nothing set for that slot."
	MsgGenericError       = "Something went wrong. Please try again."
	MsgBoardsInitializing = "📋 Boards initialized. They will update as members register."
)

// Log messages
const (
	LogMsgBotReady            = "Bot is ready"
	LogMsgCommandFailed       = "Command failed"
	LogMsgComponentFailed     = "Component interaction failed"
	LogMsgDeferFailed         = "Failed to send deferred response"
	LogMsgEditFailed          = "Failed to edit interaction response"
	LogMsgWelcomeFailed       = "Failed to send welcome message"
	LogMsgMemberCleanupFailed = "Failed to clean up departed member"
)
