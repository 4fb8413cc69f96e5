package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ComponentHandler handles a message-component interaction. args holds the
// colon-separated values following the registered custom ID prefix.
type ComponentHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps, args []string)

// ComponentRegistry routes select-menu and button interactions by custom ID
// prefix. Custom IDs are "<prefix>" or "<prefix>:<arg>:<arg>...".
type ComponentRegistry struct {
	Handlers map[string]ComponentHandler
}

// NewComponentRegistry creates a new registry
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		Handlers: make(map[string]ComponentHandler),
	}
}

// Register adds a handler for a custom ID prefix
func (r *ComponentRegistry) Register(prefix string, handler ComponentHandler) {
	r.Handlers[prefix] = handler
}

// Handle processes a component interaction
func (r *ComponentRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
	customID := i.MessageComponentData().CustomID
	parts := strings.Split(customID, ":")

	h, ok := r.Handlers[parts[0]]
	if !ok {
		slog.Warn("No handler for component", "custom_id", customID)
		return
	}
	h(s, i, d, parts[1:])
}

// updateComponentMessage replaces the originating select-menu message with a
// plain confirmation, removing the components so the menu cannot be reused.
func updateComponentMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	}); err != nil {
		slog.Error(LogMsgComponentFailed, "error", err)
	}
}

// componentValue returns the first selected value of a select menu.
func componentValue(i *discordgo.InteractionCreate) (string, bool) {
	values := i.MessageComponentData().Values
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}
