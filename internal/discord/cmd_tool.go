package discord

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/domain"
	"github.com/lichcore/dominion/internal/logger"
)

// toolChoices builds the option choices for tool options.
func toolChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Tools))
	for _, t := range domain.Tools {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: t, Value: t})
	}
	return choices
}

// rarityMenu builds a rarity select menu limited to the tier's valid
// rarities, with the given custom ID.
func rarityMenu(customID string, tier int) discordgo.SelectMenu {
	rarities := domain.ValidRaritiesForTier(tier)
	options := make([]discordgo.SelectMenuOption, 0, len(rarities))
	for _, r := range rarities {
		options = append(options, discordgo.SelectMenuOption{Label: r, Value: r})
	}
	return discordgo.SelectMenu{
		CustomID:    customID,
		Placeholder: "Rarity",
		Options:     options,
	}
}

// SetToolCommand returns the settool command definition and handler.
// The tier option gates the follow-up rarity menu: only rarities valid for
// that tier are offered.
func SetToolCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minTier := float64(domain.MinTier)
	cmd := &discordgo.ApplicationCommand{
		Name:        "settool",
		Description: "Record the tool you carry, with its tier and rarity",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tool",
				Description: "The tool to record",
				Required:    true,
				Choices:     toolChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "tier",
				Description: "The tool's tier (1-10)",
				Required:    true,
				MinValue:    &minTier,
				MaxValue:    float64(domain.MaxTier),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		opts := optionMap(i)
		tool := opts["tool"].StringValue()
		tier := int(opts["tier"].IntValue())

		if !domain.IsTool(tool) {
			respondEphemeral(s, i, MsgUnknownTool)
			return
		}
		if !domain.ValidTier(tier) {
			respondEphemeral(s, i, MsgInvalidTier)
			return
		}

		customID := fmt.Sprintf("%s:%s:%d", ComponentToolRarity, tool, tier)
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Pick the rarity of your **T%d %s**:", tier, tool),
				Flags:   discordgo.MessageFlagsEphemeral,
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{Components: []discordgo.MessageComponent{
						rarityMenu(customID, tier),
					}},
				},
			},
		}); err != nil {
			slog.Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
		}
	}

	return cmd, handler
}

// HandleToolRarity records the tool once the member picks a rarity.
// args is [tool, tier] from the custom ID.
func HandleToolRarity(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps, args []string) {
	if len(args) < 2 {
		updateComponentMessage(s, i, MsgGenericError)
		return
	}
	tool := args[0]
	tier, err := strconv.Atoi(args[1])
	rarity, ok := componentValue(i)

	switch {
	case err != nil || !domain.ValidTier(tier):
		updateComponentMessage(s, i, MsgInvalidTier)
		return
	case !domain.IsTool(tool):
		updateComponentMessage(s, i, MsgUnknownTool)
		return
	case !ok || !domain.RarityAllowed(rarity, tier):
		updateComponentMessage(s, i, MsgRarityNotAllowed)
		return
	}

	ctx := requestContext()
	user := getInteractionUser(i)
	loadout := domain.Loadout{Tier: tier, Rarity: rarity}

	if err := d.Loadouts.UpsertTool(ctx, user.ID, tool, loadout); err != nil {
		logger.FromContext(ctx).Error(LogMsgComponentFailed, "tool", tool, "error", err)
		updateComponentMessage(s, i, "❌ "+MsgGenericError)
		return
	}
	d.requestAssignmentRefresh()

	updateComponentMessage(s, i, fmt.Sprintf("🛠️ Recorded your **%s T%d %s**.", rarity, tier, tool))
}

// RemoveToolCommand returns the removetool command definition and handler
func RemoveToolCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "removetool",
		Description: "Clear a recorded tool",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tool",
				Description: "The tool to clear",
				Required:    true,
				Choices:     toolChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		user := getInteractionUser(i)
		tool := getOptions(i)[0].StringValue()

		if !domain.IsTool(tool) {
			respondFriendlyError(s, i, domain.ErrUnknownTool)
			return
		}

		if err := d.Loadouts.DeleteTool(ctx, user.ID, tool); err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		d.requestAssignmentRefresh()

		embed := createEmbed("🛠️ Tool Cleared",
			fmt.Sprintf("Your **%s** is no longer recorded.", tool), ColorNeutral, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
