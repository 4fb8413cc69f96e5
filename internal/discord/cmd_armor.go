package discord

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/domain"
	"github.com/lichcore/dominion/internal/logger"
)

func materialChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Materials))
	for _, m := range domain.Materials {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: m, Value: m})
	}
	return choices
}

func pieceChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Pieces))
	for _, p := range domain.Pieces {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: p, Value: p})
	}
	return choices
}

// SetArmorCommand returns the setarmor command definition and handler.
// Like settool, the tier gates the follow-up rarity menu.
func SetArmorCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minTier := float64(domain.MinTier)
	cmd := &discordgo.ApplicationCommand{
		Name:        "setarmor",
		Description: "Record an armor piece, with its tier and rarity",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "material",
				Description: "The armor material",
				Required:    true,
				Choices:     materialChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "piece",
				Description: "The armor piece",
				Required:    true,
				Choices:     pieceChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "tier",
				Description: "The piece's tier (1-10)",
				Required:    true,
				MinValue:    &minTier,
				MaxValue:    float64(domain.MaxTier),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		opts := optionMap(i)
		material := opts["material"].StringValue()
		piece := opts["piece"].StringValue()
		tier := int(opts["tier"].IntValue())

		switch {
		case !domain.IsMaterial(material) || !domain.IsPiece(piece):
			respondEphemeral(s, i, MsgUnknownArmorSlot)
			return
		case !domain.ValidTier(tier):
			respondEphemeral(s, i, MsgInvalidTier)
			return
		}

		customID := fmt.Sprintf("%s:%s:%s:%d", ComponentArmorRarity, material, piece, tier)
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Pick the rarity of your **T%d %s %s**:", tier, material, piece),
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

// HandleArmorRarity records the armor piece once the member picks a rarity.
// args is [material, piece, tier] from the custom ID.
func HandleArmorRarity(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps, args []string) {
	if len(args) < 3 {
		updateComponentMessage(s, i, MsgGenericError)
		return
	}
	material, piece := args[0], args[1]
	tier, err := strconv.Atoi(args[2])
	rarity, ok := componentValue(i)

	switch {
	case err != nil || !domain.ValidTier(tier):
		updateComponentMessage(s, i, MsgInvalidTier)
		return
	case !domain.IsMaterial(material) || !domain.IsPiece(piece):
		updateComponentMessage(s, i, MsgUnknownArmorSlot)
		return
	case !ok || !domain.RarityAllowed(rarity, tier):
		updateComponentMessage(s, i, MsgRarityNotAllowed)
		return
	}

	ctx := requestContext()
	user := getInteractionUser(i)
	key := domain.ArmorKey{Material: material, Piece: piece}
	loadout := domain.Loadout{Tier: tier, Rarity: rarity}

	if err := d.Loadouts.UpsertArmor(ctx, user.ID, key, loadout); err != nil {
		logger.FromContext(ctx).Error(LogMsgComponentFailed, "material", material, "piece", piece, "error", err)
		updateComponentMessage(s, i, "❌ "+MsgGenericError)
		return
	}
	d.requestArmorRefresh()

	updateComponentMessage(s, i,
		fmt.Sprintf("🛡️ Recorded your **%s T%d %s %s**.", rarity, tier, material, piece))
}

// RemoveArmorCommand returns the removearmor command definition and handler
func RemoveArmorCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "removearmor",
		Description: "Clear a recorded armor piece",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "material",
				Description: "The armor material",
				Required:    true,
				Choices:     materialChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "piece",
				Description: "The armor piece",
				Required:    true,
				Choices:     pieceChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		user := getInteractionUser(i)
		opts := optionMap(i)
		material := opts["material"].StringValue()
		piece := opts["piece"].StringValue()

		if !domain.IsMaterial(material) {
			respondFriendlyError(s, i, domain.ErrUnknownMaterial)
			return
		}
		if !domain.IsPiece(piece) {
			respondFriendlyError(s, i, domain.ErrUnknownPiece)
			return
		}

		key := domain.ArmorKey{Material: material, Piece: piece}
		if err := d.Loadouts.DeleteArmor(ctx, user.ID, key); err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		d.requestArmorRefresh()

		embed := createEmbed("🛡️ Armor Cleared",
			fmt.Sprintf("Your **%s %s** is no longer recorded.", material, piece), ColorNeutral, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
