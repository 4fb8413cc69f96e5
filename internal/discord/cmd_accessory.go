package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lichcore/dominion/internal/domain"
	"github.com/lichcore/dominion/internal/logger"
)

var titleCaser = cases.Title(language.English)

// accessoryCommand builds a set<kind> command for one accessory kind.
// Accessories carry a tier but no rarity.
func accessoryCommand(kind string) (*discordgo.ApplicationCommand, CommandHandler) {
	minTier := float64(domain.MinTier)
	display := titleCaser.String(kind)
	cmd := &discordgo.ApplicationCommand{
		Name:        "set" + kind,
		Description: fmt.Sprintf("Record your %s's tier", kind),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "tier",
				Description: fmt.Sprintf("The %s's tier (1-10)", kind),
				Required:    true,
				MinValue:    &minTier,
				MaxValue:    float64(domain.MaxTier),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		user := getInteractionUser(i)
		tier := int(getOptions(i)[0].IntValue())

		if !domain.ValidTier(tier) {
			respondFriendlyError(s, i, domain.ErrInvalidTier)
			return
		}

		if err := d.Loadouts.UpsertAccessory(ctx, user.ID, kind, tier); err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		d.requestArmorRefresh()

		embed := createEmbed("💍 "+display+" Recorded",
			fmt.Sprintf("Your %s is now **T%d**.", kind, tier), ColorSuccess, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// SetRingCommand returns the setring command definition and handler
func SetRingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return accessoryCommand(domain.AccessoryRing)
}

// SetHeartCommand returns the setheart command definition and handler
func SetHeartCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return accessoryCommand(domain.AccessoryHeart)
}
