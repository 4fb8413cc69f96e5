package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/domain"
	"github.com/lichcore/dominion/internal/logger"
)

// InfoCommand returns the info command definition and handler. It renders
// the invoking member's full profile: professions, tools, armor and
// accessories.
func InfoCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "info",
		Description: "Show everything recorded about you",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		log := logger.FromContext(ctx)
		user := getInteractionUser(i)

		assignments, err := d.Assignments.FetchAll(ctx)
		if err != nil {
			log.Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		tools, err := d.Loadouts.FetchAllTools(ctx)
		if err != nil {
			log.Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		armor, err := d.Loadouts.FetchAllArmor(ctx)
		if err != nil {
			log.Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("📜 Profile", fmt.Sprintf("Everything recorded for <@%s>.", user.ID), ColorInfo, "")
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Professions", Value: professionsField(assignments[user.ID], d, user.ID)},
			{Name: "Tools", Value: toolsField(tools[user.ID])},
			{Name: "Armor", Value: armorField(armor[user.ID])},
			{Name: "Accessories", Value: accessoriesField(ctx, d, user.ID)},
		}
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

func professionsField(held []string, d *Deps, userID string) string {
	if len(held) == 0 {
		return "*(none)*"
	}
	lines := make([]string, 0, len(held))
	for _, p := range domain.Professions {
		for _, h := range held {
			if h == p {
				lines = append(lines, "- "+d.Roster.ResolveRankLabel(userID, p))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func toolsField(tools map[string]domain.Loadout) string {
	if len(tools) == 0 {
		return "*(none)*"
	}
	lines := make([]string, 0, len(tools))
	for _, t := range domain.Tools {
		if l, ok := tools[t]; ok {
			lines = append(lines, fmt.Sprintf("- %s T%d %s", l.Rarity, l.Tier, t))
		}
	}
	return strings.Join(lines, "\n")
}

func armorField(armor map[domain.ArmorKey]domain.Loadout) string {
	if len(armor) == 0 {
		return "*(none)*"
	}
	lines := make([]string, 0, len(armor))
	for _, m := range domain.Materials {
		for _, p := range domain.Pieces {
			if l, ok := armor[domain.ArmorKey{Material: m, Piece: p}]; ok {
				lines = append(lines, fmt.Sprintf("- %s %s: %s T%d", m, p, l.Rarity, l.Tier))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func accessoriesField(ctx context.Context, d *Deps, userID string) string {
	lines := make([]string, 0, len(domain.AccessoryKinds))
	for _, kind := range domain.AccessoryKinds {
		snapshot, err := d.Loadouts.FetchAccessories(ctx, kind)
		if err != nil {
			continue
		}
		if tier, ok := snapshot[userID]; ok {
			lines = append(lines, fmt.Sprintf("- %s: T%d", titleCaser.String(kind), tier))
		}
	}
	if len(lines) == 0 {
		return "*(none)*"
	}
	return strings.Join(lines, "\n")
}
