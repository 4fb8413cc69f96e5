package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/logger"
)

// guildMemberAdd greets new members in the configured welcome channel.
func (b *Bot) guildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if b.Deps.WelcomeChannelID == "" || m.GuildID != b.GuildID {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "👋 Welcome to the Dominion",
		Description: fmt.Sprintf(
			"Welcome <@%s>! Use `/assignmyselfto` to join a profession and `/settool` to record your gear.",
			m.User.ID),
		Color: ColorWelcome,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterDominion,
		},
	}

	if _, err := s.ChannelMessageSendEmbed(b.Deps.WelcomeChannelID, embed); err != nil {
		logger.FromContext(requestContext()).Error(LogMsgWelcomeFailed, "user_id", m.User.ID, "error", err)
	}
}

// guildMemberRemove clears a departed member's assignments and loadouts so
// the boards stop listing them.
func (b *Bot) guildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	if m.GuildID != b.GuildID {
		return
	}

	ctx := requestContext()
	log := logger.FromContext(ctx)
	log.Info("Member left, cleaning up", "user_id", m.User.ID)

	b.Deps.Roster.Invalidate(m.User.ID)

	if err := b.Deps.Assignments.RemoveUser(ctx, m.User.ID); err != nil {
		log.Error(LogMsgMemberCleanupFailed, "user_id", m.User.ID, "error", err)
	}
	if err := b.Deps.Loadouts.RemoveUser(ctx, m.User.ID); err != nil {
		log.Error(LogMsgMemberCleanupFailed, "user_id", m.User.ID, "error", err)
	}

	b.Deps.requestAssignmentRefresh()
	b.Deps.requestArmorRefresh()
}
