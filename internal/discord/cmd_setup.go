package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/logger"
)

// SetupAssignmentsCommand returns the setupassignments command definition
// and handler. Admin-only: creates or repairs both boards in their
// configured channels.
func SetupAssignmentsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	adminPerms := int64(discordgo.PermissionAdministrator)
	cmd := &discordgo.ApplicationCommand{
		Name:                     "setupassignments",
		Description:              "Create or repair the assignment and armor boards",
		DefaultMemberPermissions: &adminPerms,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		log := logger.FromContext(ctx)

		if err := d.Boards.RefreshAssignmentBoard(ctx); err != nil {
			log.Error(LogMsgCommandFailed, "command", cmd.Name, "board", "assignment", "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		if err := d.Boards.RefreshArmorBoard(ctx); err != nil {
			log.Error(LogMsgCommandFailed, "command", cmd.Name, "board", "armor", "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		embed := createEmbed("📋 Boards Ready", MsgBoardsInitializing, ColorSuccess, FooterDominionAdmin)
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}
