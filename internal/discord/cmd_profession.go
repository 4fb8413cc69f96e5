package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/domain"
	"github.com/lichcore/dominion/internal/logger"
)

// professionChoices builds the shared option choices for profession options.
func professionChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Professions))
	for _, p := range domain.Professions {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: p, Value: p})
	}
	return choices
}

// AssignCommand returns the assignmyselfto command definition and handler
func AssignCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "assignmyselfto",
		Description: "Assign yourself to a profession on the board",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "profession",
				Description: "The profession to assign yourself to",
				Required:    true,
				Choices:     professionChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		user := getInteractionUser(i)
		profession := getOptions(i)[0].StringValue()

		if !domain.IsProfession(profession) {
			respondFriendlyError(s, i, domain.ErrUnknownProfession)
			return
		}

		if err := d.Assignments.Assign(ctx, user.ID, profession); err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		d.requestAssignmentRefresh()

		embed := createEmbed("📋 Assignment Added",
			fmt.Sprintf("You are now assigned to **%s**.", profession), ColorSuccess, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// UnassignCommand returns the unassignmyselffrom command definition and handler
func UnassignCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "unassignmyselffrom",
		Description: "Remove yourself from a profession on the board",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "profession",
				Description: "The profession to leave",
				Required:    true,
				Choices:     professionChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		user := getInteractionUser(i)
		profession := getOptions(i)[0].StringValue()

		if !domain.IsProfession(profession) {
			respondFriendlyError(s, i, domain.ErrUnknownProfession)
			return
		}

		if err := d.Assignments.Unassign(ctx, user.ID, profession); err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		d.requestAssignmentRefresh()

		embed := createEmbed("📋 Assignment Removed",
			fmt.Sprintf("You are no longer assigned to **%s**.", profession), ColorNeutral, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// SelectProfessionCommand returns the selectprofession command and handler.
// It walks the member through two select menus: profession, then level, and
// ends by granting the matching "<Profession> <Level>" role.
func SelectProfessionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "selectprofession",
		Description: "Pick a profession and level role via menus",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		options := make([]discordgo.SelectMenuOption, 0, len(domain.Professions))
		for _, p := range domain.Professions {
			options = append(options, discordgo.SelectMenuOption{Label: p, Value: p})
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Choose a profession:",
				Flags:   discordgo.MessageFlagsEphemeral,
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:    ComponentProfessionSel,
							Placeholder: "Profession",
							Options:     options,
						},
					}},
				},
			},
		}); err != nil {
			slog.Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
		}
	}

	return cmd, handler
}

// HandleProfessionSelect advances the menu flow to the level choice.
func HandleProfessionSelect(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps, _ []string) {
	profession, ok := componentValue(i)
	if !ok || !domain.IsProfession(profession) {
		updateComponentMessage(s, i, MsgUnknownProfession)
		return
	}

	options := make([]discordgo.SelectMenuOption, 0, len(domain.Levels))
	for _, level := range domain.Levels {
		options = append(options, discordgo.SelectMenuOption{Label: level, Value: level})
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Choose your **%s** level:", profession),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    ComponentLevelSel + ":" + profession,
						Placeholder: "Level",
						Options:     options,
					},
				}},
			},
		},
	}); err != nil {
		slog.Error(LogMsgComponentFailed, "error", err)
	}
}

// HandleLevelSelect finishes the menu flow: grants the level role, records
// the assignment and refreshes the board.
func HandleLevelSelect(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps, args []string) {
	if len(args) < 1 {
		updateComponentMessage(s, i, MsgGenericError)
		return
	}
	profession := args[0]
	level, ok := componentValue(i)
	if !ok || !domain.IsProfession(profession) {
		updateComponentMessage(s, i, MsgUnknownProfession)
		return
	}

	ctx := requestContext()
	log := logger.FromContext(ctx)
	user := getInteractionUser(i)
	roleName := fmt.Sprintf("%s %s", profession, level)

	if err := grantLevelRole(ctx, s, d, i.GuildID, user.ID, profession, roleName); err != nil {
		log.Error(LogMsgComponentFailed, "role", roleName, "error", err)
		updateComponentMessage(s, i, "❌ "+MsgGenericError)
		return
	}

	if err := d.Assignments.Assign(ctx, user.ID, profession); err != nil {
		log.Error(LogMsgComponentFailed, "error", err)
		updateComponentMessage(s, i, "❌ "+MsgGenericError)
		return
	}
	d.Roster.Invalidate(user.ID)
	d.requestAssignmentRefresh()

	updateComponentMessage(s, i, fmt.Sprintf("✅ You now hold **%s**.", roleName))
}

// grantLevelRole swaps the member onto the named level role, creating it if
// the guild does not have it yet and dropping any other level roles of the
// same profession.
func grantLevelRole(ctx context.Context, s *discordgo.Session, d *Deps, guildID, userID, profession, roleName string) error {
	role, err := d.Roster.RoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		role, err = s.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: roleName}, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to create role %q: %w", roleName, err)
		}
	}

	member, err := s.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to fetch member: %w", err)
	}

	roles, err := s.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to list guild roles: %w", err)
	}
	byID := make(map[string]*discordgo.Role, len(roles))
	for _, r := range roles {
		byID[r.ID] = r
	}
	for _, heldID := range member.Roles {
		held, ok := byID[heldID]
		if !ok || held.ID == role.ID {
			continue
		}
		if _, match := parseLevelRole(held.Name, profession); match {
			if err := s.GuildMemberRoleRemove(guildID, userID, held.ID, discordgo.WithContext(ctx)); err != nil {
				return fmt.Errorf("failed to remove role %q: %w", held.Name, err)
			}
		}
	}

	if err := s.GuildMemberRoleAdd(guildID, userID, role.ID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add role %q: %w", roleName, err)
	}
	return nil
}

// TopProfessionCommand returns the topprofession command definition and handler
func TopProfessionCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "topprofession",
		Description: "Show the highest-level member of a profession",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "profession",
				Description: "The profession to look up",
				Required:    true,
				Choices:     professionChoices(),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, d *Deps) {
		if !deferResponse(s, i) {
			return
		}
		ctx := requestContext()
		profession := getOptions(i)[0].StringValue()

		if !domain.IsProfession(profession) {
			respondFriendlyError(s, i, domain.ErrUnknownProfession)
			return
		}

		userID, level, found, err := d.Roster.TopHolder(ctx, profession)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "command", cmd.Name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		if !found {
			embed := createEmbed("🏆 Top "+profession,
				fmt.Sprintf("Nobody holds a %s level role yet.", profession), ColorNeutral, "")
			sendEmbed(s, i, embed)
			return
		}

		embed := createEmbed("🏆 Top "+profession,
			fmt.Sprintf("<@%s> leads with **%s %d**.", userID, profession, level), ColorWarn, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// requestContext builds a background context carrying a fresh request ID.
func requestContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}
