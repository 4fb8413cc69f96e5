package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/lichcore/dominion/internal/domain"
)

func TestFriendlyError(t *testing.T) {
	t.Run("maps domain errors to member messages", func(t *testing.T) {
		assert.Equal(t, MsgUnknownProfession, friendlyError(domain.ErrUnknownProfession))
		assert.Equal(t, MsgUnknownTool, friendlyError(domain.ErrUnknownTool))
		assert.Equal(t, MsgInvalidTier, friendlyError(domain.ErrInvalidTier))
		assert.Equal(t, MsgRarityNotAllowed, friendlyError(domain.ErrRarityNotAllowed))
	})

	t.Run("wrapped domain errors still map", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), domain.ErrInvalidTier)
		assert.Equal(t, MsgInvalidTier, friendlyError(wrapped))
	})

	t.Run("unknown errors get the generic line", func(t *testing.T) {
		got := friendlyError(errors.New("pgx: connection refused"))
		assert.Equal(t, "❌ "+MsgGenericError, got)
		assert.NotContains(t, got, "pgx")
	})
}

func TestCreateEmbed(t *testing.T) {
	t.Run("defaults the footer", func(t *testing.T) {
		embed := createEmbed("Title", "Desc", ColorInfo, "")
		assert.Equal(t, FooterDominion, embed.Footer.Text)
	})

	t.Run("keeps a custom footer", func(t *testing.T) {
		embed := createEmbed("Title", "Desc", ColorInfo, FooterDominionAdmin)
		assert.Equal(t, FooterDominionAdmin, embed.Footer.Text)
	})
}

func TestGetInteractionUser(t *testing.T) {
	guildUser := &discordgo.User{ID: "guild-user"}
	dmUser := &discordgo.User{ID: "dm-user"}

	t.Run("prefers the guild member", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: guildUser},
		}}
		assert.Equal(t, "guild-user", getInteractionUser(i).ID)
	})

	t.Run("falls back to the DM user", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			User: dmUser,
		}}
		assert.Equal(t, "dm-user", getInteractionUser(i).ID)
	})
}

func TestCommandEqual(t *testing.T) {
	base := func() *discordgo.ApplicationCommand {
		cmd, _ := AssignCommand()
		return cmd
	}

	t.Run("identical commands are equal", func(t *testing.T) {
		assert.True(t, commandEqual(base(), base()))
	})

	t.Run("description change detected", func(t *testing.T) {
		b := base()
		b.Description = "changed"
		assert.False(t, commandEqual(base(), b))
	})

	t.Run("choice change detected", func(t *testing.T) {
		b := base()
		b.Options[0].Choices[0].Name = "Changed"
		assert.False(t, commandEqual(base(), b))
	})

	t.Run("permission change detected", func(t *testing.T) {
		b := base()
		perms := int64(discordgo.PermissionAdministrator)
		b.DefaultMemberPermissions = &perms
		assert.False(t, commandEqual(base(), b))
	})
}

func TestCommandsEqual(t *testing.T) {
	a1, _ := AssignCommand()
	a2, _ := AssignCommand()
	u1, _ := UnassignCommand()

	t.Run("order does not matter", func(t *testing.T) {
		assert.True(t, commandsEqual(
			[]*discordgo.ApplicationCommand{a1, u1},
			[]*discordgo.ApplicationCommand{u1, a2},
		))
	})

	t.Run("missing command detected", func(t *testing.T) {
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{a1},
			[]*discordgo.ApplicationCommand{u1},
		))
	})

	t.Run("length mismatch detected", func(t *testing.T) {
		assert.False(t, commandsEqual(
			[]*discordgo.ApplicationCommand{a1, u1},
			[]*discordgo.ApplicationCommand{a2},
		))
	})
}
