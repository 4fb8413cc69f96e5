package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/board"
)

// ChannelMessenger adapts a discordgo session to the board.Messenger
// interface. Each board page is rendered as a single embed message.
type ChannelMessenger struct {
	session *discordgo.Session
}

// NewChannelMessenger creates a new ChannelMessenger
func NewChannelMessenger(session *discordgo.Session) *ChannelMessenger {
	return &ChannelMessenger{session: session}
}

// FetchMessage reports whether the message still exists. A deleted message
// is an ordinary outcome, not an error.
func (m *ChannelMessenger) FetchMessage(ctx context.Context, channelID, messageID string) (bool, error) {
	_, err := m.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownMessage(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}
	return true, nil
}

// SendPage sends the page as a new embed message and returns its ID.
func (m *ChannelMessenger) SendPage(ctx context.Context, channelID string, page board.Page) (string, error) {
	msg, err := m.session.ChannelMessageSendEmbed(channelID, pageEmbed(page), discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send board message: %w", err)
	}
	return msg.ID, nil
}

// EditPage replaces an existing message's embed with the page.
func (m *ChannelMessenger) EditPage(ctx context.Context, channelID, messageID string, page board.Page) error {
	if _, err := m.session.ChannelMessageEditEmbed(channelID, messageID, pageEmbed(page), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to edit board message %s: %w", messageID, err)
	}
	return nil
}

// DeletePage deletes a board message.
func (m *ChannelMessenger) DeletePage(ctx context.Context, channelID, messageID string) error {
	if err := m.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		if isUnknownMessage(err) {
			return nil
		}
		return fmt.Errorf("failed to delete board message %s: %w", messageID, err)
	}
	return nil
}

// pageEmbed renders a board page as a Discord embed.
func pageEmbed(page board.Page) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       page.Title,
		Description: page.Description,
		Color:       ColorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterDominion,
		},
	}
	for _, f := range page.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	return embed
}

// isUnknownMessage reports whether err is Discord's unknown-message code.
func isUnknownMessage(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeUnknownMessage
	}
	return false
}
