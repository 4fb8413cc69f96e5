package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/lichcore/dominion/internal/logger"
	"github.com/lichcore/dominion/internal/worker"
)

const maxTimerMinutes = 24 * 60

// SetTimerCommand returns the settimer command definition and handler.
// The timer fires in the channel the command was used in.
func SetTimerCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minMinutes := float64(1)
	cmd := &discordgo.ApplicationCommand{
		Name:        "settimer",
		Description: "Ping yourself here after a number of minutes",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minutes",
				Description: "Minutes until the ping",
				Required:    true,
				MinValue:    &minMinutes,
				MaxValue:    float64(maxTimerMinutes),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "note",
				Description: "A note to include with the ping",
				Required:    false,
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
		minutes := int(opts["minutes"].IntValue())
		note := ""
		if opt, ok := opts["note"]; ok {
			note = opt.StringValue()
		}

		if minutes < 1 || minutes > maxTimerMinutes {
			respondError(s, i, "❌ Minutes must be between 1 and 1440.")
			return
		}

		id := d.Timers.Schedule(time.Duration(minutes)*time.Minute, i.ChannelID, user.ID, note)
		logger.FromContext(ctx).Info("Timer scheduled",
			"timer_id", id, "user_id", user.ID, "minutes", minutes)

		embed := createEmbed("⏰ Timer Set",
			fmt.Sprintf("I will ping you here in **%d minute(s)**.", minutes), ColorSuccess, "")
		sendEmbed(s, i, embed)
	}

	return cmd, handler
}

// TimerPing is the TimerWorker callback: it pings the user in the channel
// the timer was set in.
func TimerPing(s *discordgo.Session) worker.TimerCallback {
	return func(ctx context.Context, channelID, userID, note string) error {
		content := fmt.Sprintf("⏰ <@%s> your timer is up!", userID)
		if note != "" {
			content += " Note: " + note
		}
		if _, err := s.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to send timer ping: %w", err)
		}
		return nil
	}
}
