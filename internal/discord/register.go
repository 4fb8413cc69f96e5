package discord

import "github.com/bwmarrin/discordgo"

// RegisterAll wires every command and component handler into the bot's
// registries. Call before RegisterCommands.
func (b *Bot) RegisterAll() {
	commands := []func() (*discordgo.ApplicationCommand, CommandHandler){
		AssignCommand,
		UnassignCommand,
		SelectProfessionCommand,
		TopProfessionCommand,
		SetToolCommand,
		RemoveToolCommand,
		SetArmorCommand,
		RemoveArmorCommand,
		SetRingCommand,
		SetHeartCommand,
		InfoCommand,
		SetTimerCommand,
		SetupAssignmentsCommand,
	}
	for _, factory := range commands {
		b.Registry.Register(factory())
	}

	b.Components.Register(ComponentProfessionSel, HandleProfessionSelect)
	b.Components.Register(ComponentLevelSel, HandleLevelSelect)
	b.Components.Register(ComponentToolRarity, HandleToolRarity)
	b.Components.Register(ComponentArmorRarity, HandleArmorRarity)
}
