package commands

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/castawaybot/nookbot/nookbot/commands/admin"
)

var Commands = []discord.ApplicationCommandCreate{
	Shop,
	Buy,
	Use,
	GiveAway,
	Inventory,
}

func init() {
	Commands = append(Commands, admin.Commands...)
}
