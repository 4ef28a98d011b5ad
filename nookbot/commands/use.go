package commands

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/shop"
)

var Use = discord.SlashCommandCreate{
	Name:        "use",
	Description: "✨ Use an item from your inventory",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "item",
			Description: "Name of the item to use",
			Required:    true,
		},
	},
}

func UseHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		itemName := e.SlashCommandInteractionData().String("item")

		result, err := b.Engine.Use(e.User().Username, itemName)
		switch {
		case errors.Is(err, shop.ErrUnknownCustomer):
			return e.CreateMessage(discord.MessageCreate{
				Content: "You aren't a customer yet! Ask a host to register you.",
				Flags:   discord.MessageFlagEphemeral,
			})
		case errors.Is(err, shop.ErrUnknownOwnedItem):
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("No item in your inventory by the name of **%s**... did you misspell it?", itemName),
				Flags:   discord.MessageFlagEphemeral,
			})
		case err != nil:
			return err
		}

		return e.CreateMessage(discord.MessageCreate{
			Content: result.Text,
		})
	}
}
