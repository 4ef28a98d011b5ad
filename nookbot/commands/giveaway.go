package commands

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/shop"
)

var GiveAway = discord.SlashCommandCreate{
	Name:        "giveaway",
	Description: "🎁 Give an item from your inventory to a tribemate",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "item",
			Description: "Name of the item to give away",
			Required:    true,
		},
		discord.ApplicationCommandOptionUser{
			Name:        "recipient",
			Description: "The lucky tribemate",
			Required:    true,
		},
	},
}

func GiveAwayHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		itemName := data.String("item")
		recipient := data.User("recipient")

		result, err := b.Engine.Give(e.User().Username, itemName, recipient.ID.String())
		switch {
		case errors.Is(err, shop.ErrUnknownCustomer):
			return e.CreateMessage(discord.MessageCreate{
				Content: "One of you isn't a customer yet! Ask a host to register you.",
				Flags:   discord.MessageFlagEphemeral,
			})
		case errors.Is(err, shop.ErrUnknownOwnedItem):
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("No item in your inventory by the name of **%s**... did you misspell it?", itemName),
				Flags:   discord.MessageFlagEphemeral,
			})
		case errors.Is(err, shop.ErrCrossTribeGift):
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("Nice try... %s is **not** in your party.", recipient.EffectiveName()),
				Flags:   discord.MessageFlagEphemeral,
			})
		case err != nil:
			return err
		}

		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("How generous! **%s** hands one **%s** over to **%s**.",
				result.Donor, result.Item, result.Recipient),
		})
	}
}
