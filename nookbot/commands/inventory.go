package commands

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/shop"
	"github.com/castawaybot/nookbot/nookbot/utils"
)

var Inventory = discord.SlashCommandCreate{
	Name:        "inventory",
	Description: "🎒 Peek into your pouch",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "customer",
			Description: "Peek into someone else's pouch instead",
		},
	},
}

func InventoryHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		identifier, inspecting := e.SlashCommandInteractionData().OptString("customer")
		if !inspecting {
			identifier = e.User().Username
		}

		customer, err := b.Engine.LookupCustomer(identifier)
		if errors.Is(err, shop.ErrUnknownCustomer) {
			content := "You aren't a customer yet! Ask a host to register you."
			if inspecting {
				content = fmt.Sprintf("No customer matches **%s**.", identifier)
			}
			return e.CreateMessage(discord.MessageCreate{
				Content: content,
				Flags:   discord.MessageFlagEphemeral,
			})
		} else if err != nil {
			return err
		}

		title := "🎒 Your Inventory"
		if inspecting {
			title = fmt.Sprintf("🎒 %s's Inventory", customer.ID)
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       title,
				Description: "Let's see what you have...\n\n" + utils.FormatInventory(customer),
				Color:       utils.InfoColor,
			}},
			Flags: discord.MessageFlagEphemeral,
		})
	}
}
