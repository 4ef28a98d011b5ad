package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/shop"
	"github.com/castawaybot/nookbot/nookbot/utils"
)

var Buy = discord.SlashCommandCreate{
	Name:        "buy",
	Description: "🛍️ Buy an item from the shop",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "item",
			Description: "Name of the item to buy",
			Required:    true,
		},
	},
}

func BuyHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		itemName := e.SlashCommandInteractionData().String("item")

		receipt, err := b.Engine.Buy(e.User().Username, itemName)
		if err != nil {
			return e.CreateMessage(discord.MessageCreate{
				Content: buyErrorMessage(b, itemName, err),
				Flags:   discord.MessageFlagEphemeral,
			})
		}

		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf(
				"Thank you for your patronage! One **%s** coming up!\n*You feel your pockets get slightly heavier, and your gold supply drop to %sg.*",
				receipt.Item, utils.FormatNumber(receipt.Wealth)),
		})
	}
}

func buyErrorMessage(b *nookbot.Bot, itemName string, err error) string {
	var funds *shop.InsufficientFundsError
	switch {
	case errors.Is(err, shop.ErrUnknownCustomer):
		return "You aren't a customer yet! Ask a host to register you."
	case errors.Is(err, shop.ErrUnknownItem):
		msg := fmt.Sprintf("Doesn't look like we sell anything by the name of **%s**... did you misspell it?", itemName)
		if suggestions := b.Engine.SuggestItems(itemName, 3); len(suggestions) > 0 {
			msg += fmt.Sprintf("\nPerhaps you meant: %s", strings.Join(suggestions, ", "))
		}
		return msg
	case errors.As(err, &funds):
		return fmt.Sprintf(
			"It seems you're a bit too low on funds for that purchase, by about %sg... Perhaps a cheaper ware catches your eye?",
			utils.FormatNumber(funds.Shortfall))
	default:
		return fmt.Sprintf("Something went wrong with your purchase: %v", err)
	}
}
