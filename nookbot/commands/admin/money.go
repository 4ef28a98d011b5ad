package admin

import (
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/shop"
	"github.com/castawaybot/nookbot/nookbot/utils"
)

var MoveMoney = discord.SlashCommandCreate{
	Name:        "movemoney",
	Description: "Adjust one customer's gold (negative amounts deduct)",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "customer",
			Description: "Customer handle, name, nickname or Discord ID",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "Gold to add or remove",
			Required:    true,
		},
	},
}

func MoveMoneyHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		identifier := data.String("customer")
		amount := int64(data.Int("amount"))

		balance, err := b.Engine.AdjustWealth(identifier, amount)
		if errors.Is(err, shop.ErrUnknownCustomer) {
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("❌ No customer matches **%s**.", identifier),
				Flags:   discord.MessageFlagEphemeral,
			})
		} else if err != nil {
			return err
		}

		verb := "received"
		if amount < 0 {
			verb = "lost"
		}
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("💰 **%s** %s %sg. New balance: %sg.",
				identifier, verb, utils.FormatNumber(abs(amount)), utils.FormatNumber(balance)),
			Flags: discord.MessageFlagEphemeral,
		})
	}
}

var MoveMoneyTribe = discord.SlashCommandCreate{
	Name:        "movemoneytribe",
	Description: "Adjust the gold of every customer in a tribe",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "tribe",
			Description: "Tribe name",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "amount",
			Description: "Gold to add or remove per customer",
			Required:    true,
		},
	},
}

func MoveMoneyTribeHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		tribe := data.String("tribe")
		amount := int64(data.Int("amount"))

		adjusted := b.Engine.AdjustWealthForTribe(tribe, amount)
		if adjusted == 0 {
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("❌ No customers in a tribe called **%s**.", tribe),
				Flags:   discord.MessageFlagEphemeral,
			})
		}

		verb := "received"
		if amount < 0 {
			verb = "lost"
		}
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("💰 %d customers of **%s** each %s %sg.",
				adjusted, tribe, verb, utils.FormatNumber(abs(amount))),
			Flags: discord.MessageFlagEphemeral,
		})
	}
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
