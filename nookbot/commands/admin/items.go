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

var AddItem = discord.SlashCommandCreate{
	Name:        "additem",
	Description: "Stock the shop with an item",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Item name",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "price",
			Description: "Price in gold",
			Required:    true,
			MinValue:    utils.Ptr(0),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "quantity",
			Description: "How many to stock (default 1)",
			MinValue:    utils.Ptr(1),
		},
		discord.ApplicationCommandOptionString{
			Name:        "description",
			Description: "Storefront description",
		},
		discord.ApplicationCommandOptionString{
			Name:        "use_text",
			Description: "Message shown when the item is used",
		},
	},
}

func AddItemHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		item := shop.Item{
			Name:             data.String("name"),
			Price:            int64(data.Int("price")),
			Quantity:         1,
			Description:      data.String("description"),
			DescriptionOnUse: data.String("use_text"),
		}
		if quantity, ok := data.OptInt("quantity"); ok {
			item.Quantity = int64(quantity)
		}

		b.Engine.StockItem(item)
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("📦 Stocked %dx **%s** at %sg.", item.Quantity, item.Name, utils.FormatNumber(item.Price)),
			Flags:   discord.MessageFlagEphemeral,
		})
	}
}

var RemoveItem = discord.SlashCommandCreate{
	Name:        "removeitem",
	Description: "Pull an item from the shelves entirely",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Item name",
			Required:    true,
		},
	},
}

func RemoveItemHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		name := e.SlashCommandInteractionData().String("name")
		if err := b.Engine.DelistItem(name); err != nil {
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("❌ No item named **%s** on the shelves.", name),
				Flags:   discord.MessageFlagEphemeral,
			})
		}
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("🗑️ **%s** has been pulled from the shelves.", name),
			Flags:   discord.MessageFlagEphemeral,
		})
	}
}

var SetQuantity = discord.SlashCommandCreate{
	Name:        "setquantity",
	Description: "Set the stocked quantity of an item (0 delists it)",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Item name",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "quantity",
			Description: "New quantity",
			Required:    true,
			MinValue:    utils.Ptr(0),
		},
	},
}

func SetQuantityHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		name := data.String("name")
		quantity := int64(data.Int("quantity"))

		err := b.Engine.RestockQuantity(name, quantity)
		if errors.Is(err, shop.ErrUnknownItem) {
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("❌ No item named **%s** on the shelves.", name),
				Flags:   discord.MessageFlagEphemeral,
			})
		} else if err != nil {
			return err
		}

		if quantity == 0 {
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("🗑️ **%s** sold down to zero and has been delisted.", name),
				Flags:   discord.MessageFlagEphemeral,
			})
		}
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("📦 **%s** now has %d in stock.", name, quantity),
			Flags:   discord.MessageFlagEphemeral,
		})
	}
}
