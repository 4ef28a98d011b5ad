package commands

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/utils"
)

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "🏪 See what's for sale today",
}

func ShopHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		items := b.Engine.CatalogItems()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "🏪 Carl Nook's Shop",
				Description: b.Cfg.Shop.Greeting + "\n\n" + utils.FormatCatalog(items),
				Color:       utils.InfoColor,
				Footer: &discord.EmbedFooter{
					Text: "Use /buy <item name> to make a purchase",
				},
			}},
		})
	}
}
