package admin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/shop"
	"github.com/castawaybot/nookbot/nookbot/utils"
)

var AddCustomer = discord.SlashCommandCreate{
	Name:        "addcustomer",
	Description: "Register a new customer",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "id",
			Description: "Unique customer handle",
			Required:    true,
		},
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Discord account to bind",
		},
		discord.ApplicationCommandOptionString{
			Name:        "realname",
			Description: "Real name",
		},
		discord.ApplicationCommandOptionString{
			Name:        "nickname",
			Description: "Nickname",
		},
		discord.ApplicationCommandOptionString{
			Name:        "tribe",
			Description: "Tribe the customer belongs to",
		},
		discord.ApplicationCommandOptionInt{
			Name:        "wealth",
			Description: "Starting gold (default 0)",
		},
	},
}

func AddCustomerHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		customer := &shop.Customer{
			ID:       data.String("id"),
			Realname: data.String("realname"),
			Nickname: data.String("nickname"),
			Tribe:    data.String("tribe"),
			Wealth:   int64(data.Int("wealth")),
		}
		if user, ok := data.OptUser("user"); ok {
			customer.DiscordID = int64(user.ID)
		}

		if err := b.Engine.RegisterCustomer(customer); err != nil {
			if errors.Is(err, shop.ErrAlreadyExists) {
				return e.CreateMessage(discord.MessageCreate{
					Content: fmt.Sprintf("❌ A customer with the handle **%s** already exists.", customer.ID),
					Flags:   discord.MessageFlagEphemeral,
				})
			}
			return err
		}

		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("📇 **%s** is now a customer. Welcome them warmly!", customer.ID),
			Flags:   discord.MessageFlagEphemeral,
		})
	}
}

var RemoveCustomer = discord.SlashCommandCreate{
	Name:        "removecustomer",
	Description: "Strike a customer from the directory",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "customer",
			Description: "Customer handle, name, nickname or Discord ID",
			Required:    true,
		},
	},
}

func RemoveCustomerHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		identifier := e.SlashCommandInteractionData().String("customer")

		customer, err := b.Engine.LookupCustomer(identifier)
		if errors.Is(err, shop.ErrUnknownCustomer) {
			return e.CreateMessage(discord.MessageCreate{
				Content: fmt.Sprintf("❌ No customer matches **%s**.", identifier),
				Flags:   discord.MessageFlagEphemeral,
			})
		} else if err != nil {
			return err
		}

		embed := discord.NewEmbedBuilder().
			SetTitle("⚠️ Confirm Removal").
			SetDescription(fmt.Sprintf(
				"**%s** (%s tribe, %sg, %d items) will be struck from the directory, inventory and all.",
				customer.ID, customer.Tribe, utils.FormatNumber(customer.Wealth), len(customer.Inventory))).
			SetColor(utils.WarningColor).
			Build()

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed},
			Components: []discord.ContainerComponent{
				discord.NewActionRow(
					discord.NewDangerButton("Remove", fmt.Sprintf("/removecustomer/confirm/%s", customer.ID)),
					discord.NewSecondaryButton("Cancel", "/removecustomer/cancel"),
				),
			},
			Flags: discord.MessageFlagEphemeral,
		})
	}
}

func RemoveCustomerConfirmHandler(b *nookbot.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		parts := strings.Split(e.Data.CustomID(), "/")
		if len(parts) < 4 { // /removecustomer/confirm/<id>
			return errors.New("invalid confirmation ID format")
		}
		identifier := strings.Join(parts[3:], "/")

		removed, err := b.Engine.DeregisterCustomer(identifier)
		if errors.Is(err, shop.ErrUnknownCustomer) {
			return e.UpdateMessage(discord.MessageUpdate{
				Content:    utils.Ptr(fmt.Sprintf("❌ **%s** is no longer in the directory.", identifier)),
				Embeds:     &[]discord.Embed{},
				Components: &[]discord.ContainerComponent{},
			})
		} else if err != nil {
			return err
		}

		return e.UpdateMessage(discord.MessageUpdate{
			Content:    utils.Ptr(fmt.Sprintf("🗑️ **%s** has been struck from the directory.", removed.ID)),
			Embeds:     &[]discord.Embed{},
			Components: &[]discord.ContainerComponent{},
		})
	}
}

func RemoveCustomerCancelHandler(_ *nookbot.Bot) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) error {
		return e.UpdateMessage(discord.MessageUpdate{
			Content:    utils.Ptr("Removal cancelled."),
			Embeds:     &[]discord.Embed{},
			Components: &[]discord.ContainerComponent{},
		})
	}
}

var Customers = discord.SlashCommandCreate{
	Name:        "customers",
	Description: "Browse the customer directory",
}

func CustomersHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		customers := b.Engine.Customers()
		if len(customers) == 0 {
			return e.CreateMessage(discord.MessageCreate{
				Content: "The directory is empty. Not a single customer!",
				Flags:   discord.MessageFlagEphemeral,
			})
		}

		totalPages := (len(customers) + utils.CustomersPerPage - 1) / utils.CustomersPerPage

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * utils.CustomersPerPage
				end := start + utils.CustomersPerPage
				if end > len(customers) {
					end = len(customers)
				}

				var sb strings.Builder
				for _, c := range customers[start:end] {
					sb.WriteString(fmt.Sprintf("**%s**", c.ID))
					if c.Tribe != "" {
						sb.WriteString(fmt.Sprintf(" · %s tribe", c.Tribe))
					}
					sb.WriteString(fmt.Sprintf(" · %sg · %d items\n", utils.FormatNumber(c.Wealth), len(c.Inventory)))
				}

				embed.
					SetTitle("📇 Customer Directory").
					SetDescription(sb.String()).
					SetColor(utils.InfoColor).
					SetFooter(fmt.Sprintf("Page %d/%d • Total: %d", page+1, totalPages, len(customers)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}
