package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/importer"
	"github.com/castawaybot/nookbot/nookbot/utils"
)

var ImportItems = discord.SlashCommandCreate{
	Name:        "importitems",
	Description: "Bulk-stock the shop from the item descriptor folder",
}

var ImportCustomers = discord.SlashCommandCreate{
	Name:        "importcustomers",
	Description: "Bulk-register customers from the customer descriptor folder",
}

func ImportItemsHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return runImport(e, "items", func(ctx context.Context) (*importer.Report, error) {
			return b.Importer.ImportItems(ctx, b.Cfg.Shop.ItemsDir)
		})
	}
}

func ImportCustomersHandler(b *nookbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return runImport(e, "customers", func(ctx context.Context) (*importer.Report, error) {
			return b.Importer.ImportCustomers(ctx, b.Cfg.Shop.CustomersDir)
		})
	}
}

func runImport(e *handler.CommandEvent, what string, do func(ctx context.Context) (*importer.Report, error)) error {
	if err := e.DeferCreateMessage(true); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	report, err := do(ctx)
	if errors.Is(err, importer.ErrDirectoryNotFound) {
		_, updErr := e.UpdateInteractionResponse(discord.MessageUpdate{
			Content: utils.Ptr(fmt.Sprintf("❌ The %s import folder does not exist.", what)),
		})
		return updErr
	} else if err != nil {
		_, updErr := e.UpdateInteractionResponse(discord.MessageUpdate{
			Content: utils.Ptr(fmt.Sprintf("❌ Import failed: %v", err)),
		})
		return updErr
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📥 Imported **%d** %s.", len(report.Imported), what))
	if len(report.Failed) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️ %d files failed:", len(report.Failed)))
		for name, ferr := range report.Failed {
			sb.WriteString(fmt.Sprintf("\n• `%s`: %v", name, ferr))
		}
	}

	_, updErr := e.UpdateInteractionResponse(discord.MessageUpdate{
		Content: utils.Ptr(sb.String()),
	})
	return updErr
}
