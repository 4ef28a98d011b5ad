package admin

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/handlers"
	"github.com/castawaybot/nookbot/nookbot/utils"
)

const maxRestoreChoices = 25 // Discord select menu limit

var Backup = discord.SlashCommandCreate{
	Name:        "backup",
	Description: "Write a snapshot of the shop to disk right now",
}

var Restore = discord.SlashCommandCreate{
	Name:        "restore",
	Description: "Roll the shop back to the most recent snapshot",
}

var RestoreFrom = discord.SlashCommandCreate{
	Name:        "restorefrom",
	Description: "Roll the shop back to a snapshot of your choosing",
}

var ClearShop = discord.SlashCommandCreate{
	Name:        "clearshop",
	Description: "Wipe the catalog and the customer directory",
}

// SnapshotHandler groups the snapshot and rollback commands with their
// confirmation components.
type SnapshotHandler struct {
	b *nookbot.Bot
}

func NewSnapshotHandler(b *nookbot.Bot) *SnapshotHandler {
	return &SnapshotHandler{b: b}
}

func (h *SnapshotHandler) Register(r handler.Router) {
	r.Component("/restore/confirm", handlers.WrapComponentWithLogging("restore-confirm", h.HandleRestoreConfirm))
	r.Component("/restore/cancel", handlers.WrapComponentWithLogging("restore-cancel", h.HandleRestoreCancel))
	r.Component("/restore/pick", handlers.WrapComponentWithLogging("restore-pick", h.HandleRestorePick))
	r.Component("/clearshop/confirm", handlers.WrapComponentWithLogging("clearshop-confirm", h.HandleClearConfirm))
	r.Component("/clearshop/cancel", handlers.WrapComponentWithLogging("clearshop-cancel", h.HandleRestoreCancel))
}

func (h *SnapshotHandler) HandleBackup(e *handler.CommandEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	path, err := h.b.Snapshots.Save(ctx, h.b.Ledger)
	if err != nil {
		return e.CreateMessage(discord.MessageCreate{
			Content: fmt.Sprintf("❌ Snapshot failed: %v", err),
			Flags:   discord.MessageFlagEphemeral,
		})
	}
	return e.CreateMessage(discord.MessageCreate{
		Content: fmt.Sprintf("💾 Snapshot written to `%s`.", filepath.Base(path)),
		Flags:   discord.MessageFlagEphemeral,
	})
}

func (h *SnapshotHandler) HandleRestore(e *handler.CommandEvent) error {
	descriptors, err := h.b.Snapshots.List(1)
	if err != nil {
		return err
	}
	if len(descriptors) == 0 {
		return e.CreateMessage(discord.MessageCreate{
			Content: "❌ There are no snapshots to restore from.",
			Flags:   discord.MessageFlagEphemeral,
		})
	}

	latest := descriptors[0]
	return e.CreateMessage(discord.MessageCreate{
		Content: fmt.Sprintf(
			"⚠️ This replaces the live shop with `%s` (taken <t:%d:R>). Everything since is lost. Proceed?",
			latest.Name, latest.ModTime.Unix()),
		Components: []discord.ContainerComponent{
			discord.NewActionRow(
				discord.NewDangerButton("Restore", "/restore/confirm/"+latest.Name),
				discord.NewSecondaryButton("Cancel", "/restore/cancel"),
			),
		},
		Flags: discord.MessageFlagEphemeral,
	})
}

func (h *SnapshotHandler) HandleRestoreFrom(e *handler.CommandEvent) error {
	descriptors, err := h.b.Snapshots.List(maxRestoreChoices)
	if err != nil {
		return err
	}
	if len(descriptors) == 0 {
		return e.CreateMessage(discord.MessageCreate{
			Content: "❌ There are no snapshots to restore from.",
			Flags:   discord.MessageFlagEphemeral,
		})
	}

	options := make([]discord.StringSelectMenuOption, 0, len(descriptors))
	for _, d := range descriptors {
		options = append(options, discord.StringSelectMenuOption{
			Label:       d.Name,
			Value:       d.Name,
			Description: fmt.Sprintf("%s · %d bytes", d.ModTime.Format("2006-01-02 15:04:05"), d.Size),
		})
	}

	return e.CreateMessage(discord.MessageCreate{
		Content: "Pick a snapshot to roll back to:",
		Components: []discord.ContainerComponent{
			discord.NewActionRow(
				discord.NewStringSelectMenu("/restore/pick", "Select a snapshot", options...),
			),
		},
		Flags: discord.MessageFlagEphemeral,
	})
}

func (h *SnapshotHandler) HandleRestoreConfirm(e *handler.ComponentEvent) error {
	parts := strings.Split(e.Data.CustomID(), "/")
	if len(parts) != 4 { // /restore/confirm/<name>
		return errors.New("invalid confirmation ID format")
	}
	return h.restore(e, parts[3])
}

func (h *SnapshotHandler) HandleRestorePick(e *handler.ComponentEvent) error {
	data, ok := e.Data.(discord.StringSelectMenuInteractionData)
	if !ok || len(data.Values) == 0 {
		return errors.New("invalid snapshot selection")
	}
	return h.restore(e, data.Values[0])
}

func (h *SnapshotHandler) restore(e *handler.ComponentEvent, name string) error {
	path := filepath.Join(h.b.Snapshots.Dir(), filepath.Base(name))
	if err := h.b.Snapshots.Restore(h.b.Ledger, path); err != nil {
		return e.UpdateMessage(discord.MessageUpdate{
			Content:    utils.Ptr(fmt.Sprintf("❌ Restore failed: %v", err)),
			Components: &[]discord.ContainerComponent{},
		})
	}
	return e.UpdateMessage(discord.MessageUpdate{
		Content:    utils.Ptr(fmt.Sprintf("⏪ The shop has been rolled back to `%s`.", filepath.Base(path))),
		Components: &[]discord.ContainerComponent{},
	})
}

func (h *SnapshotHandler) HandleRestoreCancel(e *handler.ComponentEvent) error {
	return e.UpdateMessage(discord.MessageUpdate{
		Content:    utils.Ptr("Nothing was changed."),
		Components: &[]discord.ContainerComponent{},
	})
}

// HandleClearShop snapshots first so a fat-fingered wipe stays recoverable.
func (h *SnapshotHandler) HandleClearShop(e *handler.CommandEvent) error {
	return e.CreateMessage(discord.MessageCreate{
		Content: "⚠️ This wipes the catalog **and** every customer. A snapshot is taken first. Proceed?",
		Components: []discord.ContainerComponent{
			discord.NewActionRow(
				discord.NewDangerButton("Wipe it", "/clearshop/confirm"),
				discord.NewSecondaryButton("Cancel", "/clearshop/cancel"),
			),
		},
		Flags: discord.MessageFlagEphemeral,
	})
}

func (h *SnapshotHandler) HandleClearConfirm(e *handler.ComponentEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	path, err := h.b.Snapshots.Save(ctx, h.b.Ledger)
	if err != nil {
		return e.UpdateMessage(discord.MessageUpdate{
			Content:    utils.Ptr(fmt.Sprintf("❌ Pre-wipe snapshot failed, nothing was cleared: %v", err)),
			Components: &[]discord.ContainerComponent{},
		})
	}

	h.b.Ledger.Reset()
	return e.UpdateMessage(discord.MessageUpdate{
		Content:    utils.Ptr(fmt.Sprintf("🧹 The shop is empty. Pre-wipe snapshot: `%s`.", filepath.Base(path))),
		Components: &[]discord.ContainerComponent{},
	})
}
