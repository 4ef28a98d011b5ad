package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/robfig/cron/v3"

	"github.com/castawaybot/nookbot/nookbot"
	"github.com/castawaybot/nookbot/nookbot/commands"
	"github.com/castawaybot/nookbot/nookbot/commands/admin"
	"github.com/castawaybot/nookbot/nookbot/handlers"
	"github.com/castawaybot/nookbot/nookbot/logger"
	"github.com/castawaybot/nookbot/nookbot/snapshot"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Nook shop bot",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := nookbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.Info("Configuration loaded successfully")

	b := nookbot.New(*cfg, version, commit)

	store := snapshot.NewStore(cfg.Shop.SnapshotDir)
	if cfg.Spaces.Enabled {
		mirror, err := snapshot.NewSpaces(cfg.Spaces.Key, cfg.Spaces.Secret, cfg.Spaces.Region, cfg.Spaces.Bucket, cfg.Spaces.Root)
		if err != nil {
			slog.Error("Failed to initialize snapshot mirror",
				slog.String("type", "sys"),
				slog.Any("error", err))
			os.Exit(-1)
		}
		store.SetMirror(mirror)
		slog.Info("Snapshot mirror enabled",
			slog.String("type", "snap"),
			slog.String("bucket", mirror.Bucket()),
			slog.String("region", mirror.Region()))
	}
	b.Snapshots = store

	// The shop reopens where it left off.
	if restored, err := store.RestoreLatest(b.Ledger); err != nil {
		if errors.Is(err, snapshot.ErrNoSnapshot) {
			slog.Info("No snapshot found, opening an empty shop",
				slog.String("type", "snap"),
				slog.String("dir", store.Dir()))
		} else {
			slog.Error("Failed to restore latest snapshot",
				slog.String("type", "snap"),
				slog.Any("error", err))
			os.Exit(-1)
		}
	} else {
		slog.Info("Shop state restored",
			slog.String("type", "snap"),
			slog.String("path", restored))
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Shop.SnapshotSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := store.Save(ctx, b.Ledger); err != nil {
			slog.Error("Scheduled snapshot failed",
				slog.String("type", "snap"),
				slog.Any("error", err))
		}
	}); err != nil {
		slog.Error("Invalid snapshot schedule",
			slog.String("type", "sys"),
			slog.String("schedule", cfg.Shop.SnapshotSchedule),
			slog.Any("error", err))
		os.Exit(-1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	h := handler.New()

	// Customer-facing commands
	h.Command("/shop", handlers.WrapWithLogging("shop", commands.ShopHandler(b)))
	h.Command("/buy", handlers.WrapWithLogging("buy", commands.BuyHandler(b)))
	h.Command("/use", handlers.WrapWithLogging("use", commands.UseHandler(b)))
	h.Command("/giveaway", handlers.WrapWithLogging("giveaway", commands.GiveAwayHandler(b)))
	h.Command("/inventory", handlers.WrapWithLogging("inventory", commands.InventoryHandler(b)))

	// Catalog management
	h.Command("/additem", handlers.WrapWithLogging("additem", admin.AddItemHandler(b)))
	h.Command("/removeitem", handlers.WrapWithLogging("removeitem", admin.RemoveItemHandler(b)))
	h.Command("/setquantity", handlers.WrapWithLogging("setquantity", admin.SetQuantityHandler(b)))

	// Customer directory management
	h.Command("/addcustomer", handlers.WrapWithLogging("addcustomer", admin.AddCustomerHandler(b)))
	h.Command("/removecustomer", handlers.WrapWithLogging("removecustomer", admin.RemoveCustomerHandler(b)))
	h.Component("/removecustomer/confirm", handlers.WrapComponentWithLogging("removecustomer-confirm", admin.RemoveCustomerConfirmHandler(b)))
	h.Component("/removecustomer/cancel", handlers.WrapComponentWithLogging("removecustomer-cancel", admin.RemoveCustomerCancelHandler(b)))
	h.Command("/customers", handlers.WrapWithLogging("customers", admin.CustomersHandler(b)))

	// Wealth adjustments
	h.Command("/movemoney", handlers.WrapWithLogging("movemoney", admin.MoveMoneyHandler(b)))
	h.Command("/movemoneytribe", handlers.WrapWithLogging("movemoneytribe", admin.MoveMoneyTribeHandler(b)))

	// Snapshots and rollback
	snapshotHandler := admin.NewSnapshotHandler(b)
	h.Command("/backup", handlers.WrapWithLogging("backup", snapshotHandler.HandleBackup))
	h.Command("/restore", handlers.WrapWithLogging("restore", snapshotHandler.HandleRestore))
	h.Command("/restorefrom", handlers.WrapWithLogging("restorefrom", snapshotHandler.HandleRestoreFrom))
	h.Command("/clearshop", handlers.WrapWithLogging("clearshop", snapshotHandler.HandleClearShop))
	snapshotHandler.Register(h)

	// Bulk imports
	h.Command("/importitems", handlers.WrapWithLogging("importitems", admin.ImportItemsHandler(b)))
	h.Command("/importcustomers", handlers.WrapWithLogging("importcustomers", admin.ImportCustomersHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down, writing a final snapshot...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if _, err := store.Save(shutdownCtx, b.Ledger); err != nil {
		slog.Error("Final snapshot failed",
			slog.String("type", "snap"),
			slog.Any("error", err))
	}
}
