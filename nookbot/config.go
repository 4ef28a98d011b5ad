package nookbot

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Shop.SnapshotDir == "" {
		cfg.Shop.SnapshotDir = "backups"
	}
	if cfg.Shop.SnapshotSchedule == "" {
		cfg.Shop.SnapshotSchedule = "@every 1h"
	}
	if cfg.Shop.ItemsDir == "" {
		cfg.Shop.ItemsDir = "import/items"
	}
	if cfg.Shop.CustomersDir == "" {
		cfg.Shop.CustomersDir = "import/customers"
	}
	if cfg.Shop.Greeting == "" {
		cfg.Shop.Greeting = "Hello, weary traveler, it's good to see you. Here's what's for sale:"
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	Bot    BotConfig    `toml:"bot"`
	Shop   ShopConfig   `toml:"shop"`
	Spaces SpacesConfig `toml:"spaces"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type ShopConfig struct {
	// SnapshotDir holds the timestamped ledger snapshot files.
	SnapshotDir string `toml:"snapshot_dir"`
	// SnapshotSchedule is a cron expression for the periodic save.
	SnapshotSchedule string `toml:"snapshot_schedule"`
	// ItemsDir and CustomersDir are the default bulk-import folders.
	ItemsDir     string `toml:"items_dir"`
	CustomersDir string `toml:"customers_dir"`
	// Greeting opens the storefront embed.
	Greeting string `toml:"greeting"`
}

type SpacesConfig struct {
	Enabled bool   `toml:"enabled"`
	Key     string `toml:"key"`
	Secret  string `toml:"secret"`
	Region  string `toml:"region"`
	Bucket  string `toml:"bucket"`
	Root    string `toml:"root"`
}
