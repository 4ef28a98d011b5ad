package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/castawaybot/nookbot/nookbot/shop"
)

const maxConcurrentFiles = 4

// ErrDirectoryNotFound reports a missing import directory. Unlike a bad
// descriptor file this is a hard error, not a per-file failure.
var ErrDirectoryNotFound = errors.New("import directory not found")

// Report summarizes one bulk import: which files made it into the ledger
// and which failed, keyed by file name. A failed file never aborts the
// rest of the batch.
type Report struct {
	Imported []string
	Failed   map[string]error
}

// Importer bulk-loads single-record JSON descriptor files into the ledger.
// Consumed files are renamed to hidden so a re-run does not double-import.
type Importer struct {
	engine *shop.Engine
}

func New(engine *shop.Engine) *Importer {
	return &Importer{engine: engine}
}

// ImportItems stocks the catalog from every descriptor file in dir.
func (im *Importer) ImportItems(ctx context.Context, dir string) (*Report, error) {
	return im.importDir(ctx, dir, func(data []byte) error {
		var item shop.Item
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		if item.Name == "" {
			return errors.New("item descriptor has no name")
		}
		if item.Price < 0 {
			return fmt.Errorf("item %s has negative price %d", item.Name, item.Price)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %s has no quantity", item.Name)
		}
		im.engine.StockItem(item)
		return nil
	})
}

// ImportCustomers registers a customer from every descriptor file in dir.
func (im *Importer) ImportCustomers(ctx context.Context, dir string) (*Report, error) {
	return im.importDir(ctx, dir, func(data []byte) error {
		var customer shop.Customer
		if err := json.Unmarshal(data, &customer); err != nil {
			return err
		}
		if customer.ID == "" {
			return errors.New("customer descriptor has no id")
		}
		return im.engine.RegisterCustomer(&customer)
	})
}

func (im *Importer) importDir(ctx context.Context, dir string, apply func(data []byte) error) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read import directory: %w", err)
	}

	report := &Report{Failed: make(map[string]error)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := im.importFile(filepath.Join(dir, name), apply)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[name] = err
				slog.Warn("Import file failed",
					slog.String("type", "sys"),
					slog.String("file", name),
					slog.Any("error", err))
				return nil
			}
			report.Imported = append(report.Imported, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	slog.Info("Import finished",
		slog.String("type", "sys"),
		slog.String("dir", dir),
		slog.Int("imported", len(report.Imported)),
		slog.Int("failed", len(report.Failed)))
	return report, nil
}

func (im *Importer) importFile(path string, apply func(data []byte) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read descriptor: %w", err)
	}
	if err := apply(data); err != nil {
		return err
	}
	// Hide the consumed descriptor so a repeated import skips it.
	hidden := filepath.Join(filepath.Dir(path), "."+filepath.Base(path))
	if err := os.Rename(path, hidden); err != nil {
		return fmt.Errorf("imported but failed to mark consumed: %w", err)
	}
	return nil
}
