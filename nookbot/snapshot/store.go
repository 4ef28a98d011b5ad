package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/castawaybot/nookbot/nookbot/shop"
)

const (
	filePrefix = "shop_backup_"
	fileExt    = ".json"
	timeLayout = "2006-01-02_15-04-05"
)

// ErrNoSnapshot reports that the store holds no snapshots yet. A fresh shop
// is a valid starting state, so this is a signal, not a fault.
var ErrNoSnapshot = errors.New("no snapshots found")

// State is the persisted form of a ledger: the full catalog and every
// customer record.
type State struct {
	Items     []shop.Item      `json:"items"`
	Customers []*shop.Customer `json:"customers"`
}

// UnmarshalJSON accepts the legacy top-level key "inventory" that older
// snapshot files used for the catalog section.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw struct {
		Items     []shop.Item      `json:"items"`
		Inventory []shop.Item      `json:"inventory"`
		Customers []*shop.Customer `json:"customers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Items = raw.Items
	if len(s.Items) == 0 {
		s.Items = raw.Inventory
	}
	s.Customers = raw.Customers
	return nil
}

// Descriptor identifies one snapshot file.
type Descriptor struct {
	Name    string
	Path    string
	ModTime time.Time
	Size    int64
}

// Store writes timestamped ledger snapshots into a directory and restores
// them. Every save creates a new file; nothing is ever overwritten, so any
// snapshot remains available for point-in-time rollback.
type Store struct {
	dir    string
	mirror *Spaces
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SetMirror enables best-effort off-site copies of every saved snapshot.
func (s *Store) SetMirror(mirror *Spaces) {
	s.mirror = mirror
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save serializes the ledger into a new timestamped snapshot file and
// returns its path. The ledger lock is held only while the state is copied
// out, not during the disk write.
func (s *Store) Save(ctx context.Context, ledger *shop.Ledger) (string, error) {
	var state State
	ledger.View(func(catalog *shop.Catalog, directory *shop.Directory) {
		state.Items = catalog.Items()
		state.Customers = directory.Customers()
	})

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	data, err := json.MarshalIndent(&state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	path, err := s.createSnapshotFile(data)
	if err != nil {
		return "", err
	}

	slog.Info("Ledger snapshot saved",
		slog.String("type", "snap"),
		slog.String("path", path),
		slog.Int("items", len(state.Items)),
		slog.Int("customers", len(state.Customers)))

	if s.mirror != nil {
		if err := s.mirror.Upload(ctx, path); err != nil {
			slog.Warn("Snapshot mirror upload failed",
				slog.String("type", "snap"),
				slog.String("path", path),
				slog.Any("error", err))
		}
	}
	return path, nil
}

// createSnapshotFile picks an unused timestamped name. Two saves within the
// same second get numbered suffixes instead of clobbering each other.
func (s *Store) createSnapshotFile(data []byte) (string, error) {
	base := filePrefix + time.Now().Format(timeLayout)
	for attempt := 0; ; attempt++ {
		name := base + fileExt
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d%s", base, attempt+1, fileExt)
		}
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create snapshot file: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("failed to write snapshot: %w", err)
		}
		return path, f.Close()
	}
}

// List enumerates snapshots newest first, truncated to limit when limit is
// positive.
func (s *Store) List(limit int) ([]Descriptor, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var descriptors []Descriptor
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		descriptors = append(descriptors, Descriptor{
			Name:    name,
			Path:    filepath.Join(s.dir, name),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	// Timestamped names sort chronologically; mod time breaks ties between
	// same-second saves.
	sort.Slice(descriptors, func(i, j int) bool {
		if descriptors[i].Name != descriptors[j].Name {
			return descriptors[i].Name > descriptors[j].Name
		}
		return descriptors[i].ModTime.After(descriptors[j].ModTime)
	})

	if limit > 0 && len(descriptors) > limit {
		descriptors = descriptors[:limit]
	}
	return descriptors, nil
}

// RestoreLatest loads the most recent snapshot into the ledger and returns
// its path. With no snapshots present the ledger is left empty and
// ErrNoSnapshot is returned.
func (s *Store) RestoreLatest(ledger *shop.Ledger) (string, error) {
	descriptors, err := s.List(1)
	if err != nil {
		return "", err
	}
	if len(descriptors) == 0 {
		return "", ErrNoSnapshot
	}
	if err := s.Restore(ledger, descriptors[0].Path); err != nil {
		return "", err
	}
	return descriptors[0].Path, nil
}

// Restore loads a specific snapshot file, replacing the ledger contents
// wholesale. Fields missing from older snapshot formats default rather than
// aborting the load.
func (s *Store) Restore(ledger *shop.Ledger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}

	ledger.Replace(state.Items, state.Customers)
	slog.Info("Ledger restored from snapshot",
		slog.String("type", "snap"),
		slog.String("path", path),
		slog.Int("items", len(state.Items)),
		slog.Int("customers", len(state.Customers)))
	return nil
}
