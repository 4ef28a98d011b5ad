package shop

import "sync"

// Ledger is the combined shop state, catalog plus customer directory, and
// the unit of snapshotting. A single lock guards every mutating operation
// so that check-then-commit sequences are atomic and readers never observe
// a half-committed transaction.
type Ledger struct {
	mu        sync.RWMutex
	catalog   *Catalog
	directory *Directory
}

func NewLedger() *Ledger {
	return &Ledger{
		catalog:   &Catalog{},
		directory: NewDirectory(),
	}
}

// Update runs fn with exclusive access to the ledger contents.
func (l *Ledger) Update(fn func(catalog *Catalog, directory *Directory)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.catalog, l.directory)
}

// View runs fn with shared read access. fn must not retain or mutate the
// state it is handed; copy out what it needs.
func (l *Ledger) View(fn func(catalog *Catalog, directory *Directory)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.catalog, l.directory)
}

// Replace swaps the ledger contents wholesale, used by snapshot restore.
func (l *Ledger) Replace(items []Item, customers []*Customer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.catalog.replaceAll(items)
	l.directory.replaceAll(customers)
}

// Reset empties the ledger.
func (l *Ledger) Reset() {
	l.Replace(nil, nil)
}
