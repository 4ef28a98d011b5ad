package shop

import (
	"iter"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

const lookupCacheSize = 256

// Directory is the set of registered customers. Lookup resolves a flexible
// identifier through a fixed precedence of matchers; resolved identifiers
// are cached until membership changes. Callers synchronize through the
// owning Ledger.
type Directory struct {
	customers []*Customer
	cache     *lru.Cache
}

func NewDirectory() *Directory {
	cache, _ := lru.New(lookupCacheSize)
	return &Directory{cache: cache}
}

// lookupMatchers is the identifier precedence, tried tier by tier across
// the whole directory: exact numeric id, then external id, realname and
// nickname, each case-insensitive. First match wins.
var lookupMatchers = []func(c *Customer, identifier string, numericID int64) bool{
	func(c *Customer, _ string, numericID int64) bool {
		return numericID != 0 && c.DiscordID == numericID
	},
	func(c *Customer, identifier string, _ int64) bool {
		return strings.EqualFold(c.ID, identifier)
	},
	func(c *Customer, identifier string, _ int64) bool {
		return c.Realname != "" && strings.EqualFold(c.Realname, identifier)
	},
	func(c *Customer, identifier string, _ int64) bool {
		return c.Nickname != "" && strings.EqualFold(c.Nickname, identifier)
	},
}

// Lookup resolves an identifier to a customer, or nil when nothing matches.
func (d *Directory) Lookup(identifier string) *Customer {
	key := strings.ToLower(identifier)
	if cached, ok := d.cache.Get(key); ok {
		return cached.(*Customer)
	}

	numericID, _ := strconv.ParseInt(identifier, 10, 64)
	for _, matches := range lookupMatchers {
		for _, c := range d.customers {
			if matches(c, identifier, numericID) {
				d.cache.Add(key, c)
				return c
			}
		}
	}
	return nil
}

// Register adds a customer. A customer whose identity is already resolvable
// in the directory is rejected with ErrAlreadyExists: the new ID is run
// through the full lookup precedence, so an ID that would shadow an existing
// customer's realname or nickname is a collision too.
func (d *Directory) Register(c *Customer) error {
	if d.Lookup(c.ID) != nil {
		return ErrAlreadyExists
	}
	if c.DiscordID != 0 {
		for _, existing := range d.customers {
			if existing.DiscordID == c.DiscordID {
				return ErrAlreadyExists
			}
		}
	}
	d.customers = append(d.customers, c)
	d.cache.Purge()
	return nil
}

// Deregister removes the customer matching identifier and returns it, or
// nil when no customer matched.
func (d *Directory) Deregister(identifier string) *Customer {
	c := d.Lookup(identifier)
	if c == nil {
		return nil
	}
	for i, existing := range d.customers {
		if existing == c {
			d.customers = append(d.customers[:i], d.customers[i+1:]...)
			break
		}
	}
	d.cache.Purge()
	return c
}

// ForTribe yields every customer whose tribe matches exactly. The sequence
// is finite and restartable.
func (d *Directory) ForTribe(tribe string) iter.Seq[*Customer] {
	return func(yield func(*Customer) bool) {
		for _, c := range d.customers {
			if c.Tribe == tribe && !yield(c) {
				return
			}
		}
	}
}

// Customers returns deep copies of every registered customer, in stable
// registration order.
func (d *Directory) Customers() []*Customer {
	customers := make([]*Customer, len(d.customers))
	for i, c := range d.customers {
		customers[i] = c.Clone()
	}
	return customers
}

// Len returns the number of registered customers.
func (d *Directory) Len() int {
	return len(d.customers)
}

func (d *Directory) replaceAll(customers []*Customer) {
	d.customers = d.customers[:0]
	for _, c := range customers {
		if c == nil || c.ID == "" {
			continue
		}
		d.customers = append(d.customers, c)
	}
	d.cache.Purge()
}
