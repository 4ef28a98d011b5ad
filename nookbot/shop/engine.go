package shop

// Receipt is the structured result of a completed purchase.
type Receipt struct {
	Customer string
	Item     string
	Price    int64
	Wealth   int64
}

// UseResult is the outcome of consuming an owned item.
type UseResult struct {
	Item      string
	Text      string
	Remaining int64
}

// GiveResult is the outcome of a completed same-tribe transfer.
type GiveResult struct {
	Item      string
	Donor     string
	Recipient string
}

// Engine orchestrates every transaction against a ledger. All mutating
// operations run their full check-then-commit sequence under the ledger
// lock, so concurrent callers can never overspend wealth or oversell stock.
type Engine struct {
	ledger *Ledger
}

func NewEngine(ledger *Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// Ledger returns the ledger this engine operates on.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Buy purchases one unit of the named item for the identified customer.
func (e *Engine) Buy(identifier, itemName string) (*Receipt, error) {
	var (
		receipt *Receipt
		err     error
	)
	e.ledger.Update(func(catalog *Catalog, directory *Directory) {
		customer := directory.Lookup(identifier)
		if customer == nil {
			err = ErrUnknownCustomer
			return
		}
		item := catalog.Find(itemName)
		if item == nil {
			err = ErrUnknownItem
			return
		}
		if customer.Wealth < item.Price {
			err = &InsufficientFundsError{Shortfall: item.Price - customer.Wealth}
			return
		}

		customer.Wealth -= item.Price
		customer.AddItem(item.Owned())
		catalog.RemoveOne(item.Name)
		receipt = &Receipt{
			Customer: customer.ID,
			Item:     item.Name,
			Price:    item.Price,
			Wealth:   customer.Wealth,
		}
	})
	return receipt, err
}

// Use consumes one unit of an owned item and returns its use-text. An item
// the customer does not own is a normal outcome, not a fault.
func (e *Engine) Use(identifier, itemName string) (*UseResult, error) {
	var (
		result *UseResult
		err    error
	)
	e.ledger.Update(func(_ *Catalog, directory *Directory) {
		customer := directory.Lookup(identifier)
		if customer == nil {
			err = ErrUnknownCustomer
			return
		}
		used, ok := customer.RemoveOne(itemName)
		if !ok {
			err = ErrUnknownOwnedItem
			return
		}
		remaining := int64(0)
		if owned := customer.FindOwned(itemName); owned != nil {
			remaining = owned.Quantity
		}
		result = &UseResult{
			Item:      used.Name,
			Text:      used.UseText(),
			Remaining: remaining,
		}
	})
	return result, err
}

// Give moves one unit of an owned item from donor to recipient. Gifting is
// restricted to members of the same tribe; a cross-tribe attempt leaves
// both inventories untouched.
func (e *Engine) Give(donorID, itemName, recipientID string) (*GiveResult, error) {
	var (
		result *GiveResult
		err    error
	)
	e.ledger.Update(func(_ *Catalog, directory *Directory) {
		donor := directory.Lookup(donorID)
		if donor == nil {
			err = ErrUnknownCustomer
			return
		}
		recipient := directory.Lookup(recipientID)
		if recipient == nil {
			err = ErrUnknownCustomer
			return
		}
		if donor.Tribe != recipient.Tribe {
			err = ErrCrossTribeGift
			return
		}
		given, ok := donor.RemoveOne(itemName)
		if !ok {
			err = ErrUnknownOwnedItem
			return
		}
		recipient.AddItem(given)
		result = &GiveResult{
			Item:      given.Name,
			Donor:     donor.ID,
			Recipient: recipient.ID,
		}
	})
	return result, err
}

// AdjustWealth applies a direct ledger edit to one customer's wealth and
// returns the new balance. Unlike Buy this is an administrative override:
// the result may go negative.
func (e *Engine) AdjustWealth(identifier string, delta int64) (int64, error) {
	var (
		balance int64
		err     error
	)
	e.ledger.Update(func(_ *Catalog, directory *Directory) {
		customer := directory.Lookup(identifier)
		if customer == nil {
			err = ErrUnknownCustomer
			return
		}
		customer.Wealth += delta
		balance = customer.Wealth
	})
	return balance, err
}

// AdjustWealthForTribe applies delta to every customer of the tribe in one
// pass and returns how many customers were touched. No entry is skipped.
func (e *Engine) AdjustWealthForTribe(tribe string, delta int64) int {
	adjusted := 0
	e.ledger.Update(func(_ *Catalog, directory *Directory) {
		for customer := range directory.ForTribe(tribe) {
			customer.Wealth += delta
			adjusted++
		}
	})
	return adjusted
}

// StockItem adds or restocks a catalog item.
func (e *Engine) StockItem(item Item) {
	e.ledger.Update(func(catalog *Catalog, _ *Directory) {
		catalog.Stock(item)
	})
}

// RestockQuantity sets the stocked quantity of an existing item; zero
// delists it.
func (e *Engine) RestockQuantity(name string, quantity int64) error {
	var err error
	e.ledger.Update(func(catalog *Catalog, _ *Directory) {
		err = catalog.SetQuantity(name, quantity)
	})
	return err
}

// DelistItem removes an item from the catalog regardless of quantity.
func (e *Engine) DelistItem(name string) error {
	var err error
	e.ledger.Update(func(catalog *Catalog, _ *Directory) {
		if !catalog.RemoveAll(name) {
			err = ErrUnknownItem
		}
	})
	return err
}

// RegisterCustomer adds a new customer to the directory.
func (e *Engine) RegisterCustomer(customer *Customer) error {
	var err error
	e.ledger.Update(func(_ *Catalog, directory *Directory) {
		err = directory.Register(customer)
	})
	return err
}

// DeregisterCustomer removes the identified customer and returns a copy of
// the removed record.
func (e *Engine) DeregisterCustomer(identifier string) (*Customer, error) {
	var (
		removed *Customer
		err     error
	)
	e.ledger.Update(func(_ *Catalog, directory *Directory) {
		c := directory.Deregister(identifier)
		if c == nil {
			err = ErrUnknownCustomer
			return
		}
		removed = c.Clone()
	})
	return removed, err
}

// LookupCustomer resolves an identifier and returns a copy of the customer
// record, safe for display without holding the lock.
func (e *Engine) LookupCustomer(identifier string) (*Customer, error) {
	var (
		found *Customer
		err   error
	)
	e.ledger.View(func(_ *Catalog, directory *Directory) {
		c := directory.Lookup(identifier)
		if c == nil {
			err = ErrUnknownCustomer
			return
		}
		found = c.Clone()
	})
	return found, err
}

// CatalogItems returns a copy of the current stock.
func (e *Engine) CatalogItems() []Item {
	var items []Item
	e.ledger.View(func(catalog *Catalog, _ *Directory) {
		items = catalog.Items()
	})
	return items
}

// Customers returns copies of every registered customer.
func (e *Engine) Customers() []*Customer {
	var customers []*Customer
	e.ledger.View(func(_ *Catalog, directory *Directory) {
		customers = directory.Customers()
	})
	return customers
}

// SuggestItems returns stocked item names closest to a misspelled query.
func (e *Engine) SuggestItems(query string, max int) []string {
	var names []string
	e.ledger.View(func(catalog *Catalog, _ *Directory) {
		names = catalog.Suggest(query, max)
	})
	return names
}
