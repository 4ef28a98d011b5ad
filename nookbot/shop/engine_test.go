package shop

import (
	"errors"
	"sync"
	"testing"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	engine := NewEngine(NewLedger())
	engine.StockItem(Item{Name: "Sword", Price: 60, Quantity: 10})
	engine.StockItem(Item{Name: "Potion", Price: 25, Quantity: 1, DescriptionOnUse: "You feel refreshed."})

	for _, c := range []*Customer{
		{ID: "alice", DiscordID: 111, Realname: "Alice", Tribe: "Coral", Wealth: 100},
		{ID: "bob", Nickname: "Bobby", Tribe: "Coral", Wealth: 10},
		{ID: "carol", Tribe: "Ember", Wealth: 50},
	} {
		if err := engine.RegisterCustomer(c); err != nil {
			t.Fatalf("RegisterCustomer(%s) = %v", c.ID, err)
		}
	}
	return engine
}

func Test_Engine_Buy(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		item       string
		wantErr    error
		wantWealth int64
	}{
		{
			name:       "success leaves remainder",
			identifier: "alice",
			item:       "Sword",
			wantWealth: 40,
		},
		{
			name:       "case-insensitive item name",
			identifier: "alice",
			item:       "sword",
			wantWealth: 40,
		},
		{
			name:       "unknown customer",
			identifier: "mallory",
			item:       "Sword",
			wantErr:    ErrUnknownCustomer,
		},
		{
			name:       "unknown item",
			identifier: "alice",
			item:       "Shield",
			wantErr:    ErrUnknownItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := testEngine(t)
			receipt, err := engine.Buy(tt.identifier, tt.item)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Buy() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if receipt.Wealth != tt.wantWealth {
				t.Errorf("Buy() wealth = %d, want %d", receipt.Wealth, tt.wantWealth)
			}
		})
	}
}

func Test_Engine_Buy_InsufficientFunds(t *testing.T) {
	engine := testEngine(t)

	_, err := engine.Buy("bob", "Sword") // 10g against a 60g sword
	var funds *InsufficientFundsError
	if !errors.As(err, &funds) {
		t.Fatalf("Buy() error = %v, want InsufficientFundsError", err)
	}
	if funds.Shortfall != 50 {
		t.Errorf("Shortfall = %d, want 50", funds.Shortfall)
	}

	// The failed attempt must not have touched anything.
	bob, err := engine.LookupCustomer("bob")
	if err != nil {
		t.Fatalf("LookupCustomer(bob) = %v", err)
	}
	if bob.Wealth != 10 {
		t.Errorf("wealth after failed buy = %d, want 10", bob.Wealth)
	}
	if len(bob.Inventory) != 0 {
		t.Errorf("inventory after failed buy has %d entries, want 0", len(bob.Inventory))
	}
}

func Test_Engine_Buy_LastUnitDelists(t *testing.T) {
	engine := testEngine(t)

	if _, err := engine.Buy("alice", "Potion"); err != nil {
		t.Fatalf("first Buy() = %v", err)
	}
	if _, err := engine.Buy("carol", "Potion"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("second Buy() error = %v, want ErrUnknownItem", err)
	}

	for _, item := range engine.CatalogItems() {
		if item.Name == "Potion" {
			t.Error("Potion still listed after selling out")
		}
	}
}

func Test_Engine_Buy_StripsPrice(t *testing.T) {
	engine := testEngine(t)

	if _, err := engine.Buy("alice", "Potion"); err != nil {
		t.Fatalf("Buy() = %v", err)
	}
	alice, _ := engine.LookupCustomer("alice")
	if len(alice.Inventory) != 1 {
		t.Fatalf("inventory has %d entries, want 1", len(alice.Inventory))
	}
	owned := alice.Inventory[0]
	if owned.Name != "Potion" || owned.Quantity != 1 {
		t.Errorf("owned = %+v, want 1x Potion", owned)
	}
	if owned.DescriptionOnUse != "You feel refreshed." {
		t.Errorf("DescriptionOnUse = %q", owned.DescriptionOnUse)
	}
}

func Test_Engine_Buy_ConcurrentLastUnit(t *testing.T) {
	engine := testEngine(t)

	const buyers = 8
	var wg sync.WaitGroup
	errs := make([]error, buyers)
	for i := range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = engine.Buy("alice", "Potion")
		}()
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrUnknownItem):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Errorf("%d buyers got the last unit, want exactly 1", won)
	}
}

func Test_Engine_Use(t *testing.T) {
	engine := testEngine(t)
	if _, err := engine.Buy("alice", "Potion"); err != nil {
		t.Fatalf("Buy() = %v", err)
	}

	result, err := engine.Use("alice", "potion")
	if err != nil {
		t.Fatalf("Use() = %v", err)
	}
	if result.Text != "You feel refreshed." {
		t.Errorf("Text = %q", result.Text)
	}
	if result.Remaining != 0 {
		t.Errorf("Remaining = %d, want 0", result.Remaining)
	}

	if _, err := engine.Use("alice", "potion"); !errors.Is(err, ErrUnknownOwnedItem) {
		t.Errorf("second Use() error = %v, want ErrUnknownOwnedItem", err)
	}
}

func Test_Engine_Give(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		wantErr   error
	}{
		{
			name:      "same tribe",
			recipient: "bob",
		},
		{
			name:      "cross tribe rejected",
			recipient: "carol",
			wantErr:   ErrCrossTribeGift,
		},
		{
			name:      "unknown recipient",
			recipient: "mallory",
			wantErr:   ErrUnknownCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := testEngine(t)
			if _, err := engine.Buy("alice", "Potion"); err != nil {
				t.Fatalf("Buy() = %v", err)
			}

			result, err := engine.Give("alice", "Potion", tt.recipient)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Give() error = %v, want %v", err, tt.wantErr)
			}

			alice, _ := engine.LookupCustomer("alice")
			if tt.wantErr != nil {
				// A rejected gift leaves the donor's inventory untouched.
				if len(alice.Inventory) != 1 {
					t.Errorf("donor inventory has %d entries after rejected gift, want 1", len(alice.Inventory))
				}
				return
			}

			if result.Donor != "alice" || result.Recipient != "bob" {
				t.Errorf("result = %+v", result)
			}
			if len(alice.Inventory) != 0 {
				t.Errorf("donor still owns %d entries", len(alice.Inventory))
			}
			bob, _ := engine.LookupCustomer("bob")
			if owned := bob.FindOwned("Potion"); owned == nil || owned.Quantity != 1 {
				t.Errorf("recipient inventory = %+v", bob.Inventory)
			}
		})
	}
}

func Test_Engine_AdjustWealth(t *testing.T) {
	engine := testEngine(t)

	balance, err := engine.AdjustWealth("Bobby", 40) // nickname lookup
	if err != nil {
		t.Fatalf("AdjustWealth() = %v", err)
	}
	if balance != 50 {
		t.Errorf("balance = %d, want 50", balance)
	}

	// Administrative deductions may overdraw.
	balance, err = engine.AdjustWealth("bob", -200)
	if err != nil {
		t.Fatalf("AdjustWealth() = %v", err)
	}
	if balance != -150 {
		t.Errorf("balance = %d, want -150", balance)
	}

	if _, err := engine.AdjustWealth("mallory", 10); !errors.Is(err, ErrUnknownCustomer) {
		t.Errorf("AdjustWealth(mallory) error = %v, want ErrUnknownCustomer", err)
	}
}

func Test_Engine_AdjustWealthForTribe(t *testing.T) {
	engine := testEngine(t)

	if adjusted := engine.AdjustWealthForTribe("Coral", 25); adjusted != 2 {
		t.Fatalf("adjusted = %d, want 2", adjusted)
	}
	alice, _ := engine.LookupCustomer("alice")
	if alice.Wealth != 125 {
		t.Errorf("alice wealth = %d, want 125", alice.Wealth)
	}
	carol, _ := engine.LookupCustomer("carol")
	if carol.Wealth != 50 {
		t.Errorf("carol wealth = %d, want 50 (other tribe untouched)", carol.Wealth)
	}

	if adjusted := engine.AdjustWealthForTribe("Driftwood", 25); adjusted != 0 {
		t.Errorf("adjusted = %d for unknown tribe, want 0", adjusted)
	}
}

func Test_Engine_DeregisterCustomer(t *testing.T) {
	engine := testEngine(t)

	removed, err := engine.DeregisterCustomer("Alice") // realname lookup
	if err != nil {
		t.Fatalf("DeregisterCustomer() = %v", err)
	}
	if removed.ID != "alice" {
		t.Errorf("removed.ID = %q, want alice", removed.ID)
	}
	if _, err := engine.LookupCustomer("alice"); !errors.Is(err, ErrUnknownCustomer) {
		t.Errorf("LookupCustomer after deregister = %v, want ErrUnknownCustomer", err)
	}
}
