package shop

import (
	"errors"
	"testing"
)

func Test_Catalog_Stock(t *testing.T) {
	tests := []struct {
		name     string
		stock    []Item
		wantLen  int
		wantItem Item
	}{
		{
			name:     "plain stock",
			stock:    []Item{{Name: "Rope", Price: 5, Quantity: 2}},
			wantLen:  1,
			wantItem: Item{Name: "Rope", Price: 5, Quantity: 2},
		},
		{
			name: "restock merges case-insensitively",
			stock: []Item{
				{Name: "Rope", Price: 5, Quantity: 2},
				{Name: "rope", Price: 8, Quantity: 3},
			},
			wantLen:  1,
			wantItem: Item{Name: "Rope", Price: 8, Quantity: 5},
		},
		{
			name: "restock keeps price when incoming is zero",
			stock: []Item{
				{Name: "Rope", Price: 5, Quantity: 2},
				{Name: "Rope", Quantity: 1},
			},
			wantLen:  1,
			wantItem: Item{Name: "Rope", Price: 5, Quantity: 3},
		},
		{
			name: "distinct names stay distinct",
			stock: []Item{
				{Name: "Rope", Price: 5, Quantity: 1},
				{Name: "Torch", Price: 3, Quantity: 1},
			},
			wantLen:  2,
			wantItem: Item{Name: "Rope", Price: 5, Quantity: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var catalog Catalog
			for _, item := range tt.stock {
				catalog.Stock(item)
			}
			if catalog.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", catalog.Len(), tt.wantLen)
			}
			got := catalog.Find(tt.wantItem.Name)
			if got == nil {
				t.Fatalf("Find(%s) = nil", tt.wantItem.Name)
			}
			if *got != tt.wantItem {
				t.Errorf("item = %+v, want %+v", *got, tt.wantItem)
			}
		})
	}
}

func Test_Catalog_Stock_NoQuantity(t *testing.T) {
	var catalog Catalog
	catalog.Stock(Item{Name: "Rope", Price: 5})
	catalog.Stock(Item{Name: "Torch", Price: 3, Quantity: -2})

	// Quantity zero means absence; nothing gets listed.
	if catalog.Len() != 0 {
		t.Errorf("Len() = %d, want 0", catalog.Len())
	}

	catalog.Stock(Item{Name: "Rope", Price: 5, Quantity: 4})
	catalog.Stock(Item{Name: "Rope"})
	if got := catalog.Find("Rope"); got == nil || got.Quantity != 4 {
		t.Errorf("Rope = %+v, want quantity 4 untouched", got)
	}
}

func Test_Catalog_RemoveOne(t *testing.T) {
	var catalog Catalog
	catalog.Stock(Item{Name: "Torch", Price: 3, Quantity: 2})

	if !catalog.RemoveOne("torch") {
		t.Fatal("RemoveOne(torch) = false")
	}
	if got := catalog.Find("Torch"); got == nil || got.Quantity != 1 {
		t.Fatalf("after first removal: %+v", got)
	}

	if !catalog.RemoveOne("Torch") {
		t.Fatal("RemoveOne(Torch) = false")
	}
	if got := catalog.Find("Torch"); got != nil {
		t.Errorf("Torch still listed at zero quantity: %+v", got)
	}

	if catalog.RemoveOne("Torch") {
		t.Error("RemoveOne on delisted item = true")
	}
}

func Test_Catalog_SetQuantity(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		quantity int64
		wantErr  bool
		wantLeft int64 // 0 means delisted
	}{
		{name: "set", item: "Rope", quantity: 7, wantLeft: 7},
		{name: "zero delists", item: "Rope", quantity: 0},
		{name: "negative rejected", item: "Rope", quantity: -1, wantErr: true, wantLeft: 4},
		{name: "unknown item", item: "Shield", quantity: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var catalog Catalog
			catalog.Stock(Item{Name: "Rope", Price: 5, Quantity: 4})

			err := catalog.SetQuantity(tt.item, tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetQuantity() error = %v, wantErr %v", err, tt.wantErr)
			}
			got := catalog.Find("Rope")
			if tt.wantLeft == 0 {
				if tt.item == "Rope" && !tt.wantErr && got != nil {
					t.Errorf("Rope still listed: %+v", got)
				}
				return
			}
			if got == nil || got.Quantity != tt.wantLeft {
				t.Errorf("Rope = %+v, want quantity %d", got, tt.wantLeft)
			}
		})
	}
}

func Test_Catalog_SetQuantity_UnknownItem(t *testing.T) {
	var catalog Catalog
	if err := catalog.SetQuantity("Shield", 3); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("SetQuantity() error = %v, want ErrUnknownItem", err)
	}
}

func Test_Catalog_Suggest(t *testing.T) {
	var catalog Catalog
	catalog.Stock(Item{Name: "Fishing Rod", Price: 30, Quantity: 1})
	catalog.Stock(Item{Name: "Fishing Net", Price: 20, Quantity: 1})
	catalog.Stock(Item{Name: "Torch", Price: 3, Quantity: 1})

	names := catalog.Suggest("fishing", 2)
	if len(names) != 2 {
		t.Fatalf("Suggest() returned %d names, want 2", len(names))
	}
	for _, name := range names {
		if name == "Torch" {
			t.Errorf("Suggest() included %q", name)
		}
	}

	if names := catalog.Suggest("zzzz", 3); len(names) != 0 {
		t.Errorf("Suggest(zzzz) = %v, want none", names)
	}
}
