package utils

import (
	"strings"
	"testing"

	"github.com/castawaybot/nookbot/nookbot/shop"
)

func Test_FormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func Test_FormatCatalog(t *testing.T) {
	if got := FormatCatalog(nil); got != "[We're sold out!]" {
		t.Errorf("empty catalog = %q", got)
	}

	got := FormatCatalog([]shop.Item{
		{Name: "Sword", Price: 1500, Quantity: 3, Description: "Pointy."},
		{Name: "Rope", Price: 5, Quantity: 1},
	})
	for _, want := range []string{"3x **Sword** - 1,500g", "\"Pointy.\"", "1x **Rope** - 5g"} {
		if !strings.Contains(got, want) {
			t.Errorf("catalog missing %q:\n%s", want, got)
		}
	}
}

func Test_FormatInventory(t *testing.T) {
	broke := &shop.Customer{ID: "alice"}
	if got := FormatInventory(broke); !strings.Contains(got, "Nothing!") {
		t.Errorf("empty inventory = %q", got)
	}

	rich := &shop.Customer{
		ID:     "bob",
		Wealth: 2500,
		Inventory: []*shop.OwnedItem{
			{Name: "Rope", Quantity: 2},
		},
	}
	got := FormatInventory(rich)
	for _, want := range []string{"2,500x Gold Coins", "2x Rope"} {
		if !strings.Contains(got, want) {
			t.Errorf("inventory missing %q:\n%s", want, got)
		}
	}

	// An overdrawn customer still sees their balance.
	overdrawn := &shop.Customer{ID: "carol", Wealth: -150}
	if got := FormatInventory(overdrawn); !strings.Contains(got, "-150x Gold Coins") {
		t.Errorf("overdrawn inventory = %q, want the negative balance shown", got)
	}
}
