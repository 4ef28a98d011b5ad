package shop

import (
	"encoding/json"
	"testing"
)

func Test_Customer_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Customer
	}{
		{
			name: "canonical fields",
			data: `{"id":"alice","discord_id":111,"realname":"Alice","nickname":"Al","tribe":"Coral","wealth":40,"inventory":[{"name":"Rope","quantity":2}]}`,
			want: Customer{ID: "alice", DiscordID: 111, Realname: "Alice", Nickname: "Al", Tribe: "Coral", Wealth: 40},
		},
		{
			name: "legacy field names",
			data: `{"discordIDstr":"alice","discordIDint":111,"name":"Alice","servernickname":"Al","tribe":"Coral","wealth":40}`,
			want: Customer{ID: "alice", DiscordID: 111, Realname: "Alice", Nickname: "Al", Tribe: "Coral", Wealth: 40},
		},
		{
			name: "legacy userID as id",
			data: `{"userID":"alice","wealth":5}`,
			want: Customer{ID: "alice", Realname: "alice", Wealth: 5},
		},
		{
			name: "canonical wins over legacy",
			data: `{"id":"alice","discordIDstr":"old-alice","realname":"Alice","name":"Old Alice"}`,
			want: Customer{ID: "alice", Realname: "Alice"},
		},
		{
			name: "realname falls back to id",
			data: `{"id":"alice"}`,
			want: Customer{ID: "alice", Realname: "alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Customer
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("Unmarshal() = %v", err)
			}
			if got.ID != tt.want.ID || got.DiscordID != tt.want.DiscordID ||
				got.Realname != tt.want.Realname || got.Nickname != tt.want.Nickname ||
				got.Tribe != tt.want.Tribe || got.Wealth != tt.want.Wealth {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_Customer_UnmarshalJSON_Inventory(t *testing.T) {
	data := `{"id":"alice","inventory":[
		{"name":"Rope","quantity":2},
		{"name":"Torch"},
		{"name":""},
		null
	]}`

	var c Customer
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if len(c.Inventory) != 2 {
		t.Fatalf("inventory has %d entries, want 2", len(c.Inventory))
	}
	if c.Inventory[0].Quantity != 2 {
		t.Errorf("Rope quantity = %d, want 2", c.Inventory[0].Quantity)
	}
	// A missing quantity means one unit, not zero.
	if c.Inventory[1].Quantity != 1 {
		t.Errorf("Torch quantity = %d, want 1", c.Inventory[1].Quantity)
	}
}

func Test_Customer_AddItem(t *testing.T) {
	var c Customer
	c.AddItem(OwnedItem{Name: "Rope", Quantity: 1})
	c.AddItem(OwnedItem{Name: "rope", Quantity: 1})
	c.AddItem(OwnedItem{Name: "Torch", Quantity: 1})

	if len(c.Inventory) != 2 {
		t.Fatalf("inventory has %d entries, want 2", len(c.Inventory))
	}
	if owned := c.FindOwned("ROPE"); owned == nil || owned.Quantity != 2 {
		t.Errorf("Rope = %+v, want quantity 2", owned)
	}
}

func Test_Customer_RemoveOne(t *testing.T) {
	var c Customer
	c.AddItem(OwnedItem{Name: "Rope", Quantity: 2})

	taken, ok := c.RemoveOne("rope")
	if !ok || taken.Name != "Rope" || taken.Quantity != 1 {
		t.Fatalf("RemoveOne() = %+v, %v", taken, ok)
	}
	if owned := c.FindOwned("Rope"); owned == nil || owned.Quantity != 1 {
		t.Fatalf("after first removal: %+v", owned)
	}

	if _, ok := c.RemoveOne("Rope"); !ok {
		t.Fatal("second RemoveOne() = false")
	}
	if owned := c.FindOwned("Rope"); owned != nil {
		t.Errorf("entry survives at zero quantity: %+v", owned)
	}

	if _, ok := c.RemoveOne("Rope"); ok {
		t.Error("RemoveOne on empty inventory = true")
	}
}

func Test_Item_Owned(t *testing.T) {
	item := Item{Name: "Rope", Price: 5, Quantity: 7, Description: "sturdy", DescriptionOnUse: "You tie a knot."}
	owned := item.Owned()

	if owned.Name != "Rope" || owned.Quantity != 1 {
		t.Errorf("Owned() = %+v", owned)
	}
	if owned.Description != "sturdy" || owned.DescriptionOnUse != "You tie a knot." {
		t.Errorf("descriptions not carried: %+v", owned)
	}
}

func Test_OwnedItem_UseText(t *testing.T) {
	withText := OwnedItem{Name: "Potion", DescriptionOnUse: "You feel refreshed."}
	if got := withText.UseText(); got != "You feel refreshed." {
		t.Errorf("UseText() = %q", got)
	}
	plain := OwnedItem{Name: "Rock"}
	if got := plain.UseText(); got != "You used the Rock!" {
		t.Errorf("UseText() = %q", got)
	}
}
