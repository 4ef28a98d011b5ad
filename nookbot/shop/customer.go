package shop

import (
	"encoding/json"
	"strings"
)

// Customer is one account in the ledger. ID is the stable external
// identifier (a Discord username in practice) and is treated as opaque;
// DiscordID is the numeric internal id when known.
type Customer struct {
	ID        string       `json:"id"`
	DiscordID int64        `json:"discord_id,omitempty"`
	Realname  string       `json:"realname,omitempty"`
	Nickname  string       `json:"nickname,omitempty"`
	Tribe     string       `json:"tribe,omitempty"`
	Wealth    int64        `json:"wealth"`
	Inventory []*OwnedItem `json:"inventory"`
}

// customerAliases covers the field names older snapshot files used before
// the schema was settled. Unknown fields default, they never abort a load.
type customerAliases struct {
	ID        string       `json:"id"`
	DiscordID int64        `json:"discord_id"`
	Realname  string       `json:"realname"`
	Nickname  string       `json:"nickname"`
	Tribe     string       `json:"tribe"`
	Wealth    int64        `json:"wealth"`
	Inventory []*OwnedItem `json:"inventory"`

	LegacyIDStr    string `json:"discordIDstr"`
	LegacyIDInt    int64  `json:"discordIDint"`
	LegacyNickname string `json:"servernickname"`
	LegacyName     string `json:"name"`
	LegacyUserID   string `json:"userID"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	var raw customerAliases
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.ID = firstNonEmpty(raw.ID, raw.LegacyIDStr, raw.LegacyUserID)
	c.DiscordID = raw.DiscordID
	if c.DiscordID == 0 {
		c.DiscordID = raw.LegacyIDInt
	}
	c.Realname = firstNonEmpty(raw.Realname, raw.LegacyName, c.ID)
	c.Nickname = firstNonEmpty(raw.Nickname, raw.LegacyNickname)
	c.Tribe = raw.Tribe
	c.Wealth = raw.Wealth

	c.Inventory = c.Inventory[:0]
	for _, o := range raw.Inventory {
		if o == nil || o.Name == "" {
			continue
		}
		if o.Quantity <= 0 {
			o.Quantity = 1
		}
		c.Inventory = append(c.Inventory, o)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// AddItem merges one owned unit into the inventory. An already-owned item
// gains quantity instead of producing a duplicate entry.
func (c *Customer) AddItem(item OwnedItem) {
	for _, owned := range c.Inventory {
		if strings.EqualFold(owned.Name, item.Name) {
			owned.Quantity += item.Quantity
			return
		}
	}
	copied := item
	c.Inventory = append(c.Inventory, &copied)
}

// FindOwned returns the inventory entry matching name, or nil.
func (c *Customer) FindOwned(name string) *OwnedItem {
	for _, owned := range c.Inventory {
		if strings.EqualFold(owned.Name, name) {
			return owned
		}
	}
	return nil
}

// RemoveOne takes one unit of the named item out of the inventory and
// reports whether the item was owned at all. The entry disappears when its
// quantity reaches zero.
func (c *Customer) RemoveOne(name string) (OwnedItem, bool) {
	for i, owned := range c.Inventory {
		if !strings.EqualFold(owned.Name, name) {
			continue
		}
		taken := *owned
		taken.Quantity = 1
		owned.Quantity--
		if owned.Quantity <= 0 {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
		}
		return taken, true
	}
	return OwnedItem{}, false
}

// Clone returns a deep copy, safe to hand to readers and snapshots.
func (c *Customer) Clone() *Customer {
	copied := *c
	copied.Inventory = make([]*OwnedItem, len(c.Inventory))
	for i, owned := range c.Inventory {
		o := *owned
		copied.Inventory[i] = &o
	}
	return &copied
}
