package shop

import "fmt"

// Item is a single stock-keeping unit in the catalog. Name is the identity
// key, compared case-insensitively. An Item with quantity 0 is removed from
// its collection, never kept around.
type Item struct {
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	Quantity         int64  `json:"quantity"`
	Description      string `json:"description,omitempty"`
	DescriptionOnUse string `json:"description_on_use,omitempty"`
}

// OwnedItem is an item held in a customer's inventory. It has no price
// field: the catalog price is paid at purchase time and does not follow the
// item into anyone's pouch.
type OwnedItem struct {
	Name             string `json:"name"`
	Quantity         int64  `json:"quantity"`
	Description      string `json:"description,omitempty"`
	DescriptionOnUse string `json:"description_on_use,omitempty"`
}

// Owned returns a single owned unit of the item, with the price stripped.
func (i Item) Owned() OwnedItem {
	return OwnedItem{
		Name:             i.Name,
		Quantity:         1,
		Description:      i.Description,
		DescriptionOnUse: i.DescriptionOnUse,
	}
}

// UseText returns the text shown to the customer when the item is consumed.
func (o OwnedItem) UseText() string {
	if o.DescriptionOnUse != "" {
		return o.DescriptionOnUse
	}
	return fmt.Sprintf("You used the %s!", o.Name)
}
