package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/castawaybot/nookbot/nookbot/shop"
)

// FormatNumber renders n with thousands separators.
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:]
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}

// FormatCatalog renders the storefront listing.
func FormatCatalog(items []shop.Item) string {
	if len(items) == 0 {
		return "[We're sold out!]"
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("* %dx **%s** - %sg\n", item.Quantity, item.Name, FormatNumber(item.Price)))
		if item.Description != "" {
			sb.WriteString(fmt.Sprintf("  -# \"%s\"\n", item.Description))
		}
	}
	return sb.String()
}

// FormatInventory renders a customer's pouch: the wealth line plus every
// owned item.
func FormatInventory(c *shop.Customer) string {
	var sb strings.Builder
	// An overdrawn balance is still a balance; only exactly zero is omitted.
	if c.Wealth != 0 {
		sb.WriteString(fmt.Sprintf("* %sx Gold Coins\n", FormatNumber(c.Wealth)))
	}
	for _, owned := range c.Inventory {
		sb.WriteString(fmt.Sprintf("* %dx %s\n", owned.Quantity, owned.Name))
		if owned.Description != "" {
			sb.WriteString(fmt.Sprintf("  -# \"%s\"\n", owned.Description))
		}
	}
	if sb.Len() == 0 {
		return "Nothing! It seems material wealth eludes you..."
	}
	return sb.String()
}
