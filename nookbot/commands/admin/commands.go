package admin

import "github.com/disgoorg/disgo/discord"

var Commands = []discord.ApplicationCommandCreate{
	AddItem,
	RemoveItem,
	SetQuantity,
	AddCustomer,
	RemoveCustomer,
	Customers,
	MoveMoney,
	MoveMoneyTribe,
	Backup,
	Restore,
	RestoreFrom,
	ClearShop,
	ImportItems,
	ImportCustomers,
}
