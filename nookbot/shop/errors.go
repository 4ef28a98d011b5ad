package shop

import (
	"errors"
	"fmt"
)

// Business outcomes. These are reported back to the caller for rendering,
// they never abort the process.
var (
	ErrUnknownCustomer  = errors.New("unknown customer")
	ErrUnknownItem      = errors.New("unknown item")
	ErrUnknownOwnedItem = errors.New("item not in inventory")
	ErrAlreadyExists    = errors.New("customer already registered")
	ErrCrossTribeGift   = errors.New("recipient is in a different tribe")
)

// InsufficientFundsError reports a failed affordability check along with how
// much the customer was short, so the caller can render a useful message.
type InsufficientFundsError struct {
	Shortfall int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: short %dg", e.Shortfall)
}
