package models

import "github.com/shopspring/decimal"

// Totals is the derived amount triple of a draft. It is never stored.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}
