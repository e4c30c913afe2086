package models

import (
	"fmt"
	"strings"

	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
)

// Currency selects the display symbol of a draft. No conversion is ever applied.
type Currency string

const (
	USD Currency = "USD"
	GEL Currency = "GEL"
)

var currencySymbols = map[Currency]string{
	USD: "$",
	GEL: "₾",
}

// ParseCurrency accepts a currency code case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := currencySymbols[c]; !ok {
		return "", fmt.Errorf("%w: %q", invoicedomain.ErrUnknownCurrency, s)
	}
	return c, nil
}

// Symbol returns the printed symbol for c. Values outside the closed set are rejected.
func (c Currency) Symbol() (string, error) {
	sym, ok := currencySymbols[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", invoicedomain.ErrUnknownCurrency, string(c))
	}
	return sym, nil
}

func (c Currency) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

func (c Currency) String() string {
	return string(c)
}
