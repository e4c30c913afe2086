package models

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// unitPricePattern admits digits with at most one decimal point. Empty text matches.
var unitPricePattern = regexp.MustCompile(`^\d*\.?\d*$`)

// UnitPriceText is the unit price excluding tax as typed by the user.
// Partial input such as "12." or "." is kept verbatim; only the numeric
// reading is normalized.
type UnitPriceText string

// IsValidUnitPriceText reports whether s may be stored as a unit price.
func IsValidUnitPriceText(s string) bool {
	return unitPricePattern.MatchString(s)
}

// Amount returns the decimal value of the text, or zero when the text is
// empty or does not parse.
func (p UnitPriceText) Amount() decimal.Decimal {
	if p == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(string(p))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func (p UnitPriceText) String() string {
	return string(p)
}
