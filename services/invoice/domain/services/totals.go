// Package services contains stateless domain services for the invoice bounded context.
// They operate purely on domain types and have no infrastructure dependencies.
package services

import (
	"github.com/shopspring/decimal"

	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

// TaxRate is the single VAT rate applied to every invoice.
var TaxRate = decimal.RequireFromString("0.18")

// ComputeTotals derives subtotal, tax and total for itemCount lines at a
// uniform unitPrice. Arithmetic is exact; rounding happens only when the
// amounts are formatted for display. Negative inputs are treated as zero.
func ComputeTotals(itemCount int, unitPrice, taxRate decimal.Decimal) models.Totals {
	if itemCount < 0 {
		itemCount = 0
	}
	if unitPrice.IsNegative() {
		unitPrice = decimal.Zero
	}
	subtotal := decimal.NewFromInt(int64(itemCount)).Mul(unitPrice)
	tax := subtotal.Mul(taxRate)
	return models.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// TotalsFor applies ComputeTotals to a draft at the fixed TaxRate.
func TotalsFor(s models.InvoiceState) models.Totals {
	return ComputeTotals(len(s.Items), s.UnitPrice(), TaxRate)
}
