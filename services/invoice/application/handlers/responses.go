package handlers

import (
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/document"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
	domainsvcs "github.com/onyxtech/onyx-invoice/services/invoice/domain/services"
)

// ItemResponse is one invoice line.
type ItemResponse struct {
	ID          string `json:"id"          example:"9b2f6c1e-0d4a-4f7e-8c3b-5a6d7e8f9a0b"`
	Description string `json:"description" example:"Consulting services"`
} // @name ItemResponse

// TotalsResponse carries the display-formatted totals.
type TotalsResponse struct {
	Subtotal string `json:"subtotal" example:"1,250.50"`
	Tax      string `json:"tax"      example:"225.09"`
	Total    string `json:"total"    example:"1,475.59"`
	TaxRate  string `json:"taxRate"  example:"18"`
} // @name TotalsResponse

// DraftResponse is the session's draft with its derived values.
type DraftResponse struct {
	InvoiceNumber     string         `json:"invoiceNumber"     example:"INV-2024-001"`
	Date              string         `json:"date"              example:"2024-03-05"`
	DueDate           string         `json:"dueDate"           example:"2024-03-12"`
	Currency          string         `json:"currency"          example:"USD"`
	CurrencySymbol    string         `json:"currencySymbol"    example:"$"`
	SelectedCompanyID string         `json:"selectedCompanyId" example:"3f1c2a9e-5b7d-4e8a-9c1f-2d3e4f5a6b7c"`
	UnitPriceExclTax  string         `json:"unitPriceExclTax"  example:"1250.50"`
	Items             []ItemResponse `json:"items"`
	Totals            TotalsResponse `json:"totals"`
} // @name DraftResponse

// UnitPriceResponse reports whether the price text was taken.
type UnitPriceResponse struct {
	Accepted bool          `json:"accepted" example:"true"`
	Draft    DraftResponse `json:"draft"`
} // @name UnitPriceResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid header value"`
} // @name ErrorResponse

func toDraftResponse(s models.InvoiceState) DraftResponse {
	symbol, _ := s.Currency.Symbol()
	totals := domainsvcs.TotalsFor(s)

	items := make([]ItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = ItemResponse{ID: it.ID, Description: it.Description}
	}

	return DraftResponse{
		InvoiceNumber:     s.InvoiceNumber,
		Date:              s.Date.Format(models.DateLayout),
		DueDate:           s.DueDate().Format(models.DateLayout),
		Currency:          s.Currency.String(),
		CurrencySymbol:    symbol,
		SelectedCompanyID: s.SelectedCompanyID,
		UnitPriceExclTax:  s.UnitPriceExclTax.String(),
		Items:             items,
		Totals: TotalsResponse{
			Subtotal: document.FormatMoney(totals.Subtotal),
			Tax:      document.FormatMoney(totals.Tax),
			Total:    document.FormatMoney(totals.Total),
			TaxRate:  domainsvcs.TaxRate.Shift(2).String(),
		},
	}
}
