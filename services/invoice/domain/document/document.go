// Package document turns a draft into a static, print-ready invoice.
//
// Build produces a Document view model; RenderHTML and the PDF exporter both
// draw from it, so the browser preview and the exported file carry the same
// values. Everything here is a pure function of its inputs.
package document

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/services"
)

// Party is a printed identity block.
type Party struct {
	Name    string
	TaxID   string
	Address string
}

// Row is one printed item line.
type Row struct {
	Description string
	// First marks the row that carries the merged totals cells.
	First bool
}

// Document is the fully resolved content of one printed invoice.
type Document struct {
	Labels Labels

	InvoiceNumber  string
	// IssuedAt is the invoice date; exporters stamp it as the file's
	// creation time so identical drafts produce identical files.
	IssuedAt       time.Time
	Date           string
	DueDate        string
	CurrencyCode   string
	CurrencySymbol string

	Supplier      models.SupplierInfo
	Buyer         Party
	BuyerResolved bool

	// Rows is empty when the draft has no items; the table then shows a
	// placeholder row and no amount cells.
	Rows    []Row
	RowSpan int

	Subtotal string
	Tax      string
	Total    string
	TaxLabel string
}

// Build resolves everything that is printed. buyer may be nil, in which case
// the buyer block is printed with empty fields. Only an unsupported currency
// is an error.
func Build(
	state models.InvoiceState,
	buyer *models.CompanyRecord,
	supplier models.SupplierInfo,
	totals models.Totals,
	taxRate decimal.Decimal,
) (*Document, error) {
	symbol, err := state.Currency.Symbol()
	if err != nil {
		return nil, fmt.Errorf("build document: %w", err)
	}

	doc := &Document{
		Labels:         defaultLabels,
		InvoiceNumber:  state.InvoiceNumber,
		IssuedAt:       state.Date,
		Date:           FormatDate(state.Date),
		DueDate:        FormatDate(state.DueDate()),
		CurrencyCode:   state.Currency.String(),
		CurrencySymbol: symbol,
		Supplier:       supplier,
		Subtotal:       FormatMoney(totals.Subtotal),
		Tax:            FormatMoney(totals.Tax),
		Total:          FormatMoney(totals.Total),
		TaxLabel:       fmt.Sprintf(defaultLabels.TaxTotalPattern, taxRate.Shift(2).String()),
	}

	if buyer != nil {
		doc.Buyer = Party{Name: buyer.Name, TaxID: buyer.TaxID, Address: buyer.Address}
		doc.BuyerResolved = true
	}

	doc.Rows = make([]Row, len(state.Items))
	for i, it := range state.Items {
		doc.Rows[i] = Row{Description: it.Description, First: i == 0}
	}
	doc.RowSpan = len(doc.Rows)

	return doc, nil
}

// Compose resolves the draft's buyer against companies, computes totals at
// the fixed tax rate and builds the document.
func Compose(state models.InvoiceState, companies []models.CompanyRecord, supplier models.SupplierInfo) (*Document, error) {
	var buyer *models.CompanyRecord
	if c, ok := state.ResolveBuyer(companies); ok {
		buyer = &c
	}
	return Build(state, buyer, supplier, services.TotalsFor(state), services.TaxRate)
}

// HasItems reports whether the table body lists items.
func (d *Document) HasItems() bool {
	return len(d.Rows) > 0
}

// FooterSubtotal is the subtotal prefixed with the currency symbol, e.g. "$ 100.00".
func (d *Document) FooterSubtotal() string {
	return d.CurrencySymbol + " " + d.Subtotal
}

func (d *Document) FooterTax() string {
	return d.CurrencySymbol + " " + d.Tax
}

func (d *Document) FooterTotal() string {
	return d.CurrencySymbol + " " + d.Total
}

const draftFileLabel = "Draft"

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}._-]+`)

// FileName is the export file name for an invoice number:
// Invoice_<number>.pdf, or Invoice_Draft.pdf when the number is blank.
// Characters outside letters, digits, dot, dash and underscore become "_".
func FileName(invoiceNumber string) string {
	n := strings.TrimSpace(invoiceNumber)
	if n == "" {
		n = draftFileLabel
	}
	return "Invoice_" + unsafeFileChars.ReplaceAllString(n, "_") + ".pdf"
}
