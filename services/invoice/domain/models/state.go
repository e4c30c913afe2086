package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
)

// DueOffsetDays is the fixed distance between the invoice date and its due date.
const DueOffsetDays = 7

// DateLayout is the wire format of the date header field.
const DateLayout = "2006-01-02"

// HeaderField names a header value that SetHeaderField can replace.
type HeaderField string

const (
	FieldInvoiceNumber     HeaderField = "invoiceNumber"
	FieldDate              HeaderField = "date"
	FieldCurrency          HeaderField = "currency"
	FieldSelectedCompanyID HeaderField = "selectedCompanyId"
)

// InvoiceState is the editable draft. Every edit returns a new value; the
// receiver, including its Items backing array, is never modified.
type InvoiceState struct {
	InvoiceNumber     string        `json:"invoiceNumber"`
	Date              time.Time     `json:"date"`
	Currency          Currency      `json:"currency"`
	SelectedCompanyID string        `json:"selectedCompanyId"`
	UnitPriceExclTax  UnitPriceText `json:"unitPriceExclTax"`
	Items             []InvoiceItem `json:"items"`
}

// NewInvoiceState returns the initial draft: dated today, priced "0", in USD,
// with one blank line and the first directory entry selected.
func NewInvoiceState(now time.Time, companies []CompanyRecord) InvoiceState {
	s := InvoiceState{
		Date:             CalendarDate(now),
		Currency:         USD,
		UnitPriceExclTax: "0",
		Items:            []InvoiceItem{NewInvoiceItem()},
	}
	if len(companies) > 0 {
		s.SelectedCompanyID = companies[0].ID
	}
	return s
}

// CalendarDate drops the time of day, keeping the calendar date t shows in its own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueDate is always DueOffsetDays calendar days after the invoice date.
func (s InvoiceState) DueDate() time.Time {
	return s.Date.AddDate(0, 0, DueOffsetDays)
}

// UnitPrice is the numeric reading of UnitPriceExclTax.
func (s InvoiceState) UnitPrice() decimal.Decimal {
	return s.UnitPriceExclTax.Amount()
}

func (s InvoiceState) clone() InvoiceState {
	s.Items = slices.Clone(s.Items)
	return s
}

func (s InvoiceState) WithInvoiceNumber(number string) InvoiceState {
	next := s.clone()
	next.InvoiceNumber = number
	return next
}

func (s InvoiceState) WithDate(date time.Time) InvoiceState {
	next := s.clone()
	next.Date = CalendarDate(date)
	return next
}

func (s InvoiceState) WithCurrency(c Currency) InvoiceState {
	next := s.clone()
	next.Currency = c
	return next
}

func (s InvoiceState) WithSelectedCompany(id string) InvoiceState {
	next := s.clone()
	next.SelectedCompanyID = id
	return next
}

// SetHeaderField replaces one header value wholesale. The only checks are
// type conversions: dates use DateLayout and currencies must be supported.
func (s InvoiceState) SetHeaderField(field HeaderField, value string) (InvoiceState, error) {
	switch field {
	case FieldInvoiceNumber:
		return s.WithInvoiceNumber(value), nil
	case FieldDate:
		d, err := time.Parse(DateLayout, value)
		if err != nil {
			return s, fmt.Errorf("%w: date %q: %w", invoicedomain.ErrInvalidHeaderValue, value, err)
		}
		return s.WithDate(d), nil
	case FieldCurrency:
		c, err := ParseCurrency(value)
		if err != nil {
			return s, fmt.Errorf("%w: %w", invoicedomain.ErrInvalidHeaderValue, err)
		}
		return s.WithCurrency(c), nil
	case FieldSelectedCompanyID:
		return s.WithSelectedCompany(value), nil
	default:
		return s, fmt.Errorf("%w: %q", invoicedomain.ErrUnknownHeaderField, string(field))
	}
}

// SetUnitPrice stores text if it is a non-negative decimal or empty. Any other
// text leaves the state as it was; accepted reports which case applied.
func (s InvoiceState) SetUnitPrice(text string) (next InvoiceState, accepted bool) {
	if !IsValidUnitPriceText(text) {
		return s, false
	}
	next = s.clone()
	next.UnitPriceExclTax = UnitPriceText(text)
	return next, true
}

// AddItem appends a blank line with a fresh id.
func (s InvoiceState) AddItem() InvoiceState {
	next := s.clone()
	next.Items = append(next.Items, NewInvoiceItem())
	return next
}

// UpdateItemDescription replaces the description of the item with the given id.
// Unknown ids leave the state unchanged.
func (s InvoiceState) UpdateItemDescription(id, description string) InvoiceState {
	i := s.itemIndex(id)
	if i < 0 {
		return s
	}
	next := s.clone()
	next.Items[i].Description = description
	return next
}

// RemoveItem drops the item with the given id. Removing the last item is allowed.
func (s InvoiceState) RemoveItem(id string) InvoiceState {
	i := s.itemIndex(id)
	if i < 0 {
		return s
	}
	next := s.clone()
	next.Items = slices.Delete(next.Items, i, i+1)
	return next
}

// HasItem reports whether an item with the given id exists.
func (s InvoiceState) HasItem(id string) bool {
	return s.itemIndex(id) >= 0
}

func (s InvoiceState) itemIndex(id string) int {
	return slices.IndexFunc(s.Items, func(it InvoiceItem) bool { return it.ID == id })
}

// ReconcileCompanyDeletion moves the selection off a deleted company: to the
// first remaining entry, or to unset when none remain. Drafts that did not
// select the deleted company are returned unchanged.
func (s InvoiceState) ReconcileCompanyDeletion(deletedID string, remaining []CompanyRecord) InvoiceState {
	if deletedID == "" || s.SelectedCompanyID != deletedID {
		return s
	}
	if len(remaining) == 0 {
		return s.WithSelectedCompany("")
	}
	return s.WithSelectedCompany(remaining[0].ID)
}

// ResolveBuyer looks the selection up in companies. A dangling or empty
// selection resolves to nothing.
func (s InvoiceState) ResolveBuyer(companies []CompanyRecord) (CompanyRecord, bool) {
	return FindCompany(companies, s.SelectedCompanyID)
}
