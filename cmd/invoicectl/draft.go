package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

// draftFile is the on-disk draft format. Omitted header fields keep their
// initial values; an omitted items list keeps the single blank line while an
// explicit [] prints the empty table.
type draftFile struct {
	InvoiceNumber     string   `json:"invoiceNumber"`
	Date              string   `json:"date"`
	Currency          string   `json:"currency"`
	SelectedCompanyID string   `json:"selectedCompanyId"`
	UnitPriceExclTax  *string  `json:"unitPriceExclTax"`
	Items             []string `json:"items"`
}

var errInvalidUnitPrice = errors.New("unitPriceExclTax must be a non-negative decimal")

func readDraftFile(path string) (*draftFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	var df draftFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse draft %s: %w", path, err)
	}
	return &df, nil
}

// state replays the file onto a fresh initial draft through the same edits
// the API applies.
func (df *draftFile) state(now time.Time, companies []models.CompanyRecord) (models.InvoiceState, error) {
	s := models.NewInvoiceState(now, companies)

	headers := []struct {
		field models.HeaderField
		value string
	}{
		{models.FieldInvoiceNumber, df.InvoiceNumber},
		{models.FieldDate, df.Date},
		{models.FieldCurrency, df.Currency},
		{models.FieldSelectedCompanyID, df.SelectedCompanyID},
	}
	for _, h := range headers {
		if h.value == "" {
			continue
		}
		next, err := s.SetHeaderField(h.field, h.value)
		if err != nil {
			return s, err
		}
		s = next
	}

	if df.UnitPriceExclTax != nil {
		next, accepted := s.SetUnitPrice(*df.UnitPriceExclTax)
		if !accepted {
			return s, fmt.Errorf("%w: %q", errInvalidUnitPrice, *df.UnitPriceExclTax)
		}
		s = next
	}

	if df.Items != nil {
		for _, it := range s.Items {
			s = s.RemoveItem(it.ID)
		}
		for _, description := range df.Items {
			s = s.AddItem()
			s = s.UpdateItemDescription(s.Items[len(s.Items)-1].ID, description)
		}
	}
	return s, nil
}
