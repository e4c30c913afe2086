package models

import "github.com/google/uuid"

// InvoiceItem is one line of the draft. Its ID only provides list identity and is never printed.
type InvoiceItem struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// NewInvoiceItem returns an item with a fresh id and an empty description.
func NewInvoiceItem() InvoiceItem {
	return InvoiceItem{ID: uuid.NewString()}
}
