package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Company is a reusable buyer record owned by the directory.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	CreatedAt time.Time
}

// CompanyFields are the user-supplied parts of a Company.
type CompanyFields struct {
	Name    string
	TaxID   string
	Address string
}

// Normalize trims surrounding whitespace from every field.
func (f CompanyFields) Normalize() CompanyFields {
	return CompanyFields{
		Name:    strings.TrimSpace(f.Name),
		TaxID:   strings.TrimSpace(f.TaxID),
		Address: strings.TrimSpace(f.Address),
	}
}

// NewCompany builds a Company from normalized fields. The directory assigns the id.
func NewCompany(f CompanyFields) *Company {
	f = f.Normalize()
	return &Company{
		ID:        uuid.NewString(),
		Name:      f.Name,
		TaxID:     f.TaxID,
		Address:   f.Address,
		CreatedAt: time.Now().UTC(),
	}
}
