// Package jsondoc reads and writes the companies.json document shared by the
// file and GitHub directory backends.
//
// The document is a JSON array of {"id","name","idCode","address"} objects
// indented with four spaces. Array order is directory order.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	companydomain "github.com/onyxtech/onyx-invoice/services/company/domain"
	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
)

type record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"idCode"`
	Address string `json:"address"`
}

// Decode parses a companies document. Empty or whitespace-only input is an empty directory.
func Decode(data []byte) ([]*models.Company, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	companies := make([]*models.Company, len(records))
	for i, r := range records {
		companies[i] = &models.Company{ID: r.ID, Name: r.Name, TaxID: r.TaxID, Address: r.Address}
	}
	return companies, nil
}

// Encode renders companies as an indented document with a trailing newline.
func Encode(companies []*models.Company) ([]byte, error) {
	records := make([]record, len(companies))
	for i, c := range companies {
		records[i] = record{ID: c.ID, Name: c.Name, TaxID: c.TaxID, Address: c.Address}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode companies: %w", err)
	}
	return append(data, '\n'), nil
}

// Append returns companies with c added at the end, rejecting duplicate ids.
func Append(companies []*models.Company, c *models.Company) ([]*models.Company, error) {
	if slices.ContainsFunc(companies, func(x *models.Company) bool { return x.ID == c.ID }) {
		return nil, companydomain.ErrCompanyAlreadyExists
	}
	return append(slices.Clone(companies), c), nil
}

// Remove returns companies without the entry for id.
func Remove(companies []*models.Company, id string) ([]*models.Company, error) {
	i := slices.IndexFunc(companies, func(x *models.Company) bool { return x.ID == id })
	if i < 0 {
		return nil, companydomain.ErrCompanyNotFound
	}
	return slices.Delete(slices.Clone(companies), i, i+1), nil
}
