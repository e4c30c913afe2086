package models

// CompanyRecord is a buyer as supplied by the company directory. The invoice
// context never creates or assigns ids for these.
type CompanyRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"idCode"`
	Address string `json:"address"`
}

// FindCompany returns the record with the given id.
func FindCompany(companies []CompanyRecord, id string) (CompanyRecord, bool) {
	if id == "" {
		return CompanyRecord{}, false
	}
	for _, c := range companies {
		if c.ID == id {
			return c, true
		}
	}
	return CompanyRecord{}, false
}
