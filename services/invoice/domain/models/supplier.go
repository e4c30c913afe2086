package models

// SupplierInfo identifies the issuing company. It is fixed for the lifetime
// of the process and printed on every invoice.
type SupplierInfo struct {
	Name     string `json:"name"`
	TaxID    string `json:"idCode"`
	Address  string `json:"address"`
	Bank     string `json:"bank"`
	BankCode string `json:"bankCode"`
	Account  string `json:"account"`
}

// DefaultSupplier returns the built-in supplier record.
func DefaultSupplier() SupplierInfo {
	return SupplierInfo{
		Name:     `შპს ,,ონიქს ტექნოლოჯი"`,
		TaxID:    "204560965",
		Address:  "ბაგები, წყნეთის გზატკეცილი N65, თბილისი, საქართველო",
		Bank:     "საქართველოს ბანკი",
		BankCode: "BAGAGE22",
		Account:  "GE32BG0000000101521598",
	}
}

// Override returns s with every non-empty field of o applied on top.
func (s SupplierInfo) Override(o SupplierInfo) SupplierInfo {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return SupplierInfo{
		Name:     pick(s.Name, o.Name),
		TaxID:    pick(s.TaxID, o.TaxID),
		Address:  pick(s.Address, o.Address),
		Bank:     pick(s.Bank, o.Bank),
		BankCode: pick(s.BankCode, o.BankCode),
		Account:  pick(s.Account, o.Account),
	}
}
