package document

// Labels holds the fixed printed captions. Captions are bilingual where the
// printed form is.
type Labels struct {
	Title           string
	Subtitle        string
	InvoiceNumber   string
	Date            string
	DueDate         string
	Currency        string
	Supplier        string
	Buyer           string
	Name            string
	Code            string
	Address         string
	Bank            string
	BankCode        string
	Account         string
	ItemColumn      [2]string
	PriceColumn     [2]string
	TaxColumn       [2]string
	TotalColumn     [2]string
	NoItems         string
	Subtotal        string
	GrandTotal      string
	TaxTotalPattern string
}

var defaultLabels = Labels{
	Title:           "INVOICE",
	Subtitle:        "ინვოისი",
	InvoiceNumber:   "Invoice #",
	Date:            "Date",
	DueDate:         "Due Date",
	Currency:        "Currency",
	Supplier:        "Supplier (მიმწოდებელი)",
	Buyer:           "Buyer (შემსყიდველი)",
	Name:            "Name:",
	Code:            "Code:",
	Address:         "Address:",
	Bank:            "Bank:",
	BankCode:        "Bank Code:",
	Account:         "Account:",
	ItemColumn:      [2]string{"საქონელი/მომსახურება", "Item"},
	PriceColumn:     [2]string{"ფასი დღგ-ს გარეშე", "Price Excl. VAT"},
	TaxColumn:       [2]string{"დღგ", "VAT"},
	TotalColumn:     [2]string{"ღირებულება დღგ-ს ჩათვლით", "Total Value"},
	NoItems:         "No items listed",
	Subtotal:        "Subtotal:",
	GrandTotal:      "Grand Total:",
	TaxTotalPattern: "Total VAT (%s%%):",
}
