package models

import "github.com/shopspring/decimal"

// InvoiceLine is a display-ready order line with derived GST amounts.
// All monetary fields are rounded to 2 decimal places.
type InvoiceLine struct {
	Description string          `json:"description"`
	HSNSAC      string          `json:"hsn_sac"`
	Quantity    int             `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	CGSTRate    decimal.Decimal `json:"cgst_rate"`
	SGSTRate    decimal.Decimal `json:"sgst_rate"`
	Amount      decimal.Decimal `json:"amount"`
	CGSTAmount  decimal.Decimal `json:"cgst_amount"`
	SGSTAmount  decimal.Decimal `json:"sgst_amount"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceView is the derived, template-ready invoice.
//
// TotalAmount is the provider's authoritative total, never a local sum;
// Rounding reconciles it against Subtotal + the provider's reported tax.
type InvoiceView struct {
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   string          `json:"invoice_date"`
	DueDate       string          `json:"due_date"`
	PlaceOfSupply string          `json:"place_of_supply"`
	ClientName    string          `json:"client_name"`
	ClientCompany string          `json:"client_company"`
	ClientAddress string          `json:"client_address"`
	ClientGSTIN   string          `json:"client_gstin"`
	ShipToName    string          `json:"ship_to_name"`
	ShipToAddress string          `json:"ship_to_address"`
	ShipToGSTIN   string          `json:"ship_to_gstin"`
	Items         []InvoiceLine   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalCGST     decimal.Decimal `json:"total_cgst"`
	TotalSGST     decimal.Decimal `json:"total_sgst"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Rounding      decimal.Decimal `json:"rounding"`
	TotalInWords  string          `json:"total_in_words"`
}
