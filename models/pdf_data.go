package models

// CompanyInfo holds the fixed issuer fields printed on every invoice.
type CompanyInfo struct {
	CompanyName    string
	CompanyAddress string
	CompanyGSTIN   string
	BankName       string
	AccountNumber  string
	IFSCCode       string
}

// InvoicePDFData merges issuer fields with the derived invoice view for
// template rendering.
type InvoicePDFData struct {
	Company *CompanyInfo
	Invoice *InvoiceView
}
