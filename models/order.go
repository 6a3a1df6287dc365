package models

import "encoding/json"

// Order is the WooCommerce order payload as returned by
// GET /wp-json/wc/v3/orders/{id}. Monetary totals arrive as strings;
// line item price may be either a number or a string depending on the
// store version, so it is kept as json.Number.
type Order struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number"`
	DateCreated string     `json:"date_created"`
	Total       string     `json:"total"`
	TotalTax    string     `json:"total_tax"`
	Billing     Party      `json:"billing"`
	Shipping    Party      `json:"shipping"`
	LineItems   []LineItem `json:"line_items"`
}

// Party is a billing or shipping sub-record. Any field may be blank.
type Party struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// LineItem is one order line. Subtotal is the net amount before tax and
// is independent of Price x Quantity (discounts may apply).
type LineItem struct {
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
	Price    json.Number `json:"price"`
	Subtotal string      `json:"subtotal"`
}
