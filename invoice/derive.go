// Package invoice derives a display-ready invoice view from a fetched
// order: per-line GST amounts, aggregate totals and the rounding
// reconciliation against the provider's authoritative figures.
package invoice

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"twiginvoice/models"
	"twiginvoice/utils"

	"github.com/shopspring/decimal"
)

// Fixed dual-rate GST split. The rates are constants of this package and
// are never read from the order payload.
var (
	cgstRate = decimal.RequireFromString("0.025")
	sgstRate = decimal.RequireFromString("0.025")
)

// Placeholder for fields the provider has no data for (HSN/SAC codes,
// GSTINs, blank company or state).
const notAvailable = "N/A"

// Derive builds an InvoiceView from an order.
//
// Per-line tax amounts are computed from the net line subtotal at the
// fixed rates; aggregates accumulate unrounded values and are rounded to
// 2 decimal places only on the final fields. TotalAmount is taken from
// the provider as-is, and Rounding = TotalAmount - (Subtotal + reported
// tax) carries any discrepancy instead of silently dropping it.
//
// Missing optional party sub-fields never fail; a malformed numeric or
// date field returns a wrapped error, which callers treat as an upstream
// failure.
func Derive(order *models.Order) (*models.InvoiceView, error) {
	items := make([]models.InvoiceLine, 0, len(order.LineItems))
	subtotal := decimal.Zero
	totalCGST := decimal.Zero
	totalSGST := decimal.Zero

	for i, item := range order.LineItems {
		rate, err := decimal.NewFromString(item.Price.String())
		if err != nil {
			return nil, fmt.Errorf("line %d: bad price %q: %w", i, item.Price, err)
		}
		amount, err := decimal.NewFromString(item.Subtotal)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad subtotal %q: %w", i, item.Subtotal, err)
		}

		cgst := amount.Mul(cgstRate)
		sgst := amount.Mul(sgstRate)
		lineTotal := amount.Add(cgst).Add(sgst)

		items = append(items, models.InvoiceLine{
			Description: item.Name,
			HSNSAC:      notAvailable,
			Quantity:    item.Quantity,
			Rate:        rate.Round(2),
			CGSTRate:    cgstRate,
			SGSTRate:    sgstRate,
			Amount:      amount.Round(2),
			CGSTAmount:  cgst.Round(2),
			SGSTAmount:  sgst.Round(2),
			Total:       lineTotal.Round(2),
		})

		subtotal = subtotal.Add(amount)
		totalCGST = totalCGST.Add(cgst)
		totalSGST = totalSGST.Add(sgst)
	}

	totalAmount, err := decimal.NewFromString(order.Total)
	if err != nil {
		return nil, fmt.Errorf("bad order total %q: %w", order.Total, err)
	}
	totalTax, err := decimal.NewFromString(order.TotalTax)
	if err != nil {
		return nil, fmt.Errorf("bad order total_tax %q: %w", order.TotalTax, err)
	}
	rounding := totalAmount.Sub(subtotal.Add(totalTax))

	invoiceDate, err := formatDate(order.DateCreated)
	if err != nil {
		return nil, err
	}

	number := order.Number
	if number == "" {
		number = strconv.FormatInt(order.ID, 10)
	}

	return &models.InvoiceView{
		InvoiceNumber: number,
		InvoiceDate:   invoiceDate,
		DueDate:       invoiceDate,
		PlaceOfSupply: orPlaceholder(order.Billing.State),
		ClientName:    partyName(order.Billing),
		ClientCompany: orPlaceholder(order.Billing.Company),
		ClientAddress: partyAddress(order.Billing),
		ClientGSTIN:   notAvailable,
		ShipToName:    partyName(order.Shipping),
		ShipToAddress: partyAddress(order.Shipping),
		ShipToGSTIN:   notAvailable,
		Items:         items,
		Subtotal:      subtotal.Round(2),
		TotalCGST:     totalCGST.Round(2),
		TotalSGST:     totalSGST.Round(2),
		TotalAmount:   totalAmount,
		Rounding:      rounding.Round(2),
		TotalInWords:  utils.AmountInWords(order.Total),
	}, nil
}

// formatDate reformats the date portion of the provider's ISO-8601
// creation timestamp to dd/mm/yyyy. Both invoice and due date use it;
// there is no separate due-date upstream.
func formatDate(created string) (string, error) {
	datePart := created
	if i := strings.IndexByte(created, 'T'); i >= 0 {
		datePart = created[:i]
	}
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return "", fmt.Errorf("bad order creation date %q: %w", created, err)
	}
	return t.Format("02/01/2006"), nil
}

func partyName(p models.Party) string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// partyAddress joins the address sub-fields in display order. Blank
// sub-fields stay blank but the separators are kept, so the layout is
// predictable regardless of which fields the store filled in.
func partyAddress(p models.Party) string {
	return strings.TrimSpace(fmt.Sprintf("%s, %s, %s, %s %s, %s",
		p.Address1, p.Address2, p.City, p.State, p.Postcode, p.Country))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
