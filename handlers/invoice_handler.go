package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"twiginvoice/invoice"
	"twiginvoice/models"
	"twiginvoice/repository"
	"twiginvoice/utils"

	"github.com/rs/zerolog/log"
)

type InvoiceHandler struct {
	Repo     repository.OrderRepository
	Renderer utils.Renderer
	Company  *models.CompanyInfo
}

// InvoicePDF handles GET /invoice/{order_id}: fetch the order, derive
// the invoice view and stream the rendered PDF inline.
//
// Not-found from the provider maps to 404; any other fetch or derivation
// error maps to 500 with a generic message (the cause is only logged),
// as does a render failure.
func (h *InvoiceHandler) InvoicePDF(w http.ResponseWriter, r *http.Request, orderID string) {
	order, err := h.Repo.GetOrder(r.Context(), orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: fmt.Sprintf("Order ID %s not found in the system", orderID),
		})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to fetch order data")
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Could not fetch order data due to a server or connection error",
		})
		return
	}

	view, err := invoice.Derive(order)
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to derive invoice data")
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Could not fetch order data due to a server or connection error",
		})
		return
	}

	pdfBytes, err := h.Renderer.Render(models.InvoicePDFData{Company: h.Company, Invoice: view})
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("failed to generate invoice PDF")
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Error generating PDF invoice",
		})
		return
	}

	safeNumber := strings.ReplaceAll(view.InvoiceNumber, "/", "-")
	filename := fmt.Sprintf("invoice_%s.pdf", safeNumber)

	// Archive to R2 when configured; failure is logged, never fatal.
	if utils.R2Enabled() {
		if fileURL, err := utils.UploadInvoicePDF(pdfBytes, filename); err != nil {
			log.Warn().Err(err).Str("order_id", orderID).Msg("failed to archive invoice PDF")
		} else {
			log.Info().Str("url", fileURL).Str("order_id", orderID).Msg("invoice PDF archived")
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
