package routes

import (
	"net/http"

	"twiginvoice/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(invoiceHandler *handlers.InvoiceHandler) {
	http.Handle("/health", withCORS(http.HandlerFunc(handlers.RecoverWrapper(handlers.Health))))

	// Invoice PDF by order ID
	http.Handle("/invoice/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := r.URL.Path[len("/invoice/"):]
		if id != "" {
			invoiceHandler.InvoicePDF(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))
}
