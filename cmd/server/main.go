package main

import (
	"net/http"
	"os"
	"time"

	"twiginvoice/config"
	"twiginvoice/handlers"
	"twiginvoice/models"
	"twiginvoice/repository"
	"twiginvoice/routes"
	"twiginvoice/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load config from .env or environment
	cfg := config.LoadConfig()
	if cfg.WooURL == "" || cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		log.Fatal().Msg("WOO_URL, CONSUMER_KEY and CONSUMER_SECRET must be set")
	}

	orderRepo := repository.NewWooOrderRepo(cfg.WooURL, cfg.ConsumerKey, cfg.ConsumerSecret)

	invoiceHandler := &handlers.InvoiceHandler{
		Repo:     orderRepo,
		Renderer: &utils.ChromeRenderer{TemplateDir: cfg.TemplateDir},
		Company: &models.CompanyInfo{
			CompanyName:    cfg.CompanyName,
			CompanyAddress: cfg.CompanyAddress,
			CompanyGSTIN:   cfg.CompanyGSTIN,
			BankName:       cfg.BankName,
			AccountNumber:  cfg.AccountNumber,
			IFSCCode:       cfg.IFSCCode,
		},
	}

	routes.SetupRoutes(invoiceHandler)

	log.Info().Str("port", cfg.Port).Msg("server running")
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
