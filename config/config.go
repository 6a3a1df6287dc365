package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	WooURL         string
	ConsumerKey    string
	ConsumerSecret string
	Port           string
	TemplateDir    string

	// Fixed issuer fields printed on every invoice.
	CompanyName    string
	CompanyAddress string
	CompanyGSTIN   string
	BankName       string
	AccountNumber  string
	IFSCCode       string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	cfg := &Config{
		WooURL:         os.Getenv("WOO_URL"),
		ConsumerKey:    os.Getenv("CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("CONSUMER_SECRET"),
		Port:           os.Getenv("PORT"),
		TemplateDir:    os.Getenv("TEMPLATE_DIR"),

		CompanyName:    getEnv("COMPANY_NAME", "Twig Labs Private Limited"),
		CompanyAddress: getEnv("COMPANY_ADDRESS", "6/748, Sector-6, Jankipuram Extension, Lucknow Uttar Pradesh 226031, India"),
		CompanyGSTIN:   getEnv("COMPANY_GSTIN", "09AAICT3619H1Z4"),
		BankName:       getEnv("BANK_NAME", "HDFC Bank"),
		AccountNumber:  getEnv("ACCOUNT_NUMBER", "50100418386629"),
		IFSCCode:       getEnv("IFSC_CODE", "HDFC0000570"),
	}
	if cfg.Port == "" {
		cfg.Port = "8010"
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "templates"
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
