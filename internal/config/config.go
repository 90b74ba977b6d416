package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	PricingAPIURL    string
	CurrencyAPIURL   string
	DatabasePath     string
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = os.Getenv("LOG_LEVEL")
	if LogLevel == "" {
		LogLevel = "info"
	}

	ServerRunAddress = os.Getenv("SERVER_RUN_ADDRESS")
	if ServerRunAddress == "" {
		ServerRunAddress = "0.0.0.0:8080"
	}

	PricingAPIURL = os.Getenv("PRICING_API_URL")
	if PricingAPIURL == "" {
		PricingAPIURL = "https://api.skin-scout.dev"
	}

	CurrencyAPIURL = os.Getenv("CURRENCY_API_URL")
	if CurrencyAPIURL == "" {
		CurrencyAPIURL = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest"
	}

	DatabasePath = os.Getenv("DB_PATH")
	if DatabasePath == "" {
		DatabasePath = "skin-scout.db"
	}
}
