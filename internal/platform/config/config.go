package config

import (
	"log"
	"strings"
	"time"

	"github.com/SscSPs/fx_rates_service/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	TrackedCurrencies domain.TrackedCurrencies

	// Currency Beacon
	CurrencyBeaconAPIKey  string
	CurrencyBeaconBaseURL string
	ProviderHTTPTimeout   time.Duration

	// MaxRateSeriesDays bounds the date range of one rate-series query; 0 disables the bound.
	MaxRateSeriesDays int

	// Backfill
	BackfillChunkDays    int
	BackfillMaxWorkers   int
	CronBackfillSchedule string // empty disables the scheduled backfill

	SeedInitialData    bool
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("TRACKED_CURRENCIES", "USD,EUR,GBP,CHF")
	viper.SetDefault("CURRENCY_BEACON_API_KEY", "")
	viper.SetDefault("CURRENCY_BEACON_BASE_URL", "https://api.currencybeacon.com/v1")
	viper.SetDefault("PROVIDER_HTTP_TIMEOUT", "10s")
	viper.SetDefault("MAX_RATE_SERIES_DAYS", 366)
	viper.SetDefault("BACKFILL_CHUNK_DAYS", domain.MaxBackfillChunkDays)
	viper.SetDefault("BACKFILL_MAX_WORKERS", 4)
	viper.SetDefault("CRON_BACKFILL_SCHEDULE", "")
	viper.SetDefault("SEED_INITIAL_DATA", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Values from .env (already in the environment) override defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.TrackedCurrencies = parseCurrencyList(viper.GetString("TRACKED_CURRENCIES"))
	if len(cfg.TrackedCurrencies) == 0 {
		cfg.TrackedCurrencies = domain.TrackedCurrencies{"USD", "EUR", "GBP", "CHF"}
		log.Printf("Warning: TRACKED_CURRENCIES is empty. Defaulting to %s\n", strings.Join(cfg.TrackedCurrencies, ","))
	}

	cfg.CurrencyBeaconAPIKey = viper.GetString("CURRENCY_BEACON_API_KEY")
	if cfg.CurrencyBeaconAPIKey == "" {
		log.Println("Warning: CURRENCY_BEACON_API_KEY not set. Currency Beacon requests will be rejected and fall back to the next provider.")
	}
	cfg.CurrencyBeaconBaseURL = viper.GetString("CURRENCY_BEACON_BASE_URL")

	timeoutStr := viper.GetString("PROVIDER_HTTP_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 10 * time.Second
		log.Printf("Warning: Invalid value for PROVIDER_HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.ProviderHTTPTimeout = timeout

	cfg.BackfillChunkDays = viper.GetInt("BACKFILL_CHUNK_DAYS")
	if cfg.BackfillChunkDays <= 0 {
		cfg.BackfillChunkDays = domain.MaxBackfillChunkDays
		log.Printf("Warning: BACKFILL_CHUNK_DAYS must be positive. Defaulting to %d.\n", cfg.BackfillChunkDays)
	}
	if cfg.BackfillChunkDays > domain.MaxBackfillChunkDays {
		log.Printf("Warning: BACKFILL_CHUNK_DAYS (%d) exceeds %d. Clamping.\n", cfg.BackfillChunkDays, domain.MaxBackfillChunkDays)
		cfg.BackfillChunkDays = domain.MaxBackfillChunkDays
	}

	cfg.MaxRateSeriesDays = viper.GetInt("MAX_RATE_SERIES_DAYS")
	if cfg.MaxRateSeriesDays < 0 {
		cfg.MaxRateSeriesDays = 366
		log.Printf("Warning: MAX_RATE_SERIES_DAYS must not be negative. Defaulting to %d.\n", cfg.MaxRateSeriesDays)
	}
	cfg.BackfillMaxWorkers = viper.GetInt("BACKFILL_MAX_WORKERS")
	if cfg.BackfillMaxWorkers <= 0 {
		cfg.BackfillMaxWorkers = 4
		log.Printf("Warning: BACKFILL_MAX_WORKERS must be positive. Defaulting to %d.\n", cfg.BackfillMaxWorkers)
	}
	cfg.CronBackfillSchedule = viper.GetString("CRON_BACKFILL_SCHEDULE")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.SeedInitialData = viper.GetBool("SEED_INITIAL_DATA")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// parseCurrencyList turns "usd, EUR,,gbp" into [USD EUR GBP], dropping duplicates.
func parseCurrencyList(raw string) domain.TrackedCurrencies {
	var out domain.TrackedCurrencies
	for _, code := range splitList(strings.ToUpper(raw)) {
		if !out.Contains(code) {
			out = append(out, code)
		}
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
