package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"investorapi/internal/calculator"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const EnvVar = "INVESTOR_API_ENV"

type Config struct {
	Db        DbSecrets       `json:"db"`
	Server    ServerConfig    `json:"server"`
	Reporting ReportingConfig `json:"reporting"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
	// Url takes precedence over the individual fields when set.
	Url string `json:"url"`
}

func (t DbSecrets) ToConnectionStr() string {
	if t.Url != "" {
		return t.Url
	}
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

type ServerConfig struct {
	Port           int      `json:"port"`
	AllowedOrigins []string `json:"allowedOrigins"`
	MaxUploadBytes int64    `json:"maxUploadBytes"`
}

type ReportingConfig struct {
	BaseCurrency string            `json:"baseCurrency"`
	Rates        map[string]string `json:"rates"`
	DefaultRate  string            `json:"defaultRate"`
}

func DefaultConfig() Config {
	return Config{
		Db: DbSecrets{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Database: "postgres",
		},
		Server: ServerConfig{
			Port:           8000,
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadBytes: 10 * 1024 * 1024,
		},
		Reporting: ReportingConfig{
			BaseCurrency: "USD",
			Rates: map[string]string{
				"GBP": "1.25",
				"USD": "1.0",
			},
			DefaultRate: "1.25",
		},
	}
}

// CurrencyConverter builds the converter shared by ingestion and reporting.
func (r ReportingConfig) CurrencyConverter() (*calculator.CurrencyConverter, error) {
	rates := map[string]decimal.Decimal{}
	for code, raw := range r.Rates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q for %s: %w", raw, code, err)
		}
		rates[code] = rate
	}
	defaultRate, err := decimal.NewFromString(r.DefaultRate)
	if err != nil {
		return nil, fmt.Errorf("invalid default rate %q: %w", r.DefaultRate, err)
	}
	if strings.TrimSpace(r.BaseCurrency) == "" {
		return nil, fmt.Errorf("base currency must be set")
	}

	converter := calculator.NewCurrencyConverter(r.BaseCurrency, rates, defaultRate)
	return &converter, nil
}

func configFile() string {
	switch os.Getenv(EnvVar) {
	case "dev":
		return "secrets-dev.json"
	case "test":
		return "secrets-test.json"
	}
	return "/go/src/app/secrets.json"
}

// LoadConfig reads the secrets file for the current environment on top of
// the defaults, then applies environment overrides. A missing file is not an
// error; the defaults and environment are enough to run locally.
func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()

	f, err := os.ReadFile(configFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not open %s: %w", configFile(), err)
	}
	if err == nil {
		if err := json.Unmarshal(f, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile(), err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Db.Url = url
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}
	if maxBytes := os.Getenv("MAX_UPLOAD_BYTES"); maxBytes != "" {
		n, err := strconv.ParseInt(maxBytes, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_BYTES %q: %w", maxBytes, err)
		}
		cfg.Server.MaxUploadBytes = n
	}
	return nil
}
