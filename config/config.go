// Package config loads the sheets-invoices configuration from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to the env tag of every field.
const EnvPrefix = "SHEETS_INVOICES_"

type Config struct {
	AccessToken  string `yaml:"access_token" env:"ACCESS_TOKEN"`
	LexofficeURL string `yaml:"lexoffice_url" env:"LEXOFFICE_URL"`

	APIKey      string `yaml:"api_key" env:"API_KEY"`
	Credentials string `yaml:"credentials" env:"CREDENTIALS"`
	Tokens      string `yaml:"tokens" env:"TOKENS"`
	Spreadsheet string `yaml:"spreadsheet" env:"SPREADSHEET"`
	Range       string `yaml:"range" env:"RANGE"`

	Invoice Invoice `yaml:"invoice" envPrefix:"INVOICE_"`

	HTTPTimeout    time.Duration `yaml:"http_timeout" env:"HTTP_TIMEOUT"`
	RateLimit      float64       `yaml:"rate_limit" env:"RATE_LIMIT"`
	ContactRetries uint          `yaml:"contact_retries" env:"CONTACT_RETRIES"`
	ContactDelay   time.Duration `yaml:"contact_delay" env:"CONTACT_DELAY"`
	InvoiceRetries uint          `yaml:"invoice_retries" env:"INVOICE_RETRIES"`
	RateLimitDelay time.Duration `yaml:"rate_limit_delay" env:"RATE_LIMIT_DELAY"`
}

// Invoice holds the fixed texts and amounts applied to every generated invoice.
type Invoice struct {
	Currency     string  `yaml:"currency" env:"CURRENCY"`
	TaxRate      float64 `yaml:"tax_rate" env:"TAX_RATE"`
	UnitName     string  `yaml:"unit_name" env:"UNIT_NAME"`
	FeeLabel     string  `yaml:"fee_label" env:"FEE_LABEL"`
	Title        string  `yaml:"title" env:"TITLE"`
	Introduction string  `yaml:"introduction" env:"INTRODUCTION"`
	Remark       string  `yaml:"remark" env:"REMARK"`
}

func NewConfig() *Config {
	return &Config{
		LexofficeURL: "https://api.lexoffice.io",
		Invoice: Invoice{
			Currency:     "EUR",
			TaxRate:      19,
			UnitName:     "Stück",
			FeeLabel:     "KSK Gebühr",
			Title:        "Rechnung",
			Introduction: "Ihre bestellten Positionen stellen wir Ihnen hiermit in Rechnung",
			Remark:       "Vielen Dank für Ihren Einkauf",
		},
		HTTPTimeout:    30 * time.Second,
		RateLimit:      2,
		ContactRetries: 3,
		ContactDelay:   1 * time.Second,
		InvoiceRetries: 3,
		RateLimitDelay: 5 * time.Second,
	}
}

// Load overlays the YAML file at path (if it exists) and then the SHEETS_INVOICES_* environment
// variables onto the defaults.
func (c *Config) Load(path string) error {
	if strings.TrimSpace(path) != "" {
		bytes, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err == nil {
			if err := yaml.Unmarshal(bytes, c); err != nil {
				return fmt.Errorf("invalid configuration file %v (%w)", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Validate checks the settings needed to read the sheet and talk to lexoffice.
func (c *Config) Validate() error {
	if err := c.ValidateLexoffice(); err != nil {
		return err
	}

	return c.ValidateSheets()
}

// ValidateLexoffice checks the lexoffice credential and invoice settings.
func (c *Config) ValidateLexoffice() error {
	if strings.TrimSpace(c.AccessToken) == "" {
		return fmt.Errorf("missing lexoffice access_token")
	}

	unit, err := currency.ParseISO(c.Invoice.Currency)
	if err != nil {
		return fmt.Errorf("invalid currency '%v' (%w)", c.Invoice.Currency, err)
	}

	c.Invoice.Currency = unit.String()

	if c.HTTPTimeout < time.Millisecond {
		return fmt.Errorf("invalid http_timeout %v (expected a duration e.g. 30s)", c.HTTPTimeout)
	}

	if err := delay("contact_delay", c.ContactDelay); err != nil {
		return err
	}

	return delay("rate_limit_delay", c.RateLimitDelay)
}

func delay(name string, d time.Duration) error {
	if d < 0 || (d > 0 && d < time.Millisecond) {
		return fmt.Errorf("invalid %v %v (expected a duration e.g. 1s)", name, d)
	}

	return nil
}

// ValidateSheets checks the spreadsheet, range and Google credentials.
func (c *Config) ValidateSheets() error {
	if strings.TrimSpace(c.Spreadsheet) == "" {
		return fmt.Errorf("missing spreadsheet")
	}

	if strings.TrimSpace(c.Range) == "" {
		return fmt.Errorf("missing range")
	}

	if strings.TrimSpace(c.APIKey) == "" && strings.TrimSpace(c.Credentials) == "" {
		return fmt.Errorf("one of api_key or credentials is required to read the spreadsheet")
	}

	return nil
}
