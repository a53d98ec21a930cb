package cmd

import (
	"fmt"
	"time"
)

const (
	NewCustomerSinkCSV      = "csv"
	NewCustomerSinkPostgres = "postgres"

	DefaultHTTPPort             = "8080"
	DefaultCatalogFile          = "item_catalog.csv"
	DefaultCustomerFile         = "customer.csv"
	DefaultNewCustomerFile      = "new_customers.csv"
	DefaultSessionIdleTTL       = 2 * time.Hour
	DefaultSessionSweepSchedule = "0 */5 * * * *"
)

type Config struct {
	HTTPPort             string
	CatalogFile          string
	CustomerFile         string
	NewCustomerFile      string
	NewCustomerSink      string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	SessionIdleTTL       time.Duration
	SessionSweepSchedule string
}

// Validate rejects settings the composition root cannot wire.
func (c Config) Validate() error {
	switch c.NewCustomerSink {
	case NewCustomerSinkCSV, NewCustomerSinkPostgres:
	default:
		return fmt.Errorf("unknown NEW_CUSTOMER_SINK %q, expected %q or %q",
			c.NewCustomerSink, NewCustomerSinkCSV, NewCustomerSinkPostgres)
	}

	if c.SessionIdleTTL <= 0 {
		return fmt.Errorf("SESSION_IDLE_TTL must be positive, got %s", c.SessionIdleTTL)
	}

	return nil
}

// PostgresDSN builds the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
