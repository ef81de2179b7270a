// =============================================================================
// Aralco to Salesforce Migration - Configuration Module
// =============================================================================
//
// Loads the application configuration from a single YAML file. The config
// covers the directory layout, the source export file names, and the
// Aralco database connection used by the extract command. Field mapping
// rules themselves are fixed in code (internal/salesforce, internal/mapper)
// and are deliberately not configurable.
//
// =============================================================================

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// InputDir is where the extracted Aralco sample files live.
	// Default: "./exports/analysis"
	InputDir string `yaml:"input_dir"`

	// OutputDir is the root of the Salesforce-ready output tree. The
	// accounts/, products/ and orders/ subdirectories are created under it.
	// Default: "./exports/salesforce_ready"
	OutputDir string `yaml:"output_dir"`

	// CustomersFile is the customer export file name inside InputDir.
	// Both .csv and .xlsx exports are accepted.
	// Default: "customer_sample.csv"
	CustomersFile string `yaml:"customers_file"`

	// ProductsFile is the product export file name inside InputDir.
	// Default: "product_sample.csv"
	ProductsFile string `yaml:"products_file"`

	// ErrorCap bounds the failure sample carried in the run summary.
	// Default: 100
	ErrorCap int `yaml:"error_cap"`

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Database is the Aralco SQL Server connection, used only by the
	// extract command. The transform command never touches the database.
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig is the Aralco POS SQL Server connection.
type DatabaseConfig struct {
	// Server is the host name or address.
	// Default: "localhost"
	Server string `yaml:"server"`

	// Port is the TCP port.
	// Default: 1433
	Port int `yaml:"port"`

	// Name is the database name.
	// Default: "AralcoPOS"
	Name string `yaml:"name"`

	// User is the SQL login.
	User string `yaml:"user"`

	// Password for the SQL login. Prefer setting ARALCO_DB_PASSWORD in the
	// environment over writing it into the config file; the environment
	// variable wins when both are present.
	Password string `yaml:"password"`
}

// Load reads and parses the configuration file, then applies defaults.
// A missing file is not an error: the defaults describe a complete local
// run, so the tool works with no config at all.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if password := os.Getenv("ARALCO_DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	return &cfg, nil
}

// applyDefaults fills in every unset option.
func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./exports/analysis"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./exports/salesforce_ready"
	}
	if cfg.CustomersFile == "" {
		cfg.CustomersFile = "customer_sample.csv"
	}
	if cfg.ProductsFile == "" {
		cfg.ProductsFile = "product_sample.csv"
	}
	if cfg.ErrorCap == 0 {
		cfg.ErrorCap = 100
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Database.Server == "" {
		cfg.Database.Server = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 1433
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "AralcoPOS"
	}
}

// =============================================================================
// PATH HELPERS
// =============================================================================

// CustomersPath is the full path to the customer export.
func (c *Config) CustomersPath() string {
	return filepath.Join(c.InputDir, c.CustomersFile)
}

// ProductsPath is the full path to the product export.
func (c *Config) ProductsPath() string {
	return filepath.Join(c.InputDir, c.ProductsFile)
}

// AccountsOutputPath is the Account import file location.
func (c *Config) AccountsOutputPath() string {
	return filepath.Join(c.OutputDir, "accounts", "accounts_import.csv")
}

// ProductsOutputPath is the Product2 import file location.
func (c *Config) ProductsOutputPath() string {
	return filepath.Join(c.OutputDir, "products", "products_import.csv")
}

// PricebookOutputPath is the PricebookEntry import file location. It sits
// next to the product import file.
func (c *Config) PricebookOutputPath() string {
	return filepath.Join(c.OutputDir, "products", "pricebook_entries.csv")
}

// SummaryPath is the run summary artifact location.
func (c *Config) SummaryPath() string {
	return filepath.Join(c.OutputDir, "transformation_summary.json")
}

// OutputDirs lists every directory the transform command writes into.
func (c *Config) OutputDirs() []string {
	return []string{
		c.OutputDir,
		filepath.Join(c.OutputDir, "accounts"),
		filepath.Join(c.OutputDir, "products"),
		filepath.Join(c.OutputDir, "orders"),
	}
}

// DSN builds the SQL Server connection string for the extract command.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Server, d.Port),
	}
	query := url.Values{}
	query.Set("database", d.Name)
	u.RawQuery = query.Encode()
	return u.String()
}
