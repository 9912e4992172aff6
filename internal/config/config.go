package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nikolayk812/storefront-demo/internal/idgen"
	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// Config holds all storefront configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	AddProduct AddProductConfig `yaml:"add_product"`
	Logger     LoggerConfig     `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StoreConfig struct {
	Currency      string `yaml:"currency"`       // ISO 4217 code
	IDStrategy    string `yaml:"id_strategy"`    // uuid, snowflake
	SnowflakeNode int64  `yaml:"snowflake_node"` // 0-1023
	SeedFile      string `yaml:"seed_file"`      // .yaml or .csv; empty uses the built-in catalog
	FakeProducts  int    `yaml:"fake_products"`  // appended generated products
	FakeSeed      uint64 `yaml:"fake_seed"`
}

type AddProductConfig struct {
	RedirectDelay time.Duration `yaml:"redirect_delay"`
	DefaultImage  string        `yaml:"default_image"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"` // development, production
	Level      string `yaml:"level"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Store: StoreConfig{
			Currency:   "USD",
			IDStrategy: idgen.StrategyUUID,
		},
		AddProduct: AddProductConfig{
			RedirectDelay: 1500 * time.Millisecond,
		},
		Logger: LoggerConfig{
			Mode:     "development",
			Level:    "info",
			Filename: "storefront.log",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("STOREFRONT_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("STOREFRONT_CURRENCY"); v != "" {
		c.Store.Currency = v
	}
	if v := os.Getenv("STOREFRONT_SEED_FILE"); v != "" {
		c.Store.SeedFile = v
	}
	if v := os.Getenv("STOREFRONT_FAKE_PRODUCTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("STOREFRONT_FAKE_PRODUCTS[%s] is not a number: %w", v, err)
		}
		c.Store.FakeProducts = n
	}
	if v := os.Getenv("STOREFRONT_LOG_MODE"); v != "" {
		c.Logger.Mode = v
	}

	return nil
}

func (c *Config) Validate() error {
	if _, err := c.CurrencyUnit(); err != nil {
		return err
	}

	switch c.Store.IDStrategy {
	case idgen.StrategyUUID, idgen.StrategySnowflake:
	default:
		return fmt.Errorf("store.id_strategy[%s] is not supported", c.Store.IDStrategy)
	}

	if c.Store.FakeProducts < 0 {
		return fmt.Errorf("store.fake_products must not be negative")
	}

	if c.AddProduct.RedirectDelay < 0 {
		return fmt.Errorf("add_product.redirect_delay must not be negative")
	}

	return nil
}

func (c *Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Store.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("store.currency[%s] is not valid: %w", c.Store.Currency, err)
	}
	return unit, nil
}
