package config

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/govalues/decimal"
	"github.com/moneta-go/money"
)

// Config is the currency table a registry is built from.
type Config struct {
	// Default is the code used when an amount is given without a currency.
	// Empty means no default.
	Default string `mapstructure:"default"`

	// Currencies are registered in order; a later entry with the same code
	// is rejected by Validate.
	Currencies []CurrencyConfig `mapstructure:"currencies"`

	configPath string
}

// CurrencyConfig describes one currency of the table.
type CurrencyConfig struct {
	Code      string `mapstructure:"code"`
	Name      string `mapstructure:"name"`
	Symbol    string `mapstructure:"symbol"`
	Precision int    `mapstructure:"precision"`
	// Reference is a decimal string, e.g. "1.08000000".
	Reference string `mapstructure:"reference_value"`
}

// Path returns the file the configuration was read from, or "" for the
// built-in table.
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks the table by building a scratch registry from it, so a
// table that passes Validate registers without error.
func (c *Config) Validate() error {
	_, err := c.build(money.NewRegistry())
	return err
}

// Registry builds a registry holding the built-in US Dollar and every
// currency of the table, and sets the default currency.
// Registry events are logged to logger.
func (c *Config) Registry(logger log.Logger) (*money.Registry, error) {
	return c.build(money.NewRegistry(money.WithLogger(logger)))
}

// build registers the currencies of the table into r and sets its default.
// An entry may replace a built-in currency but not an earlier entry.
func (c *Config) build(r *money.Registry) (*money.Registry, error) {
	seen := make(map[string]bool, len(c.Currencies))
	for i, cc := range c.Currencies {
		ref, err := decimal.Parse(cc.Reference)
		if err != nil {
			return nil, fmt.Errorf("currencies[%d]: %s: reference_value %q: %w", i, cc.Code, cc.Reference, err)
		}
		if err := r.Register(cc.Code, cc.Name, cc.Symbol, cc.Precision, ref); err != nil {
			return nil, fmt.Errorf("currencies[%d]: %w", i, err)
		}
		curr, err := r.Lookup(cc.Code)
		if err != nil {
			return nil, fmt.Errorf("currencies[%d]: %w", i, err)
		}
		if seen[curr.Code()] {
			return nil, fmt.Errorf("currencies[%d]: duplicate code %s", i, curr.Code())
		}
		seen[curr.Code()] = true
	}
	if strings.TrimSpace(c.Default) != "" {
		if err := r.SetDefault(c.Default); err != nil {
			return nil, fmt.Errorf("default currency: %w", err)
		}
	}
	return r, nil
}
