package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// builtin is the currency table used when no configuration file is given.
//
//go:embed currencies.yaml
var builtin string

// setDefaults makes the built-in table the default value of every key.
func setDefaults(v *viper.Viper) error {
	b := viper.New()
	b.SetConfigType("yaml")
	if err := b.ReadConfig(strings.NewReader(builtin)); err != nil {
		return fmt.Errorf("failed to read built-in currencies: %w", err)
	}
	v.SetDefault("default", b.GetString("default"))
	v.SetDefault("currencies", b.Get("currencies"))
	return nil
}
