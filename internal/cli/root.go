package cli

import (
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/moneta-go/money"
	"github.com/moneta-go/money/internal/config"
	"github.com/spf13/cobra"
)

// Version is the version reported by the version command.
var Version = "0.1.0-dev"

// app holds the global flags and the state shared by all commands.
type app struct {
	// Global flags
	configFile string
	debug      bool

	logger log.Logger
	reg    *money.Registry
}

// NewRootCmd returns the money command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "money",
		Short: "Currency-aware monetary arithmetic",
		Long: `money formats, converts, compares and allocates monetary amounts.

Currencies come from a built-in table or from the file given with --conf.
Conversions go through the static reference value of each currency.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "conf", "", "currency table file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable normally suppressed debug logging")

	rootCmd.AddCommand(
		newFormatCmd(a),
		newConvertCmd(a),
		newRateCmd(a),
		newAddCmd(a),
		newSubCmd(a),
		newMulCmd(a),
		newCompareCmd(a),
		newAllocateCmd(a),
		newSplitCmd(a),
		newCurrenciesCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the money command. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup configures logging and builds the registry from the configuration.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	if a.debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	a.logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	level.Debug(a.logger).Log("msg", "configuration loaded", "path", cfg.Path(), "currencies", len(cfg.Currencies), "default", cfg.Default)

	a.reg, err = cfg.Registry(level.Debug(log.With(a.logger, "component", "registry")))
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}
	return nil
}
