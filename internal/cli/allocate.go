package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/moneta-go/money"
	"github.com/spf13/cobra"
)

func newAllocateCmd(a *app) *cobra.Command {
	var curr string
	cmd := &cobra.Command{
		Use:   "allocate <amount> <ratio>...",
		Short: "Allocate an amount by ratios",
		Long: `Allocate an amount into parts proportional to the given ratios.
The ratios must sum to 1. The parts, one per line, always add up to the
amount rounded to the scale of its currency.

Examples:
    money allocate 100 0.5 0.3 0.2
    money allocate 0.05 0.5 0.5 --currency EUR`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.ParseAmount(curr, args[0])
			if err != nil {
				return err
			}
			ratios := make([]decimal.Decimal, len(args)-1)
			for i, s := range args[1:] {
				ratios[i], err = decimal.Parse(s)
				if err != nil {
					return fmt.Errorf("parsing ratio %q: %w", s, err)
				}
			}
			parts, err := m.Allocate(ratios)
			if err != nil {
				return err
			}
			printParts(cmd.OutOrStdout(), parts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&curr, "currency", "c", "", "currency code (default currency if empty)")
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var curr string
	cmd := &cobra.Command{
		Use:   "split <amount> <parts>",
		Short: "Split an amount into equal parts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.ParseAmount(curr, args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parsing number of parts: %w", err)
			}
			parts, err := m.Split(n)
			if err != nil {
				return err
			}
			printParts(cmd.OutOrStdout(), parts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&curr, "currency", "c", "", "currency code (default currency if empty)")
	return cmd
}

func printParts(w io.Writer, parts []money.Amount) {
	for _, p := range parts {
		fmt.Fprintln(w, p)
	}
}
