package cli

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/govalues/decimal"
	"github.com/moneta-go/money"
	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	var (
		curr   string
		layout string
	)
	cmd := &cobra.Command{
		Use:   "format <amount>",
		Short: "Display an amount with its currency symbol",
		Long: `Display an amount rounded to the scale of its currency, with the
currency symbol and thousands separators.

With --fmt the amount is printed through a fmt verb instead:
%v (USD 5.68), %f (5.68), %.3f (5.678), %d (568, minor units), %c (USD).

Examples:
    money format 1234.5
    money format 1234.5 --currency EUR
    money format 5.678 --fmt %d`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.ParseAmount(curr, args[0])
			if err != nil {
				return err
			}
			if layout != "" {
				fmt.Fprintf(cmd.OutOrStdout(), layout+"\n", m)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Display())
			return nil
		},
	}
	cmd.Flags().StringVarP(&curr, "currency", "c", "", "currency code (default currency if empty)")
	cmd.Flags().StringVar(&layout, "fmt", "", "fmt verb used instead of the display format")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <amount>",
		Short: "Convert an amount into another currency",
		Long: `Convert an amount through the reference values of both currencies:
the amount times the source reference value, kept at 8 decimal places,
divided by the target reference value.

Examples:
    money convert 10 --to EUR
    money convert 10 --from EUR --to JPY`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.ParseAmount(from, args[0])
			if err != nil {
				return err
			}
			res, err := m.Convert(to)
			if err != nil {
				return err
			}
			level.Debug(a.logger).Log("msg", "converted", "from", m, "to", res)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "source currency (default currency if empty)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "target currency")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newRateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <base> <quote>",
		Short: "Show the exchange rate implied by two reference values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.reg.ExchRate(args[0], args[1])
			if err != nil {
				return err
			}
			if _, err := r.Value(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

// binaryOp is an operation between two amounts in possibly different currencies.
type binaryOp func(x, y money.Amount) (money.Amount, error)

func newBinaryCmd(a *app, use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <amount> <currency> <amount> <currency>",
		Short: short,
		Long: short + `.
The second amount is converted into the currency of the first one,
and the result is in the currency of the first one.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.parsePair(args)
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	return newBinaryCmd(a, "add", "Add two amounts", money.Amount.Add)
}

func newSubCmd(a *app) *cobra.Command {
	return newBinaryCmd(a, "sub", "Subtract the second amount from the first", money.Amount.Sub)
}

func newMulCmd(a *app) *cobra.Command {
	var curr string
	cmd := &cobra.Command{
		Use:   "mul <amount> <factor>",
		Short: "Multiply an amount by a decimal factor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.ParseAmount(curr, args[0])
			if err != nil {
				return err
			}
			e, err := decimal.Parse(args[1])
			if err != nil {
				return fmt.Errorf("parsing factor: %w", err)
			}
			res, err := m.Mul(e)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&curr, "currency", "c", "", "currency code (default currency if empty)")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <amount> <currency> <amount> <currency>",
		Short: "Compare two amounts",
		Long: `Compare two amounts after converting the second one into the currency
of the first one. Both are rounded to the scale of that currency first.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := a.parsePair(args)
			if err != nil {
				return err
			}
			c, err := x.Cmp(y)
			if err != nil {
				return err
			}
			op := "="
			switch c {
			case -1:
				op = "<"
			case 1:
				op = ">"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v %s %v\n", x, op, y)
			return nil
		},
	}
}

// parsePair parses arguments of the form <amount> <currency> <amount> <currency>.
func (a *app) parsePair(args []string) (money.Amount, money.Amount, error) {
	x, err := a.reg.ParseAmount(args[1], args[0])
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}
	y, err := a.reg.ParseAmount(args[3], args[2])
	if err != nil {
		return money.Amount{}, money.Amount{}, err
	}
	return x, y, nil
}
