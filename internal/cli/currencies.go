package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/moneta-go/money"
	"github.com/spf13/cobra"
)

var currencyFields = []string{
	money.FieldName,
	money.FieldSymbol,
	money.FieldPrecision,
	money.FieldReference,
}

func newCurrenciesCmd(a *app) *cobra.Command {
	var field string
	cmd := &cobra.Command{
		Use:   "currencies [code]",
		Short: "List registered currencies or show one of them",
		Long: `Without arguments, list every registered currency.
With a code, show its descriptor, or a single field of it with --field.

Fields: name, symbol, precision, reference_value.

Examples:
    money currencies
    money currencies EUR
    money currencies EUR --field symbol`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				if field != "" {
					return fmt.Errorf("--field requires a currency code")
				}
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "CODE\tPRECISION\tREFERENCE\tSYMBOL\tNAME")
				for _, code := range a.reg.Codes() {
					c, err := a.reg.Lookup(code)
					if err != nil {
						return err
					}
					fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", c.Code(), c.Scale(), c.Reference(), c.Symbol(), c.Name())
				}
				return tw.Flush()
			}

			if field != "" {
				v, err := a.reg.LookupField(args[0], field)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				return nil
			}
			for _, f := range currencyFields {
				v, err := a.reg.LookupField(args[0], f)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", f, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&field, "field", "f", "", "print a single descriptor field")
	return cmd
}
