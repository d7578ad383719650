package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/budget"
	"github.com/deeppockets-dev/deeppockets/internal/model"
)

func newBudgetCommand(opts *rootOptions) *cobra.Command {
	var include []string
	var csvPath string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Build a monthly budget from recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}

			b := budget.New(s.income)
			if len(include) == 0 {
				for _, c := range s.catalog.All() {
					if c.DisplayType == model.DisplayMonthly {
						b.Promote(c)
					}
				}
			} else {
				for _, id := range include {
					c, ok := s.catalog.Get(id)
					if !ok {
						return fmt.Errorf("unknown category %q", id)
					}
					b.Promote(c)
				}
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tAMOUNT\tPER")
			for _, l := range b.Lines {
				fmt.Fprintf(tw, "%s\t$%s\t%s\n", l.Name, l.Amount.StringFixed(0), l.DisplayType)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nMonthly total: $%s of $%s\n", b.MonthlyTotal().StringFixed(2), b.Income.StringFixed(2))
			if b.Overallocated() {
				fmt.Fprintf(out, "Over budget by $%s\n", b.Remaining().Neg().StringFixed(2))
			} else {
				fmt.Fprintf(out, "Remaining: $%s\n", b.Remaining().StringFixed(2))
			}

			if csvPath != "" {
				if err := writeBudgetCSV(csvPath, b); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %s\n", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "category ids to promote (default: all monthly categories)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the budget to a CSV file")
	return cmd
}

func writeBudgetCSV(path string, b *budget.Budget) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating budget file: %w", err)
	}
	defer f.Close()

	if err := budget.WriteCSV(f, b.Lines); err != nil {
		return fmt.Errorf("writing budget: %w", err)
	}
	return nil
}
