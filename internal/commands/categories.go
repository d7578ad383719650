package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

func newCategoriesCommand(opts *rootOptions) *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List budget categories and their assumptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}

			cats := s.catalog.All()
			if typeFilter != "" {
				ct := model.CategoryType(typeFilter)
				if !ct.Valid() {
					return fmt.Errorf("unknown category type %q", typeFilter)
				}
				cats = s.catalog.ByType(ct)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tALLOCATION\tSHOWN\tASSUMPTIONS")
			for _, c := range cats {
				fmt.Fprintf(tw, "%s\t%s %s\t%s\t%.1f%%\t%s\t%s\n",
					c.ID, c.Emoji, c.Name, c.Type, c.AllocationPercentage*100, c.DisplayType, assumptionSummary(c))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "only show categories of this type")
	return cmd
}

func assumptionSummary(c model.BudgetCategory) string {
	if len(c.Assumptions) == 0 {
		return "-"
	}
	out := ""
	for i, a := range c.Assumptions {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%g", a.Title, a.Value)
	}
	return out
}
