package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/model"
)

func newRecommendCommand(opts *rootOptions) *cobra.Command {
	var byPriority bool

	cmd := &cobra.Command{
		Use:   "recommend [category...]",
		Short: "Show recommended amounts for your income",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}

			var cats []model.BudgetCategory
			if len(args) == 0 {
				cats = s.catalog.All()
			} else {
				for _, id := range args {
					c, ok := s.catalog.Get(id)
					if !ok {
						return fmt.Errorf("unknown category %q", id)
					}
					cats = append(cats, c)
				}
			}
			if byPriority {
				sort.SliceStable(cats, func(i, j int) bool { return cats[i].Priority < cats[j].Priority })
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Monthly income: %s\n\n", cents(s.income))

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCATEGORY\tRECOMMENDED\tPER")
			for _, c := range cats {
				per := "month"
				if c.DisplayType == model.DisplayTotal {
					per = "total"
				}
				fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", c.ID, c.Emoji, c.Name, wholeDollars(c.RecommendedAmount), per)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&byPriority, "by-priority", false, "sort essentials first")
	return cmd
}
