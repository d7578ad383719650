package commands

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/savings"
)

const dateFormat = "2006-01-02"

func newSavingsCommand(opts *rootOptions) *cobra.Command {
	var target float64
	var by string

	cmd := &cobra.Command{
		Use:   "savings [category]",
		Short: "Check whether a savings goal fits a category's allocation",
		Long: `Check whether a savings goal fits a category's allocation.

With no flags, every goal saved in the profile is analyzed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			planner := savings.NewPlanner()

			if len(args) == 0 {
				if len(s.cfg.Goals) == 0 {
					return fmt.Errorf("no category given and no goals in profile")
				}
				for _, g := range s.cfg.Goals {
					if err := checkAmount(fmt.Sprintf("goal target for %q", g.Category), g.Target); err != nil {
						return err
					}
					if err := runSavings(cmd, s, planner, g.Category, g.Target, g.By); err != nil {
						return err
					}
				}
				return nil
			}

			if err := checkAmount("--target", target); err != nil {
				return err
			}
			if target == 0 {
				return fmt.Errorf("--target must be greater than zero")
			}
			return runSavings(cmd, s, planner, args[0], target, by)
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "amount to save")
	cmd.Flags().StringVar(&by, "by", "", "target date (YYYY-MM-DD)")

	return cmd
}

func runSavings(cmd *cobra.Command, s *session, planner *savings.Planner, id string, target float64, by string) error {
	cat, ok := s.catalog.Get(id)
	if !ok {
		return fmt.Errorf("unknown category %q", id)
	}
	date, err := time.ParseInLocation(dateFormat, by, time.Local)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", by, err)
	}

	a := planner.Analyze(cat, target, date, s.income)
	s.log.WithFields(logrus.Fields{
		"category": id,
		"months":   a.MonthsToGoal,
		"can_save": a.CanSave,
	}).Debug("savings analysis")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.Summary)
	fmt.Fprintf(out, "  Required:    %s/month for %d months\n", cents(a.RequiredMonthlySavings), a.MonthsToGoal)
	fmt.Fprintf(out, "  Recommended: %s/month\n", cents(a.RecommendedMonthlySavings))
	if a.MonthsAtRecommended > 0 {
		fmt.Fprintf(out, "  At the recommended rate you reach it in %d months.\n", a.MonthsAtRecommended)
	}
	for _, tip := range a.Recommendations {
		fmt.Fprintf(out, "  - %s\n", tip)
	}
	return nil
}
