package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/config"
)

func newAssumeCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assume <category> <assumption> <value>",
		Short: "Change a category assumption and save it to the profile",
		Example: `  deeppockets assume home "Interest Rate" 6.25
  deeppockets assume car "Loan Term" 6`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, opts)
			if err != nil {
				return err
			}
			return runAssume(cmd, s, args[0], args[1], args[2])
		},
	}
	return cmd
}

func runAssume(cmd *cobra.Command, s *session, id, title, text string) error {
	cat, ok := s.catalog.Get(id)
	if !ok {
		return fmt.Errorf("unknown category %q", id)
	}
	a, ok := cat.Assumption(title)
	if !ok {
		return fmt.Errorf("category %q has no assumption %q", id, title)
	}

	out := cmd.OutOrStdout()
	if s.catalog.EditAssumption(id, title, text) {
		s.cfg.SetAssumption(id, title, text)
	} else {
		// The catalog fell back to the default; drop any saved override too.
		delete(s.cfg.Assumptions[id], title)
		if len(s.cfg.Assumptions[id]) == 0 {
			delete(s.cfg.Assumptions, id)
		}
		fmt.Fprintf(out, "%q is not a valid value, using default %g\n", text, a.Default)
	}

	s.engine.RecomputeOne(s.catalog, id, s.income)
	updated, _ := s.catalog.Get(id)
	applied, _ := updated.Assumption(title)

	if err := config.Save(s.path, s.cfg); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	fmt.Fprintf(out, "%s %s = %g\n", updated.Name, title, applied.Value)
	fmt.Fprintf(out, "Recommended: %s\n", wholeDollars(updated.RecommendedAmount))
	return nil
}
