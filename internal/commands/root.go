package commands

import (
	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/buildinfo"
	"github.com/deeppockets-dev/deeppockets/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	income     float64
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "deeppockets",
		Short:   "Budget recommendations from your monthly income",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.LoadEnv(".env")
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "profile path (default $DEEPPOCKETS_CONFIG or ./deeppockets.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.Float64Var(&opts.income, "income", 0, "monthly income, overrides the profile")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newCategoriesCommand(opts))
	rootCmd.AddCommand(newRecommendCommand(opts))
	rootCmd.AddCommand(newAssumeCommand(opts))
	rootCmd.AddCommand(newSavingsCommand(opts))
	rootCmd.AddCommand(newBudgetCommand(opts))

	return rootCmd
}
