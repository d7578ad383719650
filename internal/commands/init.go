package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deeppockets-dev/deeppockets/internal/config"
)

func newInitCommand(_ *rootOptions) *cobra.Command {
	var name string
	var income float64
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a deeppockets.yaml profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			path, err := runInit(absDir, name, income, force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile at %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name")
	cmd.Flags().Float64Var(&income, "monthly-income", 0, "gross monthly income")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing profile")

	return cmd
}

func runInit(dir, name string, income float64, force bool) (string, error) {
	if err := checkAmount("monthly income", income); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("profile %s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default(name, income)
	if err := config.Save(path, cfg); err != nil {
		return "", fmt.Errorf("writing profile: %w", err)
	}
	return path, nil
}
