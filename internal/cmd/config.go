package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/kikaportals/internal/config"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	c.AddCommand(newConfigInitCmd(), newConfigShowCmd())
	return c
}

func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	if path := os.Getenv("KIKAPORTALS_CONFIG"); path != "" {
		return path
	}
	return config.DefaultPath()
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configPath(cmd)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			cfg, err := config.Defaults()
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	c.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return c
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog.dsn       = %s\n", cfg.Catalog.DSN)
			fmt.Fprintf(out, "catalog.seed_file = %s\n", cfg.Catalog.SeedFile)
			fmt.Fprintf(out, "ui.brand          = %s\n", cfg.UI.Brand)
			fmt.Fprintf(out, "ui.alt_screen     = %t\n", cfg.UI.AltScreen)
			fmt.Fprintf(out, "ui.resume_dir     = %s\n", cfg.UI.ResumeDir)
			fmt.Fprintf(out, "log.path          = %s\n", cfg.Log.Path)
			fmt.Fprintf(out, "log.level         = %s\n", cfg.Log.Level)
			return nil
		},
	}
}
