package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskmenu/internal/config"
	"github.com/sandevgo/tuskmenu/internal/service/installer"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:     "setup",
	Aliases: []string{"install"},
	Short:   "Create the runtime directory and its .env with a short wizard",
	RunE: func(cmd *cobra.Command, args []string) error {
		runtimePath := config.GetRuntimePath()

		// run wizard (includes save step)
		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		envPath := config.GetEnvPath()
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
		cfg, err := config.ParseAppConfig()
		if err != nil {
			return err
		}

		ctx, flushLog := setupLogger(cmd.Context(), cfg)
		defer flushLog()

		db, err := initStorage(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s. Run 'tuskmenu' to start.\n", runtimePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
