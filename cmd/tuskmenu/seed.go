package main

import (
	"fmt"

	"github.com/sandevgo/tuskmenu/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo catalog into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, flushLog := setupLogger(cmd.Context(), cfg)
		defer flushLog()

		// Seeding is explicit here regardless of TUSKMENU_SEED
		cfg.Seed = false
		db, err := initStorage(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		seeded, err := sqlite.Seed(ctx, db)
		if err != nil {
			return err
		}
		if !seeded {
			fmt.Fprintln(cmd.OutOrStdout(), "Database already has films, nothing to do.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Demo catalog loaded into %s\n", cfg.GetDatabasePath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
