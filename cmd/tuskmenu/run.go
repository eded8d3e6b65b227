package main

import (
	"github.com/sandevgo/tuskmenu/pkg/log"
	"github.com/sandevgo/tuskmenu/pkg/srv"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive session (default)",
	Long:  `Opens the catalog database and shows the main menu until you go back from it.`,
	RunE:  runSession,

	SilenceUsage: true,
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, flushLog := setupLogger(cmd.Context(), cfg)
	defer flushLog()

	logger := log.FromCtx(ctx)
	logger.Info().Str("runtime", cfg.GetRuntimePath()).Msg("starting tuskmenu")

	services, err := NewServices(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize services")
		return err
	}

	if err := srv.Run(ctx, services); err != nil {
		logger.Error().Err(err).Msg("session ended with error")
		return err
	}

	logger.Info().Msg("tuskmenu has been shut down gracefully")
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
