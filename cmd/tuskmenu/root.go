package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sandevgo/tuskmenu/internal/config"
	"github.com/sandevgo/tuskmenu/internal/service/ui"
	"github.com/sandevgo/tuskmenu/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "tuskmenu",
	Short: "TuskMenu — console administration of films, collections and dishes",
	Long:  `TuskMenu is a menu-driven console for a small film catalog and a dish list.`,
	RunE:  runSession,

	SilenceUsage: true,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

// setupLogger writes to the log file in the runtime directory, leaving the
// terminal to the menu. With LogStderr set it writes to stderr instead.
func setupLogger(ctx context.Context, cfg *config.AppConfig) (context.Context, func()) {
	isDebug := debug || cfg.Debug
	if cfg.LogStderr {
		return log.NewContextWithLogger(ctx, isDebug, os.Stderr)
	}

	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create runtime directory, logging to stderr: %v\n", err)
		return log.NewContextWithLogger(ctx, isDebug, os.Stderr)
	}

	f, err := log.OpenFile(cfg.GetLogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file, logging to stderr: %v\n", err)
		return log.NewContextWithLogger(ctx, isDebug, os.Stderr)
	}

	ctx, flush := log.NewContextWithLogger(ctx, isDebug, f)
	return ctx, func() {
		flush()
		_ = f.Close()
	}
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
