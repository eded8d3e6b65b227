package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/tuskmenu/internal/config"
	"github.com/sandevgo/tuskmenu/internal/service/admin"
	"github.com/sandevgo/tuskmenu/internal/storage/sqlite"
	"github.com/sandevgo/tuskmenu/internal/transport/cli"
	"github.com/sandevgo/tuskmenu/internal/transport/tui"
	"github.com/sandevgo/tuskmenu/pkg/log"
	"github.com/sandevgo/tuskmenu/pkg/srv"
)

// loadConfig reads <runtime>/.env when present and parses the environment.
func loadConfig() (*config.AppConfig, error) {
	envFile := config.GetEnvPath()
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	return config.ParseAppConfig()
}

// NewServices wires storage, the console and the root menu. The root menu is
// the foreground task; everything else is closed once it returns.
func NewServices(ctx context.Context, cfg *config.AppConfig) ([]srv.Service, error) {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// 1. Storage
	db, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 2. Console
	console, closeConsole, err := initConsole(cfg)
	if err != nil {
		srv.ShutdownServices(ctx, services)
		return nil, err
	}
	services = append(services, srv.NewCleanup(closeConsole))

	// 3. Root menu
	root := admin.NewRootAdmin(admin.Deps{
		Console:     console,
		Films:       sqlite.NewFilmsRepo(db),
		Collections: sqlite.NewCollectionsRepo(db),
		Dishes:      sqlite.NewDishesRepo(db),
		TitleWidth:  cfg.TitleWidth,
	})
	services = append(services, srv.NewTask(root.Run))

	logger.Debug().Str("ui", cfg.UI).Str("db", cfg.GetDatabasePath()).Msg("services ready")
	return services, nil
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, err
	}

	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, err
	}

	if cfg.Seed {
		seeded, err := sqlite.Seed(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if seeded {
			log.FromCtx(ctx).Info().Msg("loaded demo catalog")
		}
	}
	return db, nil
}

func initConsole(cfg *config.AppConfig) (admin.Console, func() error, error) {
	switch cfg.UI {
	case config.UITUI:
		return tui.New(os.Stdin, os.Stdout), func() error { return nil }, nil
	default:
		rl, err := cli.NewReadLine(cfg)
		if err != nil {
			return nil, nil, err
		}
		return rl, rl.Close, nil
	}
}
