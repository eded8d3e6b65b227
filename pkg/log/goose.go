package log

import (
	"context"

	"github.com/rs/zerolog"
)

// MigrationLogger routes goose output into the context logger.
type MigrationLogger struct {
	logger *zerolog.Logger
}

func (g *MigrationLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Fatal().Str("component", "migrations").Msgf(format, v...)
}

func (g *MigrationLogger) Printf(format string, v ...interface{}) {
	g.logger.Debug().Str("component", "migrations").Msgf(format, v...)
}

func NewMigrationLogger(ctx context.Context) *MigrationLogger {
	return &MigrationLogger{
		logger: FromCtx(ctx),
	}
}
