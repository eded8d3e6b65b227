package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	UILine = "line"
	UITUI  = "tui"
)

type AppConfig struct {
	RuntimePath string `env:"TUSKMENU_RUNTIME_PATH" envDefault:".tuskmenu"`
	// line (readline prompts) or tui (bubbletea pickers)
	UI string `env:"TUSKMENU_UI" envDefault:"line"`

	// Seed the demo catalog when the database is empty
	Seed bool `env:"TUSKMENU_SEED" envDefault:"true"`

	// Collection names longer than this are shortened in menu titles
	TitleWidth int `env:"TUSKMENU_TITLE_WIDTH" envDefault:"25"`

	Debug     bool `env:"TUSKMENU_DEBUG" envDefault:"false"`
	LogStderr bool `env:"TUSKMENU_LOG_STDERR" envDefault:"false"`
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) Validate() error {
	switch c.UI {
	case UILine, UITUI:
	default:
		return fmt.Errorf("unknown UI %q, want %q or %q", c.UI, UILine, UITUI)
	}
	if c.TitleWidth < 4 {
		return fmt.Errorf("title width %d is too small", c.TitleWidth)
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "tuskmenu.db")
}

func (c AppConfig) GetLogPath() string {
	return filepath.Join(c.RuntimePath, "tuskmenu.log")
}

func (c AppConfig) GetHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}
