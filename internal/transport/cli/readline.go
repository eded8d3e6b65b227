package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/sandevgo/tuskmenu/internal/config"
)

// LineReader is the part of *readline.Instance the console needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type ReadLine struct {
	*Console
	rl *readline.Instance
}

func NewReadLine(cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptSymbol,
		HistoryFile:     cfg.GetHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		Console: NewConsole(rl, rl.Stdout()),
		rl:      rl,
	}, nil
}

func (r *ReadLine) Close() error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// isClosed reports whether the user ended input with Ctrl+C or Ctrl+D.
func isClosed(err error) bool {
	return err == readline.ErrInterrupt || err == io.EOF
}
