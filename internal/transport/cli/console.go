package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sandevgo/tuskmenu/internal/service/ui"
	"github.com/sandevgo/tuskmenu/pkg/log"
	"github.com/sandevgo/tuskmenu/pkg/menu"
)

const (
	promptSymbol = "> "
	clearScreen  = "\033[H\033[2J"
)

var ErrInputClosed = errors.New("input closed")

// Console is a line based menu.Terminal and core.Forms.
type Console struct {
	in  LineReader
	out io.Writer
}

func NewConsole(in LineReader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

func (c *Console) Title(title string, clear bool) {
	if clear {
		fmt.Fprint(c.out, clearScreen)
	}
	fmt.Fprintln(c.out, ui.TitleStyle.Render(title))
	fmt.Fprintln(c.out, ui.DescStyle.Render(ui.Rule(title)))
}

func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) Select(ctx context.Context, req menu.SelectRequest) (int, error) {
	if req.Refresh && req.Title == "" {
		fmt.Fprint(c.out, clearScreen)
	}
	if req.Title != "" {
		c.Title(req.Title, req.Refresh)
	}
	if req.Description != "" {
		fmt.Fprintln(c.out, ui.DescStyle.Render(req.Description))
		fmt.Fprintln(c.out)
	}

	for i, opt := range req.Options {
		if i > 0 && req.Separator != "" {
			fmt.Fprintln(c.out, ui.ItemStyle.Render(req.Separator))
		}
		fmt.Fprintln(c.out, ui.ItemStyle.Render(fmt.Sprintf("%d. %s", i+1, opt.Name)))
	}
	fmt.Fprintln(c.out, ui.ItemStyle.Render("0. Back"))

	for {
		line, err := c.readLine(ctx, promptSymbol)
		if err != nil {
			if isClosed(err) {
				return menu.Back, nil
			}
			return menu.Back, err
		}
		if line == "" {
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n > len(req.Options) {
			c.complain("Invalid option %q", line)
			continue
		}
		if n == menu.Back {
			return menu.Back, nil
		}

		log.FromCtx(ctx).Debug().Str("option", req.Options[n-1].Name).Msg("option selected")
		if err := req.Options[n-1].Run(ctx); err != nil {
			return n, err
		}
		return n, nil
	}
}

func (c *Console) Number(ctx context.Context, label string, valid func(int) bool, allowEmpty bool) (int, bool, error) {
	for {
		line, ok, err := c.field(ctx, label, allowEmpty)
		if err != nil || !ok {
			return 0, false, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			c.complain("%q is not a number", line)
			continue
		}
		if valid != nil && !valid(n) {
			c.complain("%d is not a valid value", n)
			continue
		}
		return n, true, nil
	}
}

func (c *Console) Text(ctx context.Context, label string, valid func(string) bool, allowEmpty bool) (string, bool, error) {
	for {
		line, ok, err := c.field(ctx, label, allowEmpty)
		if err != nil || !ok {
			return "", false, err
		}
		if valid != nil && !valid(line) {
			c.complain("%q is not a valid value", line)
			continue
		}
		return line, true, nil
	}
}

func (c *Console) Confirm(ctx context.Context, label string) (bool, error) {
	for {
		line, err := c.readLine(ctx, label+" [y/N]: ")
		if err != nil {
			if isClosed(err) {
				return false, nil
			}
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		c.complain("Answer y or n")
	}
}

func (c *Console) Pause(ctx context.Context) error {
	fmt.Fprintln(c.out)
	_, err := c.readLine(ctx, "Press Enter to continue...")
	if err != nil && !isClosed(err) {
		return err
	}
	return nil
}

// field reads one non-validated value. ok is false when an allowed empty
// answer was given or input was closed on an optional field.
func (c *Console) field(ctx context.Context, label string, allowEmpty bool) (string, bool, error) {
	prompt := label + ": "
	if allowEmpty {
		prompt = label + " (empty to cancel): "
	}
	for {
		line, err := c.readLine(ctx, prompt)
		if err != nil {
			if isClosed(err) {
				if allowEmpty {
					return "", false, nil
				}
				return "", false, fmt.Errorf("%s: %w", label, ErrInputClosed)
			}
			return "", false, err
		}
		if line != "" {
			return line, true, nil
		}
		if allowEmpty {
			return "", false, nil
		}
		c.complain("A value is required")
	}
}

func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	c.in.SetPrompt(prompt)
	line, err := c.in.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) complain(format string, args ...any) {
	fmt.Fprintln(c.out, ui.ErrorStyle.Render(fmt.Sprintf(format, args...)))
}
