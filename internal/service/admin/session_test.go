package admin

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/sandevgo/tuskmenu/internal/transport/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLines plays back typed lines, then reports end of input.
type scriptedLines struct {
	lines   []string
	prompts []string
}

func (s *scriptedLines) SetPrompt(prompt string) { s.prompts = append(s.prompts, prompt) }

func (s *scriptedLines) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestSession_LineConsole(t *testing.T) {
	ctx := context.Background()
	in := &scriptedLines{lines: []string{
		// not offered
		"7",
		// add a film, then find it
		"2", "Solaris", "1972",
		"3", "solaris", "",
		// switch to collections and add it to Film noir
		"4",
		"3", "1",
		"2", "7",
		"0",
	}}
	var out bytes.Buffer

	deps := newTestDeps(t, nil, true)
	deps.Console = cli.NewConsole(in, &out)

	require.NoError(t, NewRootAdmin(deps).Run(ctx))
	assert.Empty(t, in.lines)

	screen := out.String()
	assert.Contains(t, screen, `Invalid option "7"`)
	assert.Contains(t, screen, "Catalog: 6 films · Collections: 1")
	assert.Contains(t, screen, "Catalog: 7 films · Collections: 1")
	assert.Contains(t, screen, "TuskMenu - Search catalog")
	assert.Contains(t, screen, "#7 Solaris (1972)")
	assert.Contains(t, screen, "Collections view")
	assert.Contains(t, screen, "Manage collection | Film noir")
	assert.Contains(t, screen, "Film noir (4 films)")

	assert.Contains(t, in.prompts, "Title (empty to cancel): ")
	assert.Contains(t, in.prompts, "Film ID (empty to cancel): ")

	c, err := deps.Collections.GetCollection(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())
	assert.Equal(t, "Solaris", c.Films[3].Title)
}
