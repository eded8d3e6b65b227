package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text",
			input:    "Hello world",
			expected: "<p>Hello world</p>\n",
		},
		{
			name:     "bold text",
			input:    "**bold**",
			expected: "<p><strong>bold</strong></p>\n",
		},
		{
			name:     "italic text",
			input:    "*italic*",
			expected: "<p><em>italic</em></p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkdownToHTML(tt.input))
		})
	}
}

func TestMarkdownToText(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		assert.Equal(t, "", MarkdownToText("  \n"))
	})

	t.Run("no markup left", func(t *testing.T) {
		got := MarkdownToText("Shadows and *femmes fatales*.\n\n- Laura\n- Gilda")
		assert.Contains(t, got, "Shadows and")
		assert.Contains(t, got, "femmes fatales")
		assert.Contains(t, got, "Laura")
		assert.Contains(t, got, "Gilda")
		assert.NotContains(t, got, "<")
	})

	t.Run("scripts dropped", func(t *testing.T) {
		got := MarkdownToText("Before\n\n<script>alert(1)</script>\n\nAfter")
		assert.Contains(t, got, "Before")
		assert.Contains(t, got, "After")
		assert.NotContains(t, got, "alert")
	})
}
