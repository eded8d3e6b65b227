package admin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortTitle(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "Film noir", width: 25, want: "Film noir"},
		{name: "exactly width", in: strings.Repeat("a", 25), width: 25, want: strings.Repeat("a", 25)},
		{name: "too long", in: strings.Repeat("abcdefghij", 3), width: 25, want: "abcdefghijabcde..."},
		{name: "wide runes", in: strings.Repeat("映画", 7), width: 25, want: "映画映画映画映..."},
		{name: "tiny width", in: "abcdef", width: 4, want: "a..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortTitle(tt.in, tt.width))
		})
	}
}
