package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type named struct{ name string }

func TestTitleSource_Resolve(t *testing.T) {
	assert.Equal(t, "Main", Static("Main").Resolve())
	assert.Equal(t, "", TitleSource{}.Resolve())

	n := &named{name: "Films"}
	src := Dynamic(func(n *named) string { return "Manage: " + n.name }, n)
	assert.Equal(t, "Manage: Films", src.Resolve())

	n.name = "Series"
	assert.Equal(t, "Manage: Series", src.Resolve())
}

func TestTitleSource_CallerSuppliedTruncation(t *testing.T) {
	shorten := func(s string) string {
		if len(s) <= 25 {
			return s
		}
		return s[:15] + "..."
	}

	long := strings.Repeat("abcdefghij", 3)
	got := Dynamic(shorten, long).Resolve()
	assert.Equal(t, "abcdefghijabcde...", got)
	assert.Equal(t, long, Static(long).Resolve())
}

func TestDynamic_PanicsWithoutArgument(t *testing.T) {
	assert.Panics(t, func() {
		Dynamic(func(n *named) string { return n.name }, nil)
	})
	assert.Panics(t, func() {
		Dynamic[string](nil, "x")
	})
	assert.NotPanics(t, func() {
		Dynamic(func(s string) string { return s }, "")
	})
}
