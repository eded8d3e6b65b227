package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule(t *testing.T) {
	assert.Equal(t, "", Rule(""))
	assert.Equal(t, "─────", Rule("Films"))
	assert.Equal(t, "──────", Rule("Fideuà"))
}
