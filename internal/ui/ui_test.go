package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBarBounds(t *testing.T) {
	full := ProgressBar(10, 10, 10)
	assert.Contains(t, full, "100%")
	assert.NotContains(t, full, "░")

	empty := ProgressBar(0, 10, 10)
	assert.Contains(t, empty, "  0%")
	assert.NotContains(t, empty, "█")

	// zero total never divides by zero
	assert.Contains(t, ProgressBar(0, 0, 10), "0%")
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "hello", stripANSI("\033[32mhello\033[0m"))
	assert.Equal(t, "plain", stripANSI("plain"))
}
