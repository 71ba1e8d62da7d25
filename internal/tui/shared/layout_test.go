package shared

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, ClampMin(3, 5))
	assert.Equal(t, 7, ClampMin(7, 5))
	assert.Equal(t, 1, Clamp(0, 1, 6))
	assert.Equal(t, 6, Clamp(9, 1, 6))
	assert.Equal(t, 4, Clamp(4, 1, 6))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "", Truncate("anything", 0))

	got := Truncate("The Lord of the Rings", 8)
	assert.Equal(t, 8, lipgloss.Width(got))
	assert.Contains(t, got, "…")
}

func TestRenderFooter_FitsWidth(t *testing.T) {
	footer := RenderFooter("12 titles", "[enter] details • [q] quit", 30)
	assert.Equal(t, 30, lipgloss.Width(footer))
	assert.Equal(t, 1, lipgloss.Height(footer))
}

func TestIsBlankVisible(t *testing.T) {
	assert.True(t, IsBlankVisible("   "))
	assert.True(t, IsBlankVisible(StyleDim.Render(" ")))
	assert.False(t, IsBlankVisible("x"))
}
