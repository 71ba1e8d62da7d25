package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ClampMin returns min if value is lower, otherwise value.
func ClampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}

// Clamp bounds value to [min, max].
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Truncate shortens s to at most width visible cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// RenderHeader renders a standard header using the shared header style.
func RenderHeader(content string, width int) string {
	return StyleHeader.Width(ClampMin(width, 20)).Render(content)
}

// RenderFooter renders a single-line footer with left content and
// right-aligned right content. Left is truncated first when space runs out.
func RenderFooter(left, right string, width int) string {
	safeWidth := ClampMin(width, 20)
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)

	inner := safeWidth - 2
	if lipgloss.Width(right) > inner {
		right = Truncate(right, inner)
	}
	available := inner - lipgloss.Width(right)
	if right != "" {
		available -= 2
	}
	if available < 1 {
		left = ""
	} else if lipgloss.Width(left) > available {
		left = Truncate(left, available)
	}

	content := left
	if right != "" {
		space := inner - lipgloss.Width(left) - lipgloss.Width(right)
		if space < 1 {
			space = 1
		}
		content = left + strings.Repeat(" ", space) + right
	}
	return StyleFooter.Width(safeWidth).MaxHeight(1).Render(content)
}

// IsBlankVisible returns true if s is empty or only whitespace after stripping ANSI codes.
func IsBlankVisible(s string) bool {
	return strings.TrimSpace(ansi.Strip(s)) == ""
}
