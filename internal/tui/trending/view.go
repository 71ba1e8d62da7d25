package trending

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Waddenn/trending/internal/tmdb"
	"github.com/Waddenn/trending/internal/tui/shared"
)

const (
	cardWidth      = 26 // outer width, border included
	cardHeight     = 5  // border, title, two snippet lines
	maxColumns     = 6
	modalMinWidth  = 24
	modalMaxWidth  = 72
	zoneModal      = "trending_modal"
	zoneClose      = "trending_modal_close"
	cardZonePrefix = "trending_card_"
)

var categoryLabels = map[string]string{
	"movie": "movies",
	"tv":    "series",
}

func cardZone(i int) string {
	return fmt.Sprintf("%s%d", cardZonePrefix, i)
}

// columns returns how many cards fit side by side, capped at maxColumns.
func columns(width int) int {
	return shared.Clamp(width/cardWidth, 1, maxColumns)
}

func (m *Model) heading() string {
	label, ok := categoryLabels[m.category]
	if !ok {
		label = m.category
	}
	return cases.Title(language.English).String("trending " + label + " this week")
}

func (m *Model) View() string {
	availableWidth := shared.ClampMin(m.width, 40)
	availableHeight := shared.ClampMin(m.height, 10)

	headerText := "🔥 " + m.heading()
	if m.loading {
		headerText += "  " + m.spinner.View()
	}
	header := shared.RenderHeader(headerText, availableWidth)

	var footerLeft, helpKeys string
	switch m.Mode() {
	case ModeLoading:
		footerLeft = "Loading…"
		helpKeys = "[Q] Quit"
	case ModeGrid:
		footerLeft = fmt.Sprintf("%d titles", len(m.items))
		helpKeys = "[←↑↓→] Move • [Enter] Details • [Q] Quit"
	case ModeDetail:
		footerLeft = m.selected.Title
		helpKeys = "[Esc] Close"
	}
	footer := shared.RenderFooter(footerLeft, helpKeys, availableWidth)

	var errLine string
	if m.err != nil {
		errLine = shared.StyleError.
			Width(availableWidth).
			Render("Error fetching data: " + m.err.Error())
	}

	bodyHeight := availableHeight - lipgloss.Height(header) - lipgloss.Height(footer)
	if errLine != "" {
		bodyHeight -= lipgloss.Height(errLine)
	}
	bodyHeight = shared.ClampMin(bodyHeight, 3)

	var body string
	switch m.Mode() {
	case ModeLoading:
		body = m.renderSkeletons(availableWidth)
	case ModeGrid:
		body = m.renderGrid(availableWidth, bodyHeight)
	case ModeDetail:
		body = m.renderModal(availableWidth, bodyHeight)
	}
	body = lipgloss.NewStyle().
		Width(availableWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(body)

	parts := []string{header, body}
	if errLine != "" {
		parts = append(parts, errLine)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderSkeletons(width int) string {
	inner := cardWidth - 4
	block := shared.StyleSkeleton.Render(strings.Repeat("░", inner))
	line := shared.StyleSkeleton.Render(strings.Repeat("░", inner*2/3))

	cards := make([]string, 0, SkeletonCount)
	for i := 0; i < SkeletonCount; i++ {
		content := lipgloss.JoinVertical(lipgloss.Left, block, block, line)
		cards = append(cards, shared.StyleCard.Width(cardWidth-2).Render(content))
	}
	return layoutCards(cards, columns(width))
}

// visibleRows returns the [start, end) row window that keeps the cursor's row
// on screen when the grid is taller than height.
func (m *Model) visibleRows(cols, height int) (int, int) {
	rows := (len(m.items) + cols - 1) / cols
	fit := shared.ClampMin(height/cardHeight, 1)
	if rows <= fit {
		return 0, rows
	}

	row := m.cursor / cols
	switch {
	case row < fit/2:
		return 0, fit
	case row >= rows-fit/2:
		return rows - fit, rows
	default:
		start := row - fit/2
		return start, start + fit
	}
}

func (m *Model) renderGrid(width, height int) string {
	if len(m.items) == 0 {
		if m.err != nil {
			return ""
		}
		return shared.StyleDim.Render("\n  Nothing trending right now.")
	}

	cols := columns(width)
	startRow, endRow := m.visibleRows(cols, height)
	first := startRow * cols
	last := shared.Clamp(endRow*cols, first, len(m.items))

	inner := cardWidth - 4
	cards := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		item := m.items[i]
		title := lipgloss.NewStyle().Bold(true).Render(shared.Truncate(item.Title, inner))
		overview := overviewText(item)
		snippet := lipgloss.NewStyle().
			Width(inner).
			Height(2).
			MaxHeight(2).
			Foreground(shared.ColorLightGrey).
			Render(overview)

		style := shared.StyleCard
		if i == m.cursor {
			style = shared.StyleCardActive
		}
		card := style.Width(cardWidth - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, snippet))
		cards = append(cards, zone.Mark(cardZone(i), card))
	}
	return layoutCards(cards, cols)
}

func overviewText(item tmdb.Item) string {
	if shared.IsBlankVisible(item.Overview) {
		return "No overview."
	}
	return item.Overview
}

func layoutCards(cards []string, cols int) string {
	rows := lo.Map(lo.Chunk(cards, cols), func(row []string, _ int) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, row...)
	})
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// modalWidth eases from modalMinWidth to the full width as the reveal spring settles.
func (m *Model) modalWidth(width int) int {
	full := shared.Clamp(width-4, modalMinWidth, modalMaxWidth)
	reveal := m.reveal
	if reveal > 1 {
		reveal = 1
	}
	return modalMinWidth + int(reveal*float64(full-modalMinWidth))
}

func (m *Model) renderModal(width, height int) string {
	item := m.selected
	w := m.modalWidth(width)
	inner := w - 6 // border + padding

	names := lo.Map(m.cast, func(c tmdb.CastMember, _ int) string { return c.Name })

	layout := []string{
		shared.StyleHighlight.Render(item.Title),
	}
	if poster := tmdb.PosterURL(item.PosterPath); poster != "" {
		layout = append(layout, shared.StyleDim.Render(shared.Truncate(poster, inner)))
	}
	layout = append(layout,
		"",
		lipgloss.NewStyle().Width(inner).Render(
			shared.StyleMetadataKey.Render("Overview:")+" "+shared.StyleMetadataValue.Render(overviewText(*item))),
		"",
		lipgloss.NewStyle().Width(inner).Render(
			shared.StyleMetadataKey.Render("Cast:")+" "+shared.StyleMetadataValue.Render(strings.Join(names, ", "))),
		"",
		zone.Mark(zoneClose, shared.StyleButton.Render("Close")),
	)

	modal := shared.StyleModal.Width(w - 2).Render(lipgloss.JoinVertical(lipgloss.Left, layout...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, zone.Mark(zoneModal, modal))
}
