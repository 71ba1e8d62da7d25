package trending

import (
	"math"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/Waddenn/trending/internal/tmdb"
	"github.com/Waddenn/trending/internal/tui/shared"
)

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cursor = shared.Clamp(m.cursor, 0, shared.ClampMin(len(m.items)-1, 0))
		return nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case MsgTrendingLoaded:
		return m.handleTrendingLoaded(msg)

	case MsgLoadingDone:
		m.loading = false
		m.logger.Debug().Int("items", len(m.items)).Msg("loading finished")
		return nil

	case MsgCreditsLoaded:
		return m.handleCreditsLoaded(msg)

	case MsgAnimate:
		return m.handleAnimate()

	case spinner.TickMsg:
		// Stop ticking once the skeletons are gone.
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

// Select makes item the current selection and requests its cast.
func (m *Model) Select(item tmdb.Item) tea.Cmd {
	m.selected = &item
	m.generation++
	m.reveal, m.velocity = 0, 0
	m.logger.Debug().Int("id", item.ID).Uint64("generation", m.generation).Msg("item selected")
	cmds := []tea.Cmd{fetchCredits(m.ctx, m.fetcher, m.category, m.generation, item.ID)}
	// A running tick chain picks up the reset reveal.
	if !m.animating {
		m.animating = true
		cmds = append(cmds, animate())
	}
	return tea.Batch(cmds...)
}

// Close clears the selection and cast. A credits request still in flight is
// not cancelled, its result is dropped on arrival.
func (m *Model) Close() {
	m.selected = nil
	m.cast = nil
	m.generation++
}

func (m *Model) handleTrendingLoaded(msg MsgTrendingLoaded) tea.Cmd {
	if msg.Err != nil {
		m.err = msg.Err
		m.logger.Error().
			Err(msg.Err).
			Str("op", "trending").
			Str("category", m.category).
			Msg("Error occurred while fetching trending list")
	} else {
		m.items = msg.Items
		m.cursor = 0
		m.logger.Info().Int("items", len(m.items)).Msg("trending list loaded")
	}
	return waitLoading(m.delay)
}

func (m *Model) handleCreditsLoaded(msg MsgCreditsLoaded) tea.Cmd {
	if msg.Generation != m.generation {
		m.logger.Debug().
			Int("id", msg.ItemID).
			Uint64("generation", msg.Generation).
			Uint64("current", m.generation).
			Msg("discarding stale credits")
		return nil
	}
	if msg.Err != nil {
		// The previous cast list is left as-is.
		m.err = msg.Err
		m.logger.Error().
			Err(msg.Err).
			Str("op", "credits").
			Str("category", m.category).
			Int("id", msg.ItemID).
			Msg("Error occurred while fetching credits")
		return nil
	}
	m.cast = msg.Cast
	return nil
}

func (m *Model) handleAnimate() tea.Cmd {
	if m.selected == nil {
		m.animating = false
		return nil
	}
	m.reveal, m.velocity = m.spring.Update(m.reveal, m.velocity, 1.0)
	if math.Abs(1.0-m.reveal) < 0.01 && math.Abs(m.velocity) < 0.01 {
		m.reveal, m.velocity = 1, 0
		m.animating = false
		return nil
	}
	return animate()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch m.Mode() {
	case ModeDetail:
		switch msg.String() {
		case "esc", "enter", "backspace", "q":
			m.Close()
		}
		return nil

	case ModeGrid:
		count := len(m.items)
		if count == 0 {
			return nil
		}
		cols := columns(m.width)
		switch msg.String() {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < count-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor-cols >= 0 {
				m.cursor -= cols
			}
		case "down", "j":
			if m.cursor+cols < count {
				m.cursor += cols
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = count - 1
		case "enter", " ":
			return m.Select(m.items[m.cursor])
		}
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease {
		return nil
	}

	switch m.Mode() {
	case ModeDetail:
		if zone.Get(zoneClose).InBounds(msg) || !zone.Get(zoneModal).InBounds(msg) {
			m.Close()
		}
	case ModeGrid:
		for i, item := range m.items {
			if zone.Get(cardZone(i)).InBounds(msg) {
				m.cursor = i
				return m.Select(item)
			}
		}
	}
	return nil
}
