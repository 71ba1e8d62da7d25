package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/Waddenn/trending/internal/tui/trending"
)

type MainModel struct {
	trending *trending.Model
	logger   zerolog.Logger

	width  int
	height int

	quitting bool
}

func NewModel(tm *trending.Model, logger zerolog.Logger) *MainModel {
	return &MainModel{
		trending: tm,
		logger:   logger,
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return m.trending.Init()
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keys
		switch msg.String() {
		case "ctrl+c":
			return m, m.quit(msg.String())
		case "q":
			// In the modal, q closes it instead
			if m.trending.Mode() != trending.ModeDetail {
				return m, m.quit(msg.String())
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, m.trending.Update(msg)
}

func (m *MainModel) quit(key string) tea.Cmd {
	m.quitting = true
	m.logger.Info().Str("key", key).Msg("quit requested")
	return tea.Quit
}

func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}
	return zone.Scan(lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, m.trending.View()))
}

// Start runs the program until the user quits or ctx is cancelled.
func Start(ctx context.Context, f trending.Fetcher, opts trending.Options) error {
	tm := trending.NewModel(ctx, f, opts)
	m := NewModel(&tm, opts.Logger)
	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
