package trending

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/rs/zerolog"

	"github.com/Waddenn/trending/internal/tmdb"
	"github.com/Waddenn/trending/internal/tui/shared"
)

const (
	MaxItems      = 12
	MaxCast       = 10
	SkeletonCount = 12
)

// Fetcher is the provider the controllers talk to.
type Fetcher interface {
	Trending(ctx context.Context, category string) ([]tmdb.Item, error)
	Credits(ctx context.Context, category string, id int) ([]tmdb.CastMember, error)
}

type Mode int

const (
	ModeLoading Mode = iota
	ModeGrid
	ModeDetail
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeGrid:
		return "Grid"
	case ModeDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

type Options struct {
	Category     string
	LoadingDelay time.Duration
	Logger       zerolog.Logger
}

type Model struct {
	ctx      context.Context
	fetcher  Fetcher
	logger   zerolog.Logger
	category string
	delay    time.Duration

	width  int
	height int

	// View state
	items    []tmdb.Item
	selected *tmdb.Item
	cast     []tmdb.CastMember
	loading  bool
	err      error

	started bool
	// generation is bumped on every select and close; credits results
	// tagged with an older value are dropped.
	generation uint64

	cursor  int
	spinner spinner.Model

	// Modal reveal; animating is set while a tick chain is running
	spring    harmonica.Spring
	reveal    float64
	velocity  float64
	animating bool
}

func NewModel(ctx context.Context, f Fetcher, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = shared.StyleHighlight

	return Model{
		ctx:      ctx,
		fetcher:  f,
		logger:   opts.Logger,
		category: opts.Category,
		delay:    opts.LoadingDelay,
		width:    80, // Sensible defaults
		height:   24,
		loading:  true,
		spinner:  s,
		spring:   harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
	}
}

// Init starts the trending fetch. It only does so once per model.
func (m *Model) Init() tea.Cmd {
	if m.started {
		return nil
	}
	m.started = true
	m.logger.Info().Str("category", m.category).Msg("fetching trending list")
	return tea.Batch(m.spinner.Tick, fetchTrending(m.ctx, m.fetcher, m.category))
}

func (m *Model) Mode() Mode {
	switch {
	case m.loading:
		return ModeLoading
	case m.selected != nil:
		return ModeDetail
	default:
		return ModeGrid
	}
}

func (m *Model) Items() []tmdb.Item { return m.items }

func (m *Model) Selected() *tmdb.Item { return m.selected }

func (m *Model) Cast() []tmdb.CastMember { return m.cast }

func (m *Model) Loading() bool { return m.loading }

func (m *Model) Err() error { return m.err }
