package trending

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

func fetchTrending(ctx context.Context, f Fetcher, category string) tea.Cmd {
	return func() tea.Msg {
		items, err := f.Trending(ctx, category)
		if err != nil {
			return MsgTrendingLoaded{Err: err}
		}
		return MsgTrendingLoaded{Items: lo.Subset(items, 0, MaxItems)}
	}
}

func fetchCredits(ctx context.Context, f Fetcher, category string, generation uint64, id int) tea.Cmd {
	return func() tea.Msg {
		cast, err := f.Credits(ctx, category, id)
		if err != nil {
			return MsgCreditsLoaded{Generation: generation, ItemID: id, Err: err}
		}
		return MsgCreditsLoaded{Generation: generation, ItemID: id, Cast: lo.Subset(cast, 0, MaxCast)}
	}
}

// waitLoading is started when the trending fetch settles, independent of how
// long the fetch itself took.
func waitLoading(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgLoadingDone{}
	})
}

func animate() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg {
		return MsgAnimate(t)
	})
}
