package trending

import (
	"time"

	"github.com/Waddenn/trending/internal/tmdb"
)

// Messages
type MsgTrendingLoaded struct {
	Items []tmdb.Item
	Err   error
}

// MsgLoadingDone fires once the fixed delay after the trending fetch has elapsed.
type MsgLoadingDone struct{}

type MsgCreditsLoaded struct {
	Generation uint64
	ItemID     int
	Cast       []tmdb.CastMember
	Err        error
}

type MsgAnimate time.Time
