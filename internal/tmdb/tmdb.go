package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	tmdbsdk "github.com/cyruzin/golang-tmdb"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// PosterSize is the image width variant used for every poster reference.
const PosterSize = "w300"

// ErrFetchFailed is wrapped by every error the client returns.
var ErrFetchFailed = errors.New("fetch failed")

// Client talks to the TMDB v3 API. Every request waits on Limiter first.
type Client struct {
	HTTPClient *http.Client
	APIURL     string
	APIKey     string
	UserAgent  string
	Limiter    *rate.Limiter
	Logger     zerolog.Logger
}

// Options configures New.
type Options struct {
	APIURL    string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
	RateLimit float64 // requests per second
	Burst     int
	Logger    zerolog.Logger
}

// New builds a Client with its own http.Client and rate limiter.
func New(opts Options) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: opts.Timeout},
		APIURL:     opts.APIURL,
		APIKey:     opts.APIKey,
		UserAgent:  opts.UserAgent,
		Limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst),
		Logger:     opts.Logger,
	}
}

// Item is one entry of a trending list.
type Item struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	Overview   string `json:"overview"`
}

// UnmarshalJSON falls back to "name" for TV results, which carry no title.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         int    `json:"id"`
		Title      string `json:"title"`
		Name       string `json:"name"`
		PosterPath string `json:"poster_path"`
		Overview   string `json:"overview"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.ID = raw.ID
	i.Title = raw.Title
	if i.Title == "" {
		i.Title = raw.Name
	}
	i.PosterPath = raw.PosterPath
	i.Overview = raw.Overview
	return nil
}

// CastMember is one credited actor, in billing order.
type CastMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type trendingResponse struct {
	Results []Item `json:"results"`
}

type creditsResponse struct {
	Cast []CastMember `json:"cast"`
}

// Trending returns the full weekly trending list for category, in provider order.
func (c *Client) Trending(ctx context.Context, category string) ([]Item, error) {
	endpoint := fmt.Sprintf("%s/trending/%s/week", c.APIURL, url.PathEscape(category))
	var resp trendingResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("trending %s: %w", category, err)
	}
	return resp.Results, nil
}

// Credits returns the full cast list of one title.
func (c *Client) Credits(ctx context.Context, category string, id int) ([]CastMember, error) {
	endpoint := fmt.Sprintf("%s/%s/%d/credits", c.APIURL, url.PathEscape(category), id)
	var resp creditsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("credits %s/%d: %w", category, id, err)
	}
	return resp.Cast, nil
}

// PosterURL builds the display URL for a poster path fragment.
func PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return tmdbsdk.GetImageURL(path, PosterSize)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, target interface{}) error {
	if err := c.Limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter wait: %w", ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	q := req.URL.Query()
	q.Set("api_key", c.APIKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	c.Logger.Debug().
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("tmdb request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: tmdb api error: %d", ErrFetchFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrFetchFailed, err)
	}
	return nil
}
