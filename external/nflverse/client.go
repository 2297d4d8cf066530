package nflverse

import (
	"bytes"
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/graphiclux/kicker-league/internal/platform/resilience"
	"github.com/graphiclux/kicker-league/internal/usecase"
	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/gzip"
	"github.com/valyala/bytebufferpool"
)

const (
	sourceName      = "nflverse"
	seasonToken     = "{season}"
	maxDownloadSize = 256 << 20
	regularSeason   = "REG"
)

// DefaultSources are tried in order; the legacy nflfastR mirror is the fallback.
var DefaultSources = []string{
	"https://github.com/nflverse/nflverse-data/releases/download/pbp/play_by_play_{season}.csv.gz",
	"https://raw.githubusercontent.com/nflverse/nflfastR-data/master/data/play_by_play_{season}.csv.gz",
}

var (
	errNFLVerseTransient = crerr.New("nflverse transient failure")
	errSourceMissing     = crerr.New("nflverse source has no file for season")
)

var requiredColumns = []string{
	"season", "week", "season_type", "posteam", "play_type",
	"field_goal_result", "extra_point_result", "kick_distance", "game_id",
}

type ClientConfig struct {
	HTTPClient     *http.Client
	Sources        []string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client downloads the gzipped play-by-play CSV for a season and keeps the
// regular-season kicking plays.
type Client struct {
	httpClient     *http.Client
	sources        []string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 2 * time.Minute
	}

	candidates := cfg.Sources
	if len(candidates) == 0 {
		candidates = DefaultSources
	}
	sources := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		source, err := validateSource(candidate)
		if err != nil {
			return nil, crerr.Wrap(err, "invalid nflverse source")
		}
		sources = append(sources, source)
	}

	breakerCfg := cfg.CircuitBreaker.WithDefaults(resilience.SnapshotFeedCircuit)
	return &Client{
		httpClient:     httpClient,
		sources:        sources,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg, cfg.Clock),
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

func (c *Client) Name() string {
	return sourceName
}

// FetchSeason returns every regular-season kick of the season, trying each
// source until one serves the file.
func (c *Client) FetchSeason(ctx context.Context, season int) ([]usecase.FeedPlay, error) {
	if season <= 0 {
		return nil, crerr.Newf("season must be greater than zero, got %d", season)
	}

	var lastErr error
	for _, source := range c.sources {
		fullURL := SourceURL(source, season)
		c.logger.InfoContext(ctx, "fetching nflverse play-by-play", "url", fullURL, "season", season)

		buf := bytebufferpool.Get()
		err := c.download(ctx, fullURL, buf)
		if err == nil {
			plays, parseErr := ParsePlayByPlay(bytes.NewReader(buf.B), season)
			bytebufferpool.Put(buf)
			if parseErr != nil {
				return nil, crerr.Wrapf(parseErr, "parse %s", fullURL)
			}
			c.logger.InfoContext(ctx, "nflverse play-by-play parsed", "url", fullURL, "season", season, "kicks", len(plays))
			return plays, nil
		}
		bytebufferpool.Put(buf)

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.WarnContext(ctx, "nflverse source failed, trying next", "url", fullURL, "error", err)
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errSourceMissing
	}
	return nil, crerr.Wrapf(lastErr, "no nflverse source served season %d", season)
}

func (c *Client) download(ctx context.Context, fullURL string, buf *bytebufferpool.ByteBuffer) error {
	fetch := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return crerr.Wrap(err, "build request")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return crerr.Mark(crerr.Wrap(err, "send request"), errNFLVerseTransient)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return crerr.Wrapf(errSourceMissing, "status=%d", resp.StatusCode)
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return crerr.Mark(crerr.Newf("status=%d", resp.StatusCode), errNFLVerseTransient)
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			return crerr.Newf("status=%d", resp.StatusCode)
		}

		n, err := buf.ReadFrom(io.LimitReader(resp.Body, maxDownloadSize+1))
		if err != nil {
			return crerr.Mark(crerr.Wrap(err, "read body"), errNFLVerseTransient)
		}
		if n > maxDownloadSize {
			return crerr.Newf("body exceeds %d bytes", maxDownloadSize)
		}
		return nil
	}

	if !c.circuitEnabled {
		return fetch()
	}
	err := c.breaker.Do(fetch, isCircuitFailure)
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "nflverse circuit breaker rejected request", "state", c.breaker.State())
	}
	return err
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errNFLVerseTransient)
}

// ParsePlayByPlay reads a gzipped nflverse CSV and keeps regular-season
// field goals and extra points of the given season.
func ParsePlayByPlay(r io.Reader, season int) ([]usecase.FeedPlay, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, crerr.Wrap(err, "open gzip stream")
	}
	defer gz.Close()

	reader := csv.NewReader(gz)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, crerr.Wrap(err, "read csv header")
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, crerr.Newf("csv is missing column %q", name)
		}
	}

	seasonText := strconv.Itoa(season)
	out := make([]usecase.FeedPlay, 0, 4096)
	for {
		record, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, crerr.Wrap(err, "read csv record")
		}

		field := func(name string) string {
			i := index[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		if field("season") != seasonText {
			continue
		}
		if seasonType := field("season_type"); seasonType != "" && seasonType != regularSeason {
			continue
		}
		week, err := strconv.Atoi(field("week"))
		if err != nil {
			continue
		}

		play, ok := mapKick(field)
		if !ok {
			continue
		}
		out = append(out, usecase.FeedPlay{Week: week, Play: play})
	}

	return out, nil
}

func mapKick(field func(string) string) (usecase.PlayInput, bool) {
	play := usecase.PlayInput{
		GameID:     field("game_id"),
		Possession: strings.ToUpper(field("posteam")),
	}

	switch field("play_type") {
	case "field_goal":
		outcome := strings.ToLower(field("field_goal_result"))
		play.PlayType = "field_goal"
		play.Result = madeOrMissed(outcome == "made")
		play.Distance = parseDistance(field("kick_distance"))
		play.Blocked = boolPtr(outcome == "blocked")
	case "extra_point":
		outcome := strings.ToLower(field("extra_point_result"))
		play.PlayType = "extra_point"
		play.Result = madeOrMissed(outcome == "good")
		play.Blocked = boolPtr(outcome == "blocked")
	default:
		return usecase.PlayInput{}, false
	}

	return play, true
}

func madeOrMissed(made bool) string {
	if made {
		return "made"
	}
	return "missed"
}

func parseDistance(raw string) *int {
	if raw == "" || strings.EqualFold(raw, "NA") {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil
	}
	distance := int(value)
	return &distance
}

func boolPtr(v bool) *bool {
	return &v
}

// SourceURL expands a source template for a season. Templates without the
// {season} token are treated as a directory holding play_by_play_<season>.csv.gz.
func SourceURL(source string, season int) string {
	if strings.Contains(source, seasonToken) {
		return strings.ReplaceAll(source, seasonToken, strconv.Itoa(season))
	}
	return fmt.Sprintf("%s/play_by_play_%d.csv.gz", strings.TrimRight(source, "/"), season)
}

func validateSource(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", crerr.New("source is empty")
	}

	parsed, err := url.Parse(strings.ReplaceAll(candidate, seasonToken, "2025"))
	if err != nil {
		return "", crerr.Wrapf(err, "parse %q", candidate)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", crerr.Newf("%q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", crerr.Newf("%q has empty host", candidate)
	}

	return candidate, nil
}
