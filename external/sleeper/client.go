package sleeper

import (
	"context"
	stderrors "errors"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/graphiclux/kicker-league/internal/platform/resilience"
	"github.com/graphiclux/kicker-league/internal/usecase"
	"github.com/jonboulle/clockwork"
	"github.com/valyala/fasthttp"
)

const (
	defaultBaseURL = "https://api.sleeper.app/v1"
	playersPath    = "/players/nfl"
	providerName   = "sleeper"
)

var errSleeperTransient = crerr.New("sleeper transient failure")

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client reads the Sleeper NFL players directory.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

type playerPayload struct {
	PlayerID           string  `json:"player_id"`
	FullName           *string `json:"full_name"`
	FirstName          *string `json:"first_name"`
	LastName           *string `json:"last_name"`
	Position           *string `json:"position"`
	Team               *string `json:"team"`
	Active             bool    `json:"active"`
	DepthChartOrder    *int    `json:"depth_chart_order"`
	DepthChartPosition *string `json:"depth_chart_position"`
	InjuryStatus       *string `json:"injury_status"`
	InjuryNotes        *string `json:"injury_notes"`
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse sleeper base url %q", baseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, crerr.Newf("sleeper base url %q uses unsupported scheme=%q", baseURL, parsed.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	breakerCfg := cfg.CircuitBreaker.WithDefaults(resilience.APIFeedCircuit)

	return &Client{
		httpClient: &fasthttp.Client{
			Name:                "kicker-league",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL:        strings.TrimRight(baseURL, "/"),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg, cfg.Clock),
		circuitEnabled: breakerCfg.Enabled,
	}, nil
}

func (c *Client) Name() string {
	return providerName
}

// ListPlayers returns every player listed at position K.
func (c *Client) ListPlayers(ctx context.Context) ([]usecase.KickerCandidate, error) {
	var raw []byte
	fetch := func() error {
		body, err := c.get(ctx, c.baseURL+playersPath)
		raw = body
		return err
	}

	var err error
	if c.circuitEnabled {
		err = c.breaker.Do(fetch, isCircuitFailure)
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "sleeper circuit breaker rejected request", "state", c.breaker.State())
		}
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, err
	}

	var players map[string]playerPayload
	if err := sonic.Unmarshal(raw, &players); err != nil {
		return nil, crerr.Wrap(err, "decode sleeper players")
	}

	out := make([]usecase.KickerCandidate, 0, 64)
	for key, p := range players {
		if deref(p.Position) != "K" {
			continue
		}
		playerID := p.PlayerID
		if playerID == "" {
			playerID = key
		}
		out = append(out, usecase.KickerCandidate{
			PlayerID:           playerID,
			FullName:           fullName(p),
			Position:           "K",
			Team:               deref(p.Team),
			Active:             p.Active,
			DepthChartOrder:    p.DepthChartOrder,
			DepthChartPosition: deref(p.DepthChartPosition),
			InjuryStatus:       deref(p.InjuryStatus),
			InjuryNotes:        deref(p.InjuryNotes),
		})
	}

	return out, nil
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.httpClient.DoDeadline(req, resp, deadline); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "send sleeper request"), errSleeperTransient)
	}

	status := resp.StatusCode()
	switch {
	case status >= 500 || status == fasthttp.StatusTooManyRequests:
		return nil, crerr.Mark(crerr.Newf("sleeper status=%d", status), errSleeperTransient)
	case status < 200 || status >= 300:
		return nil, crerr.Newf("sleeper status=%d", status)
	}

	body := resp.Body()
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errSleeperTransient)
}

func fullName(p playerPayload) string {
	if name := strings.TrimSpace(deref(p.FullName)); name != "" {
		return name
	}
	return strings.TrimSpace(deref(p.FirstName) + " " + deref(p.LastName))
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
