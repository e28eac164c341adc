// Package intra fetches presence sessions ("locations") from the 42 intranet API.
package intra

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logtime/logtime"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.intra.42.fr"
	perPage        = 100
	// the API allows two requests per second per application
	requestsPerSecond = 2
)

type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient returns a client authenticating with the client-credentials
// grant; tokens are fetched and refreshed by the oauth2 transport.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     base + "/oauth/token",
	}
	return &Client{
		baseURL: base,
		http:    cc.Client(ctx),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:  logger,
	}
}

// FetchSessions walks every page of the login's locations until an empty page.
func (c *Client) FetchSessions(ctx context.Context, login string) ([]logtime.Session, error) {
	var all []logtime.Session
	for page := 1; ; page++ {
		body, err := c.getPage(ctx, login, page)
		if err != nil {
			return nil, err
		}
		ss, err := parseLocations(body, len(all))
		if err != nil {
			return nil, err
		}
		c.logger.Debug("fetched locations page", slog.String("login", login), slog.Int("page", page), slog.Int("sessions", len(ss)))
		if len(ss) == 0 {
			return all, nil
		}
		all = append(all, ss...)
	}
}

func (c *Client) getPage(ctx context.Context, login string, page int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/v2/users/%s/locations?page=%d&per_page=%d", c.baseURL, url.PathEscape(login), page, perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s: %s", u, res.Status, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// parseLocations reads one page. offset is the number of sessions on the
// previous pages, so errors point at the position in the whole batch.
func parseLocations(body []byte, offset int) ([]logtime.Session, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("locations page is not valid JSON")
	}
	page := gjson.ParseBytes(body)
	if !page.IsArray() {
		return nil, fmt.Errorf("locations page is not a JSON array")
	}

	var ss []logtime.Session
	var perr error
	page.ForEach(func(_, loc gjson.Result) bool {
		idx := offset + len(ss)
		begin, err := parseTime(loc.Get("begin_at"))
		if err != nil {
			perr = &logtime.MalformedSessionError{Index: idx, Reason: "begin_at: " + err.Error()}
			return false
		}
		s := logtime.Session{Begin: begin}
		if end := loc.Get("end_at"); end.Exists() && end.Type != gjson.Null {
			e, err := parseTime(end)
			if err != nil {
				perr = &logtime.MalformedSessionError{Index: idx, Reason: "end_at: " + err.Error()}
				return false
			}
			s.End = &e
		}
		ss = append(ss, s)
		return true
	})
	if perr != nil {
		return nil, perr
	}
	return ss, nil
}

func parseTime(v gjson.Result) (time.Time, error) {
	if v.Type != gjson.String {
		return time.Time{}, fmt.Errorf("expected a timestamp string, got %q", v.Raw)
	}
	t, err := time.Parse(time.RFC3339Nano, v.Str)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
