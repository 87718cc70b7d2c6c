// Package translate calls an external text-translation API with bounded retries.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/errs"
)

// Config carries the upstream endpoint, credentials, and retry policy.
// Injected at construction; tests point URL at a local httptest server.
type Config struct {
	URL        string
	APIKey     string
	APIHost    string
	SourceLang string
	TargetLang string
	Timeout    time.Duration // per attempt
	Attempts   int           // total attempts, including the first
	Delay      time.Duration // fixed delay between attempts
}

// Client translates text via a single HTTP POST per attempt. A request never
// blocks longer than Attempts * (Timeout + Delay).
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// New constructs a translation client, filling config defaults.
func New(cfg Config, log *zap.Logger) *Client {
	if cfg.SourceLang == "" {
		cfg.SourceLang = "ru"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "en"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 500 * time.Millisecond
	}
	return &Client{cfg: cfg, http: &http.Client{}, log: log}
}

type request struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type response struct {
	Data struct {
		Translations struct {
			TranslatedText json.RawMessage `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate returns the translated text, or errs.ErrUpstreamUnavailable once
// all attempts are exhausted. The cause is logged, never surfaced to callers.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	var out string
	backoff := retry.WithMaxRetries(uint64(c.cfg.Attempts-1), retry.NewConstant(c.cfg.Delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		s, err := c.attempt(ctx, text)
		if err != nil {
			c.log.Warn("translate attempt failed", zap.Error(err))
			return retry.RetryableError(err)
		}
		out = s
		return nil
	})
	if err != nil {
		return "", errs.ErrUpstreamUnavailable
	}
	return out, nil
}

// attempt performs one bounded POST to the upstream.
func (c *Client) attempt(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(request{Q: text, Source: c.cfg.SourceLang, Target: c.cfg.TargetLang})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
	}
	if c.cfg.APIHost != "" {
		req.Header.Set("x-rapidapi-host", c.cfg.APIHost)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}
	return joinSegments(r.Data.Translations.TranslatedText)
}

// joinSegments accepts either a single string or an array of segments and
// always returns one flat string.
func joinSegments(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("missing translatedText")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err == nil {
		return strings.Join(parts, " "), nil
	}
	return "", fmt.Errorf("unexpected translatedText shape")
}
