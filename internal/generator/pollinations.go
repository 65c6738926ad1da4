package generator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Prober is the contract the orchestrator needs from the image provider:
// build the image URL for a prompt, then confirm the provider can serve it.
type Prober interface {
	ImageURL(prompt string) string
	Probe(ctx context.Context, imageURL string) (int, error)
}

type PollinationsOptions struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Pollinations talks to a Pollinations-style provider: the percent-encoded
// prompt is embedded in the URL path and the provider serves the rendered
// image at that same URL.
type Pollinations struct {
	httpClient *http.Client
	baseURL    string
}

func NewPollinations(opts PollinationsOptions) *Pollinations {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = "https://image.pollinations.ai"
	}
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Pollinations{
		httpClient: client,
		baseURL:    base,
	}
}

// ImageURL embeds the prompt into the provider's path scheme. The result is
// the artifact handed back to callers on success.
func (p *Pollinations) ImageURL(prompt string) string {
	return p.baseURL + "/prompt/" + url.PathEscape(prompt)
}

// Probe issues a single bounded GET against the image URL and reports the
// provider's status code. The body is drained and discarded; the URL itself
// is what callers keep.
func (p *Pollinations) Probe(ctx context.Context, imageURL string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build provider request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

var _ Prober = (*Pollinations)(nil)
