// internal/adapters/gemini/client.go
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"relief_ai/internal/adapters/observability"
)

var (
	ErrUnauthorized = errors.New("gemini: unauthorized")
	ErrQuota        = errors.New("gemini: quota exceeded")
	ErrEmpty        = errors.New("gemini: no candidate text")
)

type Client struct {
	base  string
	model string
	key   string
	hc    *http.Client
	rl    *rate.Limiter
}

func New(base, model, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		model: model,
		key:   key,
		hc:    &http.Client{Timeout: 20 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- wire format (generativelanguage v1beta :generateContent) ----

type request struct {
	Contents         []content `json:"contents"`
	GenerationConfig genConfig `json:"generationConfig,omitempty"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int32   `json:"maxOutputTokens,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Role  string `json:"role"`
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends one prompt and returns the first candidate's text.
// Exactly one HTTP attempt per call; failure handling belongs to the
// gateway layer, which substitutes fallbacks instead of retrying.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(request{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: genConfig{
			Temperature:     0.3,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.base, c.model, c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		observability.ObserveExternal("gemini", "generateContent", 0, time.Since(start))
		return "", err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("gemini", "generateContent", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		var out response
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return "", err
		}
		for _, cand := range out.Candidates {
			for _, p := range cand.Content.Parts {
				if p.Text != "" {
					return p.Text, nil
				}
			}
		}
		return "", ErrEmpty

	case http.StatusUnauthorized, http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return "", ErrUnauthorized

	case http.StatusTooManyRequests:
		io.Copy(io.Discard, resp.Body)
		return "", ErrQuota

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
