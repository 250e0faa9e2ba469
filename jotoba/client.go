package jotoba

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

const (
	// BaseURL prefixes audio paths in rendered notes as well as API calls.
	BaseURL = "https://jotoba.de"

	DefaultLanguage = "English"

	searchWordsPath = "/api/search/words"
)

type searchRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

// Client searches words on a Jotoba instance.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Empty baseURL and language fall back to the
// public instance and English glosses.
func NewClient(baseURL, language string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if language == "" {
		language = DefaultLanguage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		language:   language,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "jotoba"),
	}
}

func (c *Client) SearchWords(ctx context.Context, query string) (*SearchResponse, error) {
	body, err := json.Marshal(searchRequest{Query: query, Language: c.language})
	if err != nil {
		return nil, fmt.Errorf("jotoba: encode request: %w", err)
	}

	c.log.DebugContext(ctx, "jotoba request", slog.String("query", query))

	resp, err := c.doWithRetry(ctx, body, query)
	if err != nil {
		c.log.ErrorContext(ctx, "jotoba request failed", slog.String("query", query), slog.String("error", err.Error()))
		return nil, fmt.Errorf("jotoba: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jotoba: unexpected status %d", resp.StatusCode)
	}

	r, err := bodyReader(resp)
	if err != nil {
		return nil, fmt.Errorf("jotoba: read body: %w", err)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("jotoba: read body: %w", err)
	}

	var result SearchResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("jotoba: decode json: %w", err)
	}

	c.log.DebugContext(ctx, "jotoba response",
		slog.String("query", query),
		slog.Int("status", resp.StatusCode),
		slog.Int("words", len(result.Words)),
	)
	return &result, nil
}

// doWithRetry posts the request, retrying once on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, body []byte, query string) (*http.Response, error) {
	resp, err := c.post(ctx, body)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "jotoba retry", slog.String("query", query), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}
	return c.post(ctx, body)
}

func (c *Client) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchWordsPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-type", "application/json; charset=UTF-8")
	return c.httpClient.Do(req)
}

// bodyReader decodes the body per its declared charset. JSON without one is
// UTF-8 and read as is.
func bodyReader(resp *http.Response) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || params["charset"] == "" {
		return resp.Body, nil
	}
	return charset.NewReaderLabel(params["charset"], resp.Body)
}
