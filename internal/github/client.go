package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"environment-deployments/config"
	"environment-deployments/internal/entities"

	"go.uber.org/zap"
)

const apiVersion = "2022-11-28"

// Client implements API over HTTP against the platform endpoints.
type Client struct {
	log  *zap.SugaredLogger
	cfg  config.GitHubConfig
	http *http.Client
}

// NewClient builds a Client with a tuned transport and fixed timeout.
func NewClient(log *zap.SugaredLogger, cfg config.GitHubConfig) *Client {
	return &Client{
		log: log.Named("github"),
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConnsPerHost: 4,
			},
		},
	}
}

type structuredEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"errors"`
}

// QueryStructured posts one GraphQL query and returns the raw data tree.
// An error envelope becomes entities.ErrPolicyBlocked when its message
// matches the policy-block markers, a generic error otherwise.
func (c *Client) QueryStructured(ctx context.Context, query string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.GraphQLURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("structured query: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read structured response: %w", err)
	}

	c.log.Debugw("structured query", "status", resp.StatusCode)

	var envelope structuredEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode structured response: %w", err)
	}

	if msg := envelope.errorMessage(); msg != "" {
		if IsPolicyBlock(msg) {
			return nil, fmt.Errorf("%w: %s", entities.ErrPolicyBlocked, msg)
		}
		return nil, fmt.Errorf("structured query failed: %s", msg)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("structured query failed: status %d", resp.StatusCode)
	}

	return envelope.Data, nil
}

// errorMessage flattens the envelope's error fields; the platform uses a
// top-level message for protocol-level refusals and an errors array for
// query-level ones.
func (e structuredEnvelope) errorMessage() string {
	if e.Message != "" {
		return e.Message
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, ge := range e.Errors {
		msgs = append(msgs, ge.Message)
	}
	return strings.Join(msgs, "; ")
}

// QueryResource issues a GET against the REST API. 404 and 403 map to
// the non-fatal sentinels; any other non-2xx status is a generic error.
func (c *Client) QueryResource(ctx context.Context, path string) ([]byte, error) {
	url := strings.TrimSuffix(c.cfg.APIURL, "/") + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resource query: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debugw("resource query", "path", path, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", entities.ErrNotFound, path)
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", entities.ErrForbidden, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("resource query failed: %s: status %d", path, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read resource response: %w", err)
	}
	return raw, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
}
