package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the shared HTTP transport under the CLOB, Gamma and trading
// clients. It only moves already-structured values: non-2xx responses
// become errors carrying the status code and raw body, 2xx bodies are
// decoded into the caller's type.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ErrAPIFailure wraps every non-success HTTP status so callers can match
// transport-level failures without parsing error strings.
var ErrAPIFailure = errors.New("api request failed")

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
	}
}

func (c *Client) doRequest(req *http.Request, headers map[string]string, result interface{}) error {
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("status %d: %s: %w", resp.StatusCode, string(body), ErrAPIFailure)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, headers map[string]string, result interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	return c.doRequest(req, headers, result)
}

func (c *Client) delete(ctx context.Context, endpoint string, headers map[string]string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}

	return c.doRequest(req, headers, result)
}

// post sends the exact body bytes the caller signed.
func (c *Client) post(ctx context.Context, endpoint string, body []byte, headers map[string]string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doRequest(req, headers, result)
}
