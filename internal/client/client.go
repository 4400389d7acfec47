// Package client is the typed HTTP client of the horas-centros API. It is
// what the CLI (and any other consumer) talks through: plain GETs for
// config/schedule/totals and JSON posts for mutations, no retries and no
// caching, so every read reflects the store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/horas-centros/backend/internal/domain"
)

// APIError is a well-formed but unsuccessful response: the server answered
// and rejected the request with a message.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decode distinguishes the two failure kinds the callers care about: a
// transport error comes back untouched from Do, and a success:false envelope
// becomes an *APIError carrying the server message.
func (c *Client) decode(res *http.Response, out any) error {
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("HTTP %d: %w", res.StatusCode, err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", res.StatusCode)
		}
		return &APIError{Message: msg}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return c.decode(res, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return c.decode(res, out)
}

func (c *Client) Config(ctx context.Context) (*domain.Config, error) {
	var cfg domain.Config
	if err := c.get(ctx, "/api/config", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) Schedule(ctx context.Context, from, to, centroID string) ([]domain.ScheduleItem, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	if centroID != "" {
		params.Set("centroId", centroID)
	}

	var data struct {
		Items []domain.ScheduleItem `json:"items"`
	}
	if err := c.get(ctx, "/api/schedule", params, &data); err != nil {
		return nil, err
	}
	return data.Items, nil
}

func (c *Client) Totals(ctx context.Context, from, to string) (*domain.Totals, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)

	var totals domain.Totals
	if err := c.get(ctx, "/api/totals", params, &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}

func (c *Client) SaveBase(ctx context.Context, rows []domain.BaseRow) error {
	payload := map[string]any{"rows": rows}
	return c.send(ctx, http.MethodPost, "/api/base", payload, nil)
}

func (c *Client) SaveOverride(ctx context.Context, ov domain.Override) error {
	return c.send(ctx, http.MethodPost, "/api/overrides", ov, nil)
}

func (c *Client) DeleteOverride(ctx context.Context, fecha, centroID string) error {
	payload := map[string]string{"fecha": fecha, "centroId": centroID}
	return c.send(ctx, http.MethodDelete, "/api/overrides", payload, nil)
}
