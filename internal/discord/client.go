package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const apiBase = "https://discord.com/api/v10"

// maxAttempts bounds how many times a single request is retried after
// rate-limit responses before it is surfaced as a failure.
const maxAttempts = 5

// requestsPerSecond paces live requests well under Discord's global limit.
const requestsPerSecond = 2

// StatusError reports a non-success, non-rate-limit response. It carries the
// request descriptor and status only; the response body is dropped because
// Discord error bodies can echo request content, including token fragments.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.Status)
}

// SleepFunc suspends the caller for d, or returns early with ctx's error.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type restClient struct {
	logger  *zap.SugaredLogger
	token   string
	base    string
	http    *http.Client
	limiter *rate.Limiter
	sleep   SleepFunc
}

func NewClient(logger *zap.SugaredLogger, token string) Client {
	return &restClient{
		logger:  logger,
		token:   token,
		base:    apiBase,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		sleep:   sleepContext,
	}
}

func (c *restClient) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.request(ctx, http.MethodGet, path, nil)
}

func (c *restClient) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPost, path, body)
}

func (c *restClient) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPut, path, body)
}

func (c *restClient) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.request(ctx, http.MethodPatch, path, body)
}

func (c *restClient) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.request(ctx, http.MethodDelete, path, nil)
}

func (c *restClient) request(ctx context.Context, method string, path string, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, retryAfter, err := c.do(ctx, method, path, payload)
		if err != nil {
			return nil, err
		}
		if retryAfter > 0 {
			c.logger.Warnw("rate limited, waiting before retry",
				"method", method, "path", path, "retryAfter", retryAfter)
			if err := c.sleep(ctx, retryAfter); err != nil {
				return nil, err
			}
			continue
		}
		return result, nil
	}

	return nil, fmt.Errorf("rate limit retry budget exhausted after %d attempts: %s %s", maxAttempts, method, path)
}

// do issues one request. A positive retryAfter means the server rate limited
// the request and the caller should wait that long and try again.
func (c *restClient) do(ctx context.Context, method string, path string, payload []byte) (json.RawMessage, time.Duration, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "RillCommunity/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		var limited struct {
			RetryAfter float64 `json:"retry_after"`
		}
		retryAfter := time.Second
		if err := json.NewDecoder(resp.Body).Decode(&limited); err == nil && limited.RetryAfter > 0 {
			retryAfter = time.Duration(limited.RetryAfter * float64(time.Second))
		}
		return nil, retryAfter, nil

	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read response: %s %s: %w", method, path, err)
		}
		return data, 0, nil

	case resp.StatusCode == http.StatusNoContent:
		return json.RawMessage("{}"), 0, nil

	default:
		io.Copy(io.Discard, resp.Body)
		c.logger.Errorw("request failed", "method", method, "path", path, "status", resp.StatusCode)
		return nil, 0, &StatusError{Method: method, Path: path, Status: resp.StatusCode}
	}
}

// simulatedClient logs intended requests and returns synthetic payloads so
// every caller's logic can run without touching the network.
type simulatedClient struct {
	logger *zap.SugaredLogger
}

func NewSimulatedClient(logger *zap.SugaredLogger) Client {
	return &simulatedClient{logger: logger}
}

// Get returns an empty collection: every read in this codebase lists guild
// state before acting on it, and pretending the guild is blank lets that
// logic run unchanged with no live network.
func (c *simulatedClient) Get(ctx context.Context, path string) (json.RawMessage, error) {
	c.logger.Infow("simulated request", "method", http.MethodGet, "path", path)
	return json.RawMessage("[]"), nil
}

func (c *simulatedClient) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.record(http.MethodPost, path, body)
}

func (c *simulatedClient) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.record(http.MethodPut, path, body)
}

func (c *simulatedClient) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.record(http.MethodPatch, path, body)
}

func (c *simulatedClient) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.record(http.MethodDelete, path, nil)
}

func (c *simulatedClient) record(method string, path string, body any) (json.RawMessage, error) {
	fields := []any{"method", method, "path", path}
	if body != nil {
		if payload, err := json.Marshal(body); err == nil {
			fields = append(fields, "payload", string(payload))
		}
	}
	c.logger.Infow("simulated request", fields...)

	result, err := json.Marshal(map[string]any{
		"id":        "simulated-" + uuid.NewString(),
		"simulated": true,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
