// Package agent is a thin HTTP client for the RillCoin agent faucet API. It
// returns the service's JSON responses as raw payloads; callers decode the
// fields they care about.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultFaucetURL = "https://faucet.rillcoin.com"

type Client struct {
	base string
	http *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultFaucetURL
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateWallet generates a new testnet wallet (mnemonic and address).
func (c *Client) CreateWallet(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/api/wallet/new", nil)
}

// Balance reports the balance and UTXO count of an address.
func (c *Client) Balance(ctx context.Context, address string) (json.RawMessage, error) {
	return c.get(ctx, "/api/wallet/balance", url.Values{"address": {address}})
}

// Register registers the wallet as an agent, staking the required deposit.
func (c *Client) Register(ctx context.Context, mnemonic string) (json.RawMessage, error) {
	return c.post(ctx, "/api/agent/register", map[string]any{"mnemonic": mnemonic})
}

// ConductProfile queries an agent's conduct score and reputation.
func (c *Client) ConductProfile(ctx context.Context, address string) (json.RawMessage, error) {
	return c.get(ctx, "/api/agent/profile", url.Values{"address": {address}})
}

// ListAgents pages through the registered agent directory.
func (c *Client) ListAgents(ctx context.Context, offset int, limit int) (json.RawMessage, error) {
	return c.get(ctx, "/api/agent/directory", url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
	})
}

// Vouch vouches for another agent. The service rejects vouches from agents
// below its conduct score threshold.
func (c *Client) Vouch(ctx context.Context, mnemonic string, targetAddress string) (json.RawMessage, error) {
	return c.post(ctx, "/api/agent/vouch", map[string]any{
		"mnemonic":       mnemonic,
		"target_address": targetAddress,
	})
}

// CreateContract opens an escrowed agent-to-agent contract.
func (c *Client) CreateContract(ctx context.Context, mnemonic string, counterparty string, valueRill float64) (json.RawMessage, error) {
	return c.post(ctx, "/api/agent/contract/create", map[string]any{
		"mnemonic":     mnemonic,
		"counterparty": counterparty,
		"value_rill":   valueRill,
	})
}

// FulfilContract marks an open contract as fulfilled.
func (c *Client) FulfilContract(ctx context.Context, mnemonic string, contractID string) (json.RawMessage, error) {
	return c.post(ctx, "/api/agent/contract/fulfil", map[string]any{
		"mnemonic":    mnemonic,
		"contract_id": contractID,
	})
}

// SubmitReview submits a 1 to 10 peer review for a completed contract.
func (c *Client) SubmitReview(ctx context.Context, mnemonic string, subjectAddress string, score int, contractID string) (json.RawMessage, error) {
	return c.post(ctx, "/api/agent/review", map[string]any{
		"mnemonic":        mnemonic,
		"subject_address": subjectAddress,
		"score":           score,
		"contract_id":     contractID,
	})
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	target := c.base + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return c.send(req, path)
}

func (c *Client) post(ctx context.Context, path string, body map[string]any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, path)
}

func (c *Client) send(req *http.Request, path string) (json.RawMessage, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s %s returned status %d", req.Method, path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %s: %w", path, err)
	}
	return data, nil
}
