package discord

import (
	"context"
	"encoding/json"
)

// Client issues requests against the Discord REST API. Implementations handle
// rate limiting; callers only see success payloads or request failures.
type Client interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Patch(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}
