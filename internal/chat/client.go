package chat

import (
	"context"
)

// Client defines the interface for remote assistant providers.
type Client interface {
	Ask(ctx context.Context, prompt string) (string, error)
	Name() string
}
