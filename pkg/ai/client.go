// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
)

var ErrEmptyQuestion = errors.New("question is required")

// Client answers gardening questions.
type Client interface {
	Ask(ctx context.Context, question string) (string, error)
}
