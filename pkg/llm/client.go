package llm

import (
	"context"
	"errors"
)

var (
	ErrProvider        = errors.New("model provider error")
	ErrEmptyResponse   = errors.New("empty response from model")
	ErrMalformedOutput = errors.New("malformed model output")
)

// Generator sends a prompt to a generative-text model and returns its reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
