package oracle

import (
	"context"
	"errors"
)

// Client abstracts the text-generation service used by the pipeline.
// Implementations send a single prompt and return the model's raw text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrUnavailable indicates a transport failure or timeout reaching the service.
	ErrUnavailable = errors.New("oracle unavailable")
	// ErrRejected indicates the service answered with an error status or payload.
	ErrRejected = errors.New("oracle rejected request")
)
