package llm

import "context"

// Client is one hosted-model endpoint. Generate performs a single completion
// round-trip; the process makes exactly one call per invocation, so there is
// no retry or session state behind this interface.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
