package intelligence

import "context"

// Client is the completion-service boundary. Workflow nodes issue exactly
// one call per invocation and depend on this interface only, never on a
// concrete provider.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
